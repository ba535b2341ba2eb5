package input

import (
	"github.com/dshills/glance/internal/renderer/backend"
)

// KeymapOptions selects the optional bindings of a Keymap.
type KeymapOptions struct {
	// WASD binds w/a/s/d as aliases for the arrow keys.
	WASD bool

	// Quit lists plain characters that end the session.
	// Ctrl-Q and Ctrl-C always quit.
	Quit []rune
}

// DefaultKeymapOptions returns the default bindings: WASD aliases on and
// 'q' to quit.
func DefaultKeymapOptions() KeymapOptions {
	return KeymapOptions{
		WASD: true,
		Quit: []rune{'q'},
	}
}

// Keymap maps backend key events to navigation kinds.
type Keymap struct {
	keys  map[backend.Key]Kind
	runes map[rune]Kind
}

// NewKeymap creates a keymap with the fixed special-key bindings plus the
// optional ones selected by opts.
func NewKeymap(opts KeymapOptions) *Keymap {
	km := &Keymap{
		keys: map[backend.Key]Kind{
			backend.KeyUp:       MoveUp,
			backend.KeyDown:     MoveDown,
			backend.KeyLeft:     MoveLeft,
			backend.KeyRight:    MoveRight,
			backend.KeyPageUp:   PageUp,
			backend.KeyPageDown: PageDown,
			backend.KeyHome:     Home,
			backend.KeyEnd:      End,
			backend.KeyCtrlQ:    Quit,
			backend.KeyCtrlC:    Quit,
		},
		runes: make(map[rune]Kind),
	}

	if opts.WASD {
		km.BindRune('w', MoveUp)
		km.BindRune('a', MoveLeft)
		km.BindRune('s', MoveDown)
		km.BindRune('d', MoveRight)
	}
	for _, r := range opts.Quit {
		km.BindRune(r, Quit)
	}
	return km
}

// BindRune binds a plain character to kind, replacing any prior binding.
func (km *Keymap) BindRune(r rune, kind Kind) {
	km.runes[r] = kind
}

// Decode converts a backend event into a navigation event. Unbound keys
// and unknown events decode to Other.
func (km *Keymap) Decode(ev backend.Event) Event {
	switch ev.Type {
	case backend.EventKey:
		if ev.Key == backend.KeyRune {
			// Modified characters are never plain bindings.
			if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModMeta) {
				return NewEvent(Other)
			}
			if kind, ok := km.runes[ev.Rune]; ok {
				return NewEvent(kind)
			}
			return NewEvent(Other)
		}
		if kind, ok := km.keys[ev.Key]; ok {
			return NewEvent(kind)
		}
		return NewEvent(Other)

	case backend.EventResize:
		return NewResize(ev.Width, ev.Height)

	case backend.EventInterrupt:
		if posted, ok := ev.Data.(Event); ok {
			return posted
		}
		return NewEvent(Other)

	default:
		return NewEvent(Other)
	}
}
