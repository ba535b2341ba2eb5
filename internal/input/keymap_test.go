package input

import (
	"testing"

	"github.com/dshills/glance/internal/renderer/backend"
)

func keyEvent(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func runeEvent(r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r, Mod: mod}
}

func TestKeymapDefaults(t *testing.T) {
	km := NewKeymap(DefaultKeymapOptions())

	tests := []struct {
		name string
		ev   backend.Event
		want Kind
	}{
		{"up arrow", keyEvent(backend.KeyUp), MoveUp},
		{"down arrow", keyEvent(backend.KeyDown), MoveDown},
		{"left arrow", keyEvent(backend.KeyLeft), MoveLeft},
		{"right arrow", keyEvent(backend.KeyRight), MoveRight},
		{"page up", keyEvent(backend.KeyPageUp), PageUp},
		{"page down", keyEvent(backend.KeyPageDown), PageDown},
		{"home", keyEvent(backend.KeyHome), Home},
		{"end", keyEvent(backend.KeyEnd), End},
		{"ctrl-q", keyEvent(backend.KeyCtrlQ), Quit},
		{"ctrl-c", keyEvent(backend.KeyCtrlC), Quit},
		{"w", runeEvent('w', backend.ModNone), MoveUp},
		{"a", runeEvent('a', backend.ModNone), MoveLeft},
		{"s", runeEvent('s', backend.ModNone), MoveDown},
		{"d", runeEvent('d', backend.ModNone), MoveRight},
		{"q", runeEvent('q', backend.ModNone), Quit},
		{"shifted W is unbound", runeEvent('W', backend.ModShift), Other},
		{"alt-q is not quit", runeEvent('q', backend.ModAlt), Other},
		{"unbound rune", runeEvent('x', backend.ModNone), Other},
		{"unbound key", keyEvent(backend.KeyTab), Other},
		{"none event", backend.Event{Type: backend.EventNone}, Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Decode(tt.ev); got.Kind != tt.want {
				t.Errorf("Decode() = %v, want %v", got.Kind, tt.want)
			}
		})
	}
}

func TestKeymapWithoutWASD(t *testing.T) {
	km := NewKeymap(KeymapOptions{Quit: []rune{'x'}})

	if got := km.Decode(runeEvent('w', backend.ModNone)); got.Kind != Other {
		t.Errorf("w should be unbound, got %v", got.Kind)
	}
	if got := km.Decode(runeEvent('q', backend.ModNone)); got.Kind != Other {
		t.Errorf("q should be unbound, got %v", got.Kind)
	}
	if got := km.Decode(runeEvent('x', backend.ModNone)); got.Kind != Quit {
		t.Errorf("x should quit, got %v", got.Kind)
	}
	if got := km.Decode(keyEvent(backend.KeyCtrlQ)); got.Kind != Quit {
		t.Errorf("ctrl-q should always quit, got %v", got.Kind)
	}
}

func TestKeymapResize(t *testing.T) {
	km := NewKeymap(DefaultKeymapOptions())

	got := km.Decode(backend.Event{Type: backend.EventResize, Width: 120, Height: 40})
	if got.Kind != Resize || got.Columns != 120 || got.Rows != 40 {
		t.Errorf("unexpected resize decode: %+v", got)
	}
}

func TestKeymapPostedEvents(t *testing.T) {
	km := NewKeymap(DefaultKeymapOptions())

	posted := backend.Event{Type: backend.EventInterrupt, Data: NewEvent(Reload)}
	if got := km.Decode(posted); got.Kind != Reload {
		t.Errorf("posted navigation event should pass through, got %v", got.Kind)
	}

	foreign := backend.Event{Type: backend.EventInterrupt, Data: "noise"}
	if got := km.Decode(foreign); got.Kind != Other {
		t.Errorf("foreign interrupt should decode to Other, got %v", got.Kind)
	}
}

func TestKindString(t *testing.T) {
	if MoveUp.String() != "MoveUp" || Quit.String() != "Quit" || Kind(99).String() != "Other" {
		t.Error("unexpected Kind names")
	}
}
