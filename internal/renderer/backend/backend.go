// Package backend provides the terminal abstraction the viewer draws to
// and reads input from.
package backend

import "errors"

// ErrTerminalUnavailable is returned when the terminal size cannot be
// determined, typically because the screen is not initialized or has
// already been released.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Size is the visible area of the terminal in cells.
type Size struct {
	Rows    int
	Columns int
}

// SizeProvider answers terminal size queries.
type SizeProvider interface {
	// TerminalSize returns the current number of rows and columns.
	// Fails with ErrTerminalUnavailable if the size cannot be read.
	TerminalSize() (Size, error)
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Interrupt event payload, set by PostEvent callers.
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer distinguishes.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlQ
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Attr is a set of text attributes for a cell.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
)

// Has returns true if the set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// Cell is a single character cell on screen.
type Cell struct {
	Rune rune
	Attr Attr
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	SizeProvider

	// Init acquires the terminal (raw mode, alternate screen).
	// Must be called before any other methods.
	Init() error

	// Shutdown releases the terminal and restores its previous state.
	// Safe to call more than once.
	Shutdown()

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell Cell)

	// Clear clears the entire screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// Sync redraws the whole display, discarding any assumptions about
	// what is currently on screen. Used after a resize.
	Sync()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent queues a synthetic event. It is safe to call from any
	// goroutine.
	PostEvent(event Event)
}

// NullBackend is an in-memory backend for tests.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	initialized   bool
	shutdowns     int
	sizeErr       error
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *NullBackend) Init() error {
	b.allocate()
	b.initialized = true
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
	}
}

func (b *NullBackend) Shutdown() {
	b.initialized = false
	b.shutdowns++
}

func (b *NullBackend) TerminalSize() (Size, error) {
	if b.sizeErr != nil {
		return Size{}, b.sizeErr
	}
	if !b.initialized {
		return Size{}, ErrTerminalUnavailable
	}
	return Size{Rows: b.height, Columns: b.width}, nil
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *NullBackend) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{}
		}
	}
}

func (b *NullBackend) Show() {}
func (b *NullBackend) Sync() {}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// GetCell returns the cell at the given position for testing.
func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return Cell{}
}

// Line returns row y as a string with trailing empty cells dropped.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.Rune == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, c.Rune)
	}
	for len(runes) > 0 && runes[len(runes)-1] == ' ' {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Initialized reports whether the backend is between Init and Shutdown.
func (b *NullBackend) Initialized() bool {
	return b.initialized
}

// Shutdowns returns how many times Shutdown was called.
func (b *NullBackend) Shutdowns() int {
	return b.shutdowns
}

// FailSize makes subsequent size queries return err. Pass nil to undo.
func (b *NullBackend) FailSize(err error) {
	b.sizeErr = err
}

// Resize simulates a terminal resize: the new size takes effect and a
// resize event is queued.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
