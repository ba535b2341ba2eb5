package input

// Kind identifies a navigation event.
type Kind int

const (
	// Other is any event the viewer does not act on.
	Other Kind = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	PageUp
	PageDown
	Home
	End
	Quit
	Resize
	// Reload asks the session to re-read its configuration.
	Reload
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case PageUp:
		return "PageUp"
	case PageDown:
		return "PageDown"
	case Home:
		return "Home"
	case End:
		return "End"
	case Quit:
		return "Quit"
	case Resize:
		return "Resize"
	case Reload:
		return "Reload"
	default:
		return "Other"
	}
}

// Event is a decoded navigation event.
type Event struct {
	Kind Kind

	// New terminal dimensions, set for Resize only.
	Columns, Rows int
}

// NewEvent returns an event of the given kind.
func NewEvent(kind Kind) Event {
	return Event{Kind: kind}
}

// NewResize returns a Resize event.
func NewResize(columns, rows int) Event {
	return Event{Kind: Resize, Columns: columns, Rows: rows}
}
