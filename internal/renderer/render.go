package renderer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/glance/internal/engine/cursor"
	"github.com/dshills/glance/internal/engine/document"
	"github.com/dshills/glance/internal/renderer/backend"
)

// ErrInvalidSize is returned when asked to render into a negative size.
var ErrInvalidSize = errors.New("invalid terminal size")

// RowKind identifies what a frame row holds.
type RowKind uint8

const (
	// RowText is a slice of a document line.
	RowText RowKind = iota
	// RowFiller marks a row past the end of the document.
	RowFiller
	// RowBanner is the placeholder shown for an empty document.
	RowBanner
)

// String returns the row kind name.
func (k RowKind) String() string {
	switch k {
	case RowText:
		return "text"
	case RowFiller:
		return "filler"
	case RowBanner:
		return "banner"
	default:
		return "unknown"
	}
}

// Row is one display row of a Frame.
type Row struct {
	Kind RowKind
	Text string // At most Frame.Columns characters
}

// Frame is a fully computed screen.
type Frame struct {
	Rows    []Row
	Columns int

	// CursorX and CursorY are relative to the top-left corner.
	CursorX int
	CursorY int
}

// CursorVisible reports whether the cursor lies inside the frame.
func (f Frame) CursorVisible() bool {
	return f.CursorX >= 0 && f.CursorX < f.Columns &&
		f.CursorY >= 0 && f.CursorY < len(f.Rows)
}

// Options configures rendering.
type Options struct {
	Filler string // Marker for rows past the end of the document
	Banner string // Placeholder shown when the document is empty
}

// DefaultOptions returns the default options for the given version.
func DefaultOptions(version string) Options {
	return Options{
		Filler: "~",
		Banner: "glance -- version " + version,
	}
}

// Renderer builds frames.
type Renderer struct {
	opts Options
}

// New creates a renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetOptions replaces the options used by subsequent frames.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// Render computes the frame for doc seen through cur in a terminal of the
// given size. The cursor is expected to have been scrolled for size.
func (r *Renderer) Render(doc *document.Document, cur cursor.Cursor, size backend.Size) (Frame, error) {
	if size.Rows < 0 || size.Columns < 0 {
		return Frame{}, fmt.Errorf("render %dx%d: %w", size.Columns, size.Rows, ErrInvalidSize)
	}

	frame := Frame{
		Rows:    make([]Row, size.Rows),
		Columns: size.Columns,
	}
	frame.CursorX, frame.CursorY = cur.ScreenPosition()

	if doc.IsEmpty() {
		filler := r.filler(size.Columns)
		for i := range frame.Rows {
			frame.Rows[i] = filler
		}
		if size.Rows > 0 {
			frame.Rows[size.Rows/3] = r.banner(size.Columns)
		}
		return frame, nil
	}

	for i := range frame.Rows {
		line, ok := doc.Line(cur.RowOffset + i)
		if !ok {
			frame.Rows[i] = r.filler(size.Columns)
			continue
		}
		frame.Rows[i] = Row{
			Kind: RowText,
			Text: line.Slice(cur.ColOffset, size.Columns),
		}
	}

	return frame, nil
}

func (r *Renderer) filler(columns int) Row {
	return Row{Kind: RowFiller, Text: truncate(r.opts.Filler, columns)}
}

// banner centers the banner text in columns. The filler occupies the
// first padding column; a banner wider than the screen is truncated.
func (r *Renderer) banner(columns int) Row {
	width := utf8.RuneCountInString(r.opts.Banner)
	if width >= columns {
		return Row{Kind: RowBanner, Text: truncate(r.opts.Banner, columns)}
	}

	var sb strings.Builder
	padding := (columns - width) / 2
	if padding > 0 {
		filler := truncate(r.opts.Filler, padding)
		sb.WriteString(filler)
		padding -= utf8.RuneCountInString(filler)
	}
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(r.opts.Banner)

	return Row{Kind: RowBanner, Text: sb.String()}
}

// truncate returns at most n characters of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
