package document

import (
	"github.com/dshills/glance/internal/engine/rope"
)

// Document is an immutable, line-structured text buffer.
// It is safe for concurrent readers.
type Document struct {
	name string
	text rope.Rope
}

// FromText builds an in-memory document from s.
func FromText(s string) *Document {
	return &Document{text: rope.FromString(s)}
}

// Name returns the source name the document was opened with, if any.
func (d *Document) Name() string {
	return d.name
}

// Len returns the size of the document in bytes.
func (d *Document) Len() int {
	return int(d.text.Len())
}

// IsEmpty reports whether the document holds no text at all.
func (d *Document) IsEmpty() bool {
	return d.text.IsEmpty()
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return int(d.text.LineCount())
}

// Line returns the line at index, or false if index is out of range.
func (d *Document) Line(index int) (Line, bool) {
	if index < 0 || index >= d.LineCount() {
		return Line{}, false
	}

	line := uint32(index)
	start := d.text.LineStartOffset(line)
	end := d.text.LineEndOffset(line)

	// A CR right before the newline belongs to the terminator.
	if index < d.LineCount()-1 && end > start &&
		d.text.Summary().Flags&rope.FlagHasCR != 0 && d.text.Slice(end-1, end) == "\r" {
		end--
	}

	return Line{
		text:  d.text,
		start: start,
		end:   end,
		chars: d.text.RuneCount(start, end),
	}, true
}

// LineLen returns the length in characters of the line at index.
// Rows outside the document, including the row just past the last line,
// have length 0.
func (d *Document) LineLen(index int) int {
	line, ok := d.Line(index)
	if !ok {
		return 0
	}
	return line.Len()
}

// String returns the whole document text.
// Use sparingly for large documents.
func (d *Document) String() string {
	return d.text.String()
}
