package document

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/glance/internal/engine/rope"
)

// Line is a read-only handle on one line of a Document.
// It references the document's storage and does not copy the text.
type Line struct {
	text       rope.Rope
	start, end rope.ByteOffset
	chars      int
}

// Len returns the number of characters in the line, excluding the
// terminator.
func (l Line) Len() int {
	return l.chars
}

// String returns the full line content.
func (l Line) String() string {
	return l.text.Slice(l.start, l.end)
}

// Slice returns at most n characters of the line starting at character
// from. Slicing always happens on character boundaries.
func (l Line) Slice(from, n int) string {
	if n <= 0 || from >= l.chars {
		return ""
	}
	from = max(from, 0)

	var sb strings.Builder
	skipped, taken := 0, 0
	l.text.EachChunk(l.start, l.end, func(chunk string) bool {
		for i := 0; i < len(chunk); {
			_, size := utf8.DecodeRuneInString(chunk[i:])
			if skipped < from {
				skipped++
			} else {
				sb.WriteString(chunk[i : i+size])
				taken++
				if taken == n {
					return false
				}
			}
			i += size
		}
		return true
	})
	return sb.String()
}
