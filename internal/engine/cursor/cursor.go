package cursor

import (
	"fmt"

	"github.com/dshills/glance/internal/input"
	"github.com/dshills/glance/internal/renderer/backend"
)

// Lines is the read-only view of a document the cursor needs.
type Lines interface {
	// LineCount returns the number of lines, at least 1.
	LineCount() int

	// LineLen returns the length in characters of the line at index,
	// and 0 for rows outside the document.
	LineLen(index int) int
}

// Cursor is the logical read position plus the viewport offsets.
type Cursor struct {
	X         int // Character index within line Y
	Y         int // Line index
	RowOffset int // First visible line
	ColOffset int // First visible character column
}

// React applies ev to the cursor and then clamps X to the length of the
// line the cursor ended on. It reports whether ev asks to quit; a quit
// event leaves the cursor untouched.
func (c *Cursor) React(ev input.Event, size backend.Size, doc Lines) (quit bool) {
	switch ev.Kind {
	case input.Quit:
		return true
	case input.MoveUp:
		c.moveUp()
	case input.MoveDown:
		c.moveDown(doc)
	case input.MoveLeft:
		c.moveLeft(doc)
	case input.MoveRight:
		c.moveRight(doc)
	case input.PageUp:
		for range size.Rows / 2 {
			c.moveUp()
		}
	case input.PageDown:
		for range size.Rows / 2 {
			c.moveDown(doc)
		}
	case input.Home:
		c.X = 0
	case input.End:
		// Jump to the right edge of the viewport; the clamp below pulls
		// it back to the end of the line.
		c.X = max(size.Columns-1, 0)
	}

	c.Clamp(doc)
	return false
}

func (c *Cursor) moveUp() {
	if c.Y > 0 {
		c.Y--
	}
}

// moveDown may step onto the virtual row at Y == LineCount().
func (c *Cursor) moveDown(doc Lines) {
	if c.Y < doc.LineCount() {
		c.Y++
	}
}

func (c *Cursor) moveLeft(doc Lines) {
	if c.X > 0 {
		c.X--
		return
	}
	if c.Y > 0 {
		c.Y--
		c.X = doc.LineLen(c.Y)
	}
}

func (c *Cursor) moveRight(doc Lines) {
	if c.X < doc.LineLen(c.Y) {
		c.X++
		return
	}
	if c.Y < doc.LineCount() {
		c.Y++
		c.X = 0
	}
}

// Clamp pulls the cursor back inside the document: Y into
// [0, LineCount()] and X into [0, len(line Y)].
func (c *Cursor) Clamp(doc Lines) {
	c.Y = min(max(c.Y, 0), doc.LineCount())
	c.X = min(max(c.X, 0), doc.LineLen(c.Y))
}

// Scroll adjusts the offsets by the minimum needed to bring the cursor
// into the viewport. An axis with a zero dimension is left alone.
func (c *Cursor) Scroll(size backend.Size) {
	if size.Rows > 0 {
		if c.Y < c.RowOffset {
			c.RowOffset = c.Y
		} else if c.Y >= c.RowOffset+size.Rows {
			c.RowOffset = c.Y - size.Rows + 1
		}
	}

	if size.Columns > 0 {
		if c.X < c.ColOffset {
			c.ColOffset = c.X
		} else if c.X >= c.ColOffset+size.Columns {
			c.ColOffset = c.X - size.Columns + 1
		}
	}
}

// ScreenPosition returns the cursor position relative to the viewport's
// top-left corner. Within the viewport once Scroll has run.
func (c *Cursor) ScreenPosition() (x, y int) {
	return c.X - c.ColOffset, c.Y - c.RowOffset
}

// String returns a debug representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d,%d @%d,%d)", c.X, c.Y, c.ColOffset, c.RowOffset)
}
