// Package cursor provides the read cursor and viewport offsets of the
// viewer.
//
// A Cursor holds a logical position (X is a character index within line Y)
// and the first visible row and column of the viewport. It reacts to
// navigation events from the input package and is bounded by a document's
// line lengths and the current terminal size, both passed in explicitly on
// every call.
//
// Position rules:
//
//   - Y ranges over [0, LineCount()]. Y == LineCount() is a virtual row
//     past the last line with no content; the cursor can rest there and it
//     renders as a blank line.
//   - X ranges over [0, len(line Y)]. X == len is the position just after
//     the last character.
//   - After every event the post-move clamp pulls X back to the length of
//     the line it ended on. Handlers such as End may overshoot; the clamp
//     is what enforces the bound.
//
// Scroll keeps the cursor inside the viewport by moving the offsets by the
// smallest amount that restores visibility. It is run once per render, not
// per event.
//
// Basic usage:
//
//	var c cursor.Cursor
//	quit := c.React(ev, size, doc)
//	c.Scroll(size)
//	x, y := c.ScreenPosition()
//
// Cursor is not safe for concurrent use; it is owned by the session loop.
package cursor
