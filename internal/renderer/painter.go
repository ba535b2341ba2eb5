package renderer

import (
	"github.com/dshills/glance/internal/renderer/backend"
)

// Painter writes frames to a backend.
type Painter struct{}

// Paint clears the screen, draws every row of f cell by cell, places the
// terminal cursor and flushes. Filler rows are drawn dim.
func (Painter) Paint(b backend.Backend, f Frame) {
	b.Clear()

	for y, row := range f.Rows {
		var attr backend.Attr
		if row.Kind == RowFiller {
			attr = backend.AttrDim
		}

		x := 0
		for _, r := range row.Text {
			if x >= f.Columns {
				break
			}
			b.SetCell(x, y, backend.Cell{Rune: r, Attr: attr})
			x++
		}
	}

	if f.CursorVisible() {
		b.ShowCursor(f.CursorX, f.CursorY)
	} else {
		b.HideCursor()
	}

	b.Show()
}
