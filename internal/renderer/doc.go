// Package renderer turns a document, a cursor and a terminal size into a
// Frame, and paints frames onto a backend.
//
// Rendering is split in two steps:
//
//	Render: Document + Cursor + Size -> Frame   (pure, testable)
//	Paint:  Frame -> backend.Backend            (cell writes, flush)
//
// Each frame row is either a slice of a document line starting at the
// cursor's column offset and at most Columns characters wide, a filler
// marker for rows past the end of the document, or, for an empty
// document, a centered banner at one third of the screen height.
//
// Lines are measured in characters (runes). Display width of wide glyphs
// is not taken into account.
package renderer
