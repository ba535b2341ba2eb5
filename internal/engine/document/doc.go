// Package document provides the read-only, line-structured text buffer
// that the viewer navigates.
//
// A Document wraps an immutable rope. It is built once, either from a byte
// stream (Open, OpenFile) or from an in-memory string (FromText), and is
// never modified afterwards. Lines are addressed by 0-based index and
// measured in characters (runes); the line terminator ("\n", or "\r\n")
// is never part of a line's content.
//
// A document always has at least one line. An empty document has exactly
// one empty line.
package document
