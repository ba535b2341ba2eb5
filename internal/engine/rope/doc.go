// Package rope provides an immutable rope for storing large read-only text.
//
// A rope is a B+ tree whose leaves hold bounded text chunks and whose
// internal nodes cache aggregated metrics (bytes, runes, newlines) for
// their subtrees. Line lookups descend the tree by newline count, so
// finding the start of any line costs O(log n) plus one chunk scan.
//
// Key features:
//   - O(log n) line-start lookup via aggregated newline counts
//   - Range traversal over chunks without materializing the whole text
//   - Rune counting with an ASCII fast path per chunk
//   - Values are immutable and safe for concurrent readers
//
// Basic usage:
//
//	r := rope.FromString("hello\nworld")
//	r.LineCount()                 // 2
//	r.LineText(1)                 // "world"
//	start, end := r.LineStartOffset(1), r.LineEndOffset(1)
//	r.RuneCount(start, end)       // 5
//
// Chunks are always split on UTF-8 boundaries when the input is valid
// UTF-8; callers that need that guarantee must validate before building.
package rope
