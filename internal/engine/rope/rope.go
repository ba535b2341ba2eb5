package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Rope is an immutable rope data structure for efficient text storage.
// The zero value is an empty rope with one (empty) line.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}
	return buildFromChunks(splitIntoChunks(s))
}

// FromReader creates a rope from an io.Reader.
// The content is not validated; see ValidateUTF8.
func FromReader(r io.Reader) (Rope, error) {
	var builder Builder
	if _, err := builder.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	return builder.Build(), nil
}

// buildFromChunks builds a balanced tree bottom-up from a slice of chunks.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var nodes []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		nodes = append(nodes, newLeafNodeWithChunks(leafChunks))
	}

	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	return Rope{root: nodes[0]}
}

// Len returns the total byte length.
func (r Rope) Len() ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// RuneLen returns the total number of runes.
func (r Rope) RuneLen() uint64 {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Runes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() uint32 {
	if r.root == nil {
		return 1
	}
	return r.root.LineCount()
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{Flags: FlagASCII}
	}
	return r.root.summary
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(int(r.Len()))
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end).
func (r Rope) Slice(start, end ByteOffset) string {
	if r.root == nil || start >= end || start >= r.Len() {
		return ""
	}
	end = min(end, r.Len())

	var sb strings.Builder
	sb.Grow(int(end - start))
	r.root.eachChunkInRange(start, end, func(text string, _ TextSummary) bool {
		sb.WriteString(text)
		return true
	})
	return sb.String()
}

// EachChunk calls fn for each piece of text in the byte range [start, end)
// in order, stopping early if fn returns false. Pieces never straddle a
// chunk boundary, so no copy of the range is made.
func (r Rope) EachChunk(start, end ByteOffset, fn func(text string) bool) {
	if r.root == nil || start >= end {
		return
	}
	end = min(end, r.Len())
	r.root.eachChunkInRange(start, end, func(text string, _ TextSummary) bool {
		return fn(text)
	})
}

// RuneCount returns the number of runes in the byte range [start, end).
// Whole ASCII chunks are counted from their summaries.
func (r Rope) RuneCount(start, end ByteOffset) int {
	if r.root == nil || start >= end {
		return 0
	}
	end = min(end, r.Len())

	count := 0
	r.root.eachChunkInRange(start, end, func(text string, whole TextSummary) bool {
		if !whole.IsZero() {
			count += int(whole.Runes)
		} else {
			count += utf8.RuneCountInString(text)
		}
		return true
	})
	return count
}

// LineStartOffset returns the byte offset of the start of the given line.
// Lines are 0-indexed. Lines past the end map to Len().
func (r Rope) LineStartOffset(line uint32) ByteOffset {
	if r.root == nil || line == 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}

	// Line N starts right after the Nth newline.
	node := r.root
	remaining := line
	offset := ByteOffset(0)
	for !node.IsLeaf() {
		idx, linesBefore, bytesBefore := node.findChildByNewline(remaining)
		remaining -= linesBefore
		offset += bytesBefore
		node = node.children[idx]
	}

	for _, chunk := range node.chunks {
		lines := chunk.Summary().Lines
		if lines >= remaining {
			return offset + ByteOffset(FindNthNewline(chunk.String(), remaining)) + 1
		}
		remaining -= lines
		offset += ByteOffset(chunk.Len())
	}
	return r.Len()
}

// LineEndOffset returns the byte offset of the end of the given line
// (not including the newline character).
func (r Rope) LineEndOffset(line uint32) ByteOffset {
	if r.root == nil {
		return 0
	}

	lineCount := r.LineCount()
	if line >= lineCount-1 {
		return r.Len()
	}
	return r.LineStartOffset(line+1) - 1
}

// LineText returns the text of the given line (not including newline).
func (r Rope) LineText(line uint32) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}
