package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node represents a node in the rope B+ tree.
// Leaf nodes (height == 0) contain text chunks.
// Internal nodes (height > 0) contain child node references.
type Node struct {
	height  uint8       // 0 for leaves, >0 for internal
	summary TextSummary // Aggregated metrics for entire subtree

	// Internal node fields (height > 0)
	children       []*Node       // Child nodes
	childSummaries []TextSummary // Per-child summaries for efficient seeking

	// Leaf node fields (height == 0)
	chunks []Chunk // Text chunks in this leaf
}

// newLeafNode creates an empty leaf node.
func newLeafNode() *Node {
	return &Node{
		height:  0,
		summary: TextSummary{Flags: FlagASCII},
	}
}

// newLeafNodeWithChunks creates a leaf node with the given chunks.
func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{
		height: 0,
		chunks: chunks,
	}
	n.summary = TextSummary{Flags: FlagASCII}
	for _, chunk := range n.chunks {
		n.summary = n.summary.Add(chunk.Summary())
	}
	return n
}

// newInternalNode creates an internal node with the given children.
func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}

	summaries := make([]TextSummary, len(children))
	total := TextSummary{Flags: FlagASCII}
	for i, child := range children {
		summaries[i] = child.summary
		total = total.Add(child.summary)
	}

	return &Node{
		height:         children[0].height + 1,
		summary:        total,
		children:       children,
		childSummaries: summaries,
	}
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() ByteOffset {
	return n.summary.Bytes
}

// LineCount returns the number of lines in this subtree.
func (n *Node) LineCount() uint32 {
	return n.summary.Lines + 1
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, chunk := range n.chunks {
			sb.WriteString(chunk.String())
		}
		return
	}

	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// eachChunkInRange calls fn with the portion of every chunk that overlaps
// the byte range [start, end), in order. The chunk summary is passed along
// when the whole chunk lies inside the range, so callers can take fast
// paths; partial chunks get a zero summary. Returns false if fn stopped
// the walk.
func (n *Node) eachChunkInRange(start, end ByteOffset, fn func(text string, whole TextSummary) bool) bool {
	if start >= end {
		return true
	}

	if n.IsLeaf() {
		offset := ByteOffset(0)
		for _, chunk := range n.chunks {
			chunkLen := ByteOffset(chunk.Len())
			chunkEnd := offset + chunkLen

			if chunkEnd <= start {
				offset = chunkEnd
				continue
			}
			if offset >= end {
				break
			}

			sliceStart := 0
			if start > offset {
				sliceStart = int(start - offset)
			}
			sliceEnd := chunk.Len()
			if end < chunkEnd {
				sliceEnd = int(end - offset)
			}

			var whole TextSummary
			if sliceStart == 0 && sliceEnd == chunk.Len() {
				whole = chunk.Summary()
			}
			if !fn(chunk.String()[sliceStart:sliceEnd], whole) {
				return false
			}
			offset = chunkEnd
		}
		return true
	}

	offset := ByteOffset(0)
	for i, child := range n.children {
		childLen := n.childSummaries[i].Bytes
		childEnd := offset + childLen

		if childEnd <= start {
			offset = childEnd
			continue
		}
		if offset >= end {
			break
		}

		childStart := ByteOffset(0)
		if start > offset {
			childStart = start - offset
		}
		childStop := childLen
		if end < childEnd {
			childStop = end - offset
		}

		if !child.eachChunkInRange(childStart, childStop, fn) {
			return false
		}
		offset = childEnd
	}
	return true
}

// findChildByNewline finds the child containing the nth newline
// (1-indexed) of this subtree. Returns the child index along with the
// number of newlines and bytes in the children before it.
func (n *Node) findChildByNewline(nth uint32) (int, uint32, ByteOffset) {
	var lines uint32
	var bytes ByteOffset
	for i, summary := range n.childSummaries {
		if lines+summary.Lines >= nth {
			return i, lines, bytes
		}
		lines += summary.Lines
		bytes += summary.Bytes
	}

	last := len(n.children) - 1
	return last, lines - n.childSummaries[last].Lines, bytes - n.childSummaries[last].Bytes
}
