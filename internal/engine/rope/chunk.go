package rope

import "unicode/utf8"

// Chunk sizes in bytes. Every chunk except the last of a rope holds at
// least MinChunkSize bytes.
const (
	MinChunkSize    = 128
	MaxChunkSize    = 256
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2

	// lineSlack is how far a cut may move from TargetChunkSize to land
	// just after a newline.
	lineSlack = MinChunkSize / 4
)

// Chunk is an immutable run of text held by a leaf, together with its
// summary.
type Chunk struct {
	data    string
	summary TextSummary
}

// NewChunk wraps s and computes its summary.
func NewChunk(s string) Chunk {
	return Chunk{data: s, summary: ComputeSummary(s)}
}

func (c Chunk) String() string       { return c.data }
func (c Chunk) Summary() TextSummary { return c.summary }
func (c Chunk) Len() int             { return len(c.data) }
func (c Chunk) IsEmpty() bool        { return len(c.data) == 0 }

// splitIntoChunks cuts s into chunks no longer than MaxChunkSize. Cuts
// land on rune boundaries, and after a newline when one is within
// lineSlack of the target, so short lines usually sit in a single chunk.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, len(s)/TargetChunkSize+1)
	for len(s) > MaxChunkSize {
		cut := cutPoint(s, TargetChunkSize)
		chunks = append(chunks, NewChunk(s[:cut]))
		s = s[cut:]
	}
	return append(chunks, NewChunk(s))
}

// cutPoint picks where to end a chunk taken from the front of s, near
// target. The result is always in (0, len(s)].
func cutPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}

	lo := max(target-lineSlack, 1)
	hi := min(target+lineSlack, len(s))
	for i := target; i < hi; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	for i := target; i < len(s) && i <= target+utf8.UTFMax; i++ {
		if utf8.RuneStart(s[i]) {
			return i
		}
	}
	for i := target - 1; i > 0; i-- {
		if utf8.RuneStart(s[i]) {
			return i
		}
	}
	return target
}

// ValidateUTF8 returns the byte offset of the first invalid UTF-8
// sequence in s, or -1 when s is valid.
func ValidateUTF8(s string) int {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
