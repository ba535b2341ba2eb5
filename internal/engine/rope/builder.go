package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Builder provides efficient incremental construction of a rope.
// It buffers writes and builds the rope structure when Build() is called.
// The zero value is ready to use.
type Builder struct {
	chunks   []Chunk
	buffer   strings.Builder
	totalLen int
}

// NewBuilder creates a new rope builder.
func NewBuilder() *Builder {
	return &Builder{
		chunks: make([]Chunk, 0, 64),
	}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}

	b.totalLen += len(s)
	b.buffer.WriteString(s)

	if b.buffer.Len() >= MaxChunkSize*2 {
		b.flushBuffer(false)
	}
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (n int, err error) {
	b.WriteString(string(p))
	return len(p), nil
}

// flushBuffer converts the buffer contents to chunks. Unless final is
// set, an incomplete UTF-8 sequence at the end of the buffer is kept back
// so that a rune split across two writes never straddles chunks.
func (b *Builder) flushBuffer(final bool) {
	if b.buffer.Len() == 0 {
		return
	}

	s := b.buffer.String()
	b.buffer.Reset()

	if !final {
		if cut := incompleteTail(s); cut < len(s) {
			b.buffer.WriteString(s[cut:])
			s = s[:cut]
		}
	}

	b.chunks = append(b.chunks, splitIntoChunks(s)...)
}

// incompleteTail returns the offset of a trailing partial UTF-8 sequence
// in s, or len(s) if s ends on a rune boundary.
func incompleteTail(s string) int {
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			if utf8.FullRuneInString(s[i:]) {
				return len(s)
			}
			return i
		}
	}
	return len(s)
}

// Len returns the total number of bytes written.
func (b *Builder) Len() int {
	return b.totalLen
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.chunks = nil
	b.buffer.Reset()
	b.totalLen = 0
}

// Build creates the rope from accumulated data.
// After calling Build, the builder is reset.
func (b *Builder) Build() Rope {
	b.flushBuffer(true)

	chunks := b.chunks
	b.Reset()

	return buildFromChunks(chunks)
}

// ReadFrom implements io.ReaderFrom.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.WriteString(string(buf[:n]))
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// FromLines creates a rope from a slice of lines.
// Each line will have a newline appended except the last.
func FromLines(lines []string) Rope {
	if len(lines) == 0 {
		return New()
	}

	var builder Builder
	for i, line := range lines {
		builder.WriteString(line)
		if i < len(lines)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.Build()
}
