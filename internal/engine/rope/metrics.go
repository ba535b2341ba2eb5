package rope

import "unicode/utf8"

// ByteOffset represents an absolute byte position in the rope.
type ByteOffset uint64

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid under Add, which is what lets internal nodes
// answer line and length queries without visiting their leaves.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes ByteOffset

	// Runes is the number of decoded runes. Invalid bytes count as one
	// rune each, matching utf8.RuneCountInString.
	Runes uint64

	// Lines is the number of newline characters.
	Lines uint32

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains newline characters.
	FlagHasNewlines

	// FlagHasCR indicates the text contains carriage returns.
	FlagHasCR
)

// Add combines two summaries (monoid operation).
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	result := TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Runes: s.Runes + other.Runes,
		Lines: s.Lines + other.Lines,
		Flags: s.Flags & other.Flags & FlagASCII,
	}
	result.Flags |= (s.Flags | other.Flags) &^ FlagASCII
	return result
}

// IsZero returns true if this is the zero/identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// IsASCII reports whether every byte of the span is ASCII.
func (s TextSummary) IsASCII() bool {
	return s.Flags&FlagASCII != 0
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	if len(s) == 0 {
		return TextSummary{Flags: FlagASCII}
	}

	sum := TextSummary{
		Bytes: ByteOffset(len(s)),
		Flags: FlagASCII,
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\n':
			sum.Lines++
			sum.Flags |= FlagHasNewlines
		case c == '\r':
			sum.Flags |= FlagHasCR
		case c >= utf8.RuneSelf:
			sum.Flags &^= FlagASCII
		}
	}

	if sum.IsASCII() {
		sum.Runes = uint64(len(s))
	} else {
		sum.Runes = uint64(utf8.RuneCountInString(s))
	}
	return sum
}

// FindNthNewline finds the byte position of the nth newline (1-indexed).
// Returns -1 if not found.
func FindNthNewline(s string, n uint32) int {
	if n == 0 {
		return -1
	}

	var count uint32
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return i
			}
		}
	}
	return -1
}
