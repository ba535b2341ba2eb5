package document

import (
	"strings"
	"testing"
)

func setupLargeDocument(b *testing.B, lines int) *Document {
	b.Helper()
	var sb strings.Builder
	line := strings.Repeat("x", 80) + "\n"
	for i := 0; i < lines; i++ {
		sb.WriteString(line)
	}
	return FromText(sb.String())
}

func BenchmarkOpen(b *testing.B) {
	text := strings.Repeat(strings.Repeat("x", 80)+"\n", 10000)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Open(strings.NewReader(text), "bench"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLineCount(b *testing.B) {
	d := setupLargeDocument(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.LineCount()
	}
}

func BenchmarkLineMiddle(b *testing.B) {
	d := setupLargeDocument(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = d.Line(5000)
	}
}

func BenchmarkLineSlice(b *testing.B) {
	d := setupLargeDocument(b, 10000)
	line, _ := d.Line(5000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = line.Slice(20, 40)
	}
}

func BenchmarkVisibleWindow(b *testing.B) {
	d := setupLargeDocument(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for row := 4000; row < 4050; row++ {
			if line, ok := d.Line(row); ok {
				_ = line.Slice(0, 120)
			}
		}
	}
}
