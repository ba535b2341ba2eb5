package document

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/dshills/glance/internal/engine/rope"
)

// readBufferSize is the size of reads from the byte source.
const readBufferSize = 64 * 1024

// Open reads a document from r. The name is used in error messages and
// reported by Name. Read failures and invalid UTF-8 are returned as a
// *ReadError; the latter wraps a *DecodeError.
func Open(r io.Reader, name string) (*Document, error) {
	text, err := readText(r)
	if err != nil {
		return nil, &ReadError{Name: name, Err: err}
	}
	return &Document{name: name, text: text}, nil
}

// OpenFile opens and reads the file at path.
func OpenFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Name: path, Err: err}
	}
	defer f.Close()

	return Open(f, path)
}

// readText streams r into a rope, validating UTF-8 as it goes. A sequence
// cut by a read boundary is carried over to the next read.
func readText(r io.Reader) (rope.Rope, error) {
	builder := rope.NewBuilder()
	buf := make([]byte, readBufferSize)
	var carry []byte
	var consumed int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := append(carry, buf[:n]...)
			cut := completePrefix(data)

			if pos := rope.ValidateUTF8(string(data[:cut])); pos >= 0 {
				return rope.Rope{}, &DecodeError{Offset: consumed + int64(pos)}
			}
			builder.WriteString(string(data[:cut]))
			consumed += int64(cut)
			carry = append([]byte(nil), data[cut:]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return rope.Rope{}, err
		}
	}

	if len(carry) > 0 {
		return rope.Rope{}, &DecodeError{Offset: consumed}
	}
	return builder.Build(), nil
}

// completePrefix returns the length of the longest prefix of data that
// does not end in a partial UTF-8 sequence.
func completePrefix(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if utf8.FullRune(data[i:]) {
				return len(data)
			}
			return i
		}
	}
	return len(data)
}
