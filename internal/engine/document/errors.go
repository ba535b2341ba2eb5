package document

import "fmt"

// ReadError reports a failure to load a document from its byte source.
// It wraps either the underlying I/O error or a *DecodeError.
type ReadError struct {
	Name string // Source name, usually a file path
	Err  error  // Underlying error
}

func (e *ReadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("read document: %v", e.Err)
	}
	return fmt.Sprintf("read document %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// DecodeError reports content that is not valid UTF-8 text.
type DecodeError struct {
	Offset int64 // Byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte %d", e.Offset)
}
