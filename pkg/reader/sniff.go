package reader

import (
	"bytes"
	"io"

	xtext "golang.org/x/text/encoding"
)

// Format names returned by ForBytes.
const (
	FormatBinary = "binary"
	FormatText   = "text"
)

// IsBinary reports whether data begins with the binary DXF sentinel.
func IsBinary(data []byte) bool {
	return len(data) >= len(Sentinel) && string(data[:len(Sentinel)]) == Sentinel
}

// ForBytes constructs the reader matching the form of data: a
// BinaryReader when the sentinel is present, a TextReader otherwise.
// enc applies to binary streams only; text streams are read as-is.
func ForBytes(data []byte, enc xtext.Encoding) (TagReader, string, error) {
	if IsBinary(data) {
		r, err := NewBinaryReader(bytes.NewReader(data), enc)
		if err != nil {
			return nil, FormatBinary, err
		}
		return r, FormatBinary, nil
	}
	return NewTextReader(bytes.NewReader(data)), FormatText, nil
}

// Drain advances r until the stream ends or fails, returning the number
// of records decoded. Used by tooling that only needs counts.
func Drain(r TagReader) (int, error) {
	var n int
	for {
		if _, err := r.Advance(); err != nil {
			if err == io.EOF {
				return n, nil
			}
			return n, err
		}
		n++
	}
}
