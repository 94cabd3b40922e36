package codec

import "fmt"

// FormatError reports bytes (or text) that cannot be mechanically decoded:
// a bad sentinel, an unrecognized group code, a comment record in binary
// form, or malformed hexadecimal handle text. Position is the byte offset
// for binary streams and the line number for text streams; -1 when no
// position is available.
type FormatError struct {
	Position int64
	Msg      string
}

func (e *FormatError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("dxf: %s", e.Msg)
	}
	return fmt.Sprintf("dxf: %s (position %d)", e.Msg, e.Position)
}

// TypeMismatchError reports a typed accessor invoked against a value of a
// different kind. This is a caller contract violation: the group code just
// read determines which accessor is valid.
type TypeMismatchError struct {
	Want DataType
	Got  DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("dxf: value is %s, not %s", e.Got, e.Want)
}
