package reader

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dxfkit/dxfkit/pkg/codec"
)

// TextReader decodes the ASCII form of a DXF tag stream: records are
// code-line/value-line pairs under the same code-range table as the
// binary form. Unlike the binary form, group code 999 is legal here and
// carries a comment string.
type TextReader struct {
	r    *bufio.Reader
	line int64
	tagState
}

// NewTextReader wraps r. Unlike the binary form there is no sentinel;
// the stream starts directly with the first code line.
func NewTextReader(r io.Reader) *TextReader {
	return &TextReader{r: bufio.NewReader(r)}
}

// Advance reads the next code-line/value-line pair and decodes the value
// per the code's type family. It returns io.EOF at a clean end of stream.
func (t *TextReader) Advance() (codec.GroupCode, error) {
	codeLine, err := t.readLine()
	if err != nil {
		if err == io.EOF && codeLine == "" {
			return 0, io.EOF
		}
		if err != io.EOF {
			return 0, err
		}
		// A code line with no value line following is a broken pair.
		return 0, &codec.FormatError{Position: t.line, Msg: "group code without value line"}
	}

	n, perr := strconv.ParseInt(strings.TrimSpace(codeLine), 10, 16)
	if perr != nil {
		return 0, &codec.FormatError{Position: t.line, Msg: fmt.Sprintf("malformed group code line %q", codeLine)}
	}
	code := codec.GroupCode(n)

	kind, ok := code.TypeOf()
	if !ok {
		return 0, &codec.FormatError{Position: t.line, Msg: fmt.Sprintf("unrecognized group code %d", code)}
	}

	valueLine, err := t.readLine()
	if err != nil && !(err == io.EOF && valueLine != "") {
		if err == io.EOF {
			return 0, &codec.FormatError{Position: t.line, Msg: "group code without value line"}
		}
		return 0, err
	}

	val, derr := t.decodeValue(code, kind, valueLine)
	if derr != nil {
		return 0, derr
	}

	t.code, t.val = code, val
	return code, nil
}

func (t *TextReader) decodeValue(code codec.GroupCode, kind codec.DataType, text string) (codec.Value, error) {
	switch kind {
	case codec.TypeString:
		return codec.StringValue(text), nil

	case codec.TypeComment:
		return codec.CommentValue(text), nil

	case codec.TypeDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return codec.Value{}, t.badValue(code, text)
		}
		return codec.DoubleValue(f), nil

	case codec.TypeInt16:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 16)
		if err != nil {
			return codec.Value{}, t.badValue(code, text)
		}
		return codec.Int16Value(int16(n)), nil

	case codec.TypeInt32:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return codec.Value{}, t.badValue(code, text)
		}
		return codec.Int32Value(int32(n)), nil

	case codec.TypeInt64:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return codec.Value{}, t.badValue(code, text)
		}
		return codec.Int64Value(n), nil

	case codec.TypeBool:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 16)
		if err != nil {
			return codec.Value{}, t.badValue(code, text)
		}
		return codec.BoolValue(byte(n)), nil

	case codec.TypeBytes:
		chunk, err := hex.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return codec.Value{}, t.badValue(code, text)
		}
		return codec.BytesValue(chunk), nil

	case codec.TypeHandle:
		h, err := codec.CanonicalHandle(text)
		if err != nil {
			var ferr *codec.FormatError
			if errors.As(err, &ferr) {
				return codec.Value{}, &codec.FormatError{Position: t.line, Msg: ferr.Msg}
			}
			return codec.Value{}, err
		}
		return codec.HandleValue(h), nil
	}

	return codec.Value{}, &codec.FormatError{Position: t.line, Msg: fmt.Sprintf("unrecognized group code %d", code)}
}

// Position returns the number of lines consumed so far. Text streams are
// diagnosed by line, not byte offset.
func (t *TextReader) Position() int64 { return t.line }

// readLine returns the next line without its terminator. CRLF and LF are
// both accepted. The error is io.EOF when the stream ended; a final line
// without a terminator is still returned alongside io.EOF.
func (t *TextReader) readLine() (string, error) {
	s, err := t.r.ReadString('\n')
	if len(s) > 0 {
		t.line++
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, err
}

func (t *TextReader) badValue(code codec.GroupCode, text string) error {
	return &codec.FormatError{Position: t.line, Msg: fmt.Sprintf("malformed value %q for group code %d", text, code)}
}
