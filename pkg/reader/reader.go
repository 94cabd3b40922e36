// Package reader decodes DXF tag streams, one record at a time.
//
// A DXF file is a flat sequence of (group code, value) records. The binary
// and text forms of the format carry the same logical stream; BinaryReader
// and TextReader decode each form under the same contract, so callers that
// build entities from the stream can consume either through the TagReader
// interface.
//
// The contract is deliberately narrow: Advance decodes exactly one record,
// and the caller then selects the typed getter matching the group code's
// type family. Invoking a getter of the wrong family is a caller error and
// fails with a codec.TypeMismatchError. Readers never look ahead beyond
// the current record and never validate which codes are structurally legal
// where; that is the entity builder's concern.
package reader

import "github.com/dxfkit/dxfkit/pkg/codec"

// TagReader is the code/value reader capability shared by the binary and
// text forms. One reader owns one forward-only cursor over one stream.
type TagReader interface {
	// Advance decodes the next record, replacing the current code and
	// value together. It returns io.EOF at a clean end of stream. After a
	// failed Advance the reader's position is not trustworthy for
	// resuming.
	Advance() (codec.GroupCode, error)

	// Code returns the group code of the last decoded record.
	Code() codec.GroupCode

	// Kind returns the type family of the last decoded value.
	Kind() codec.DataType

	// Position reports the current position for diagnostics: a byte
	// offset for binary streams, a line number for text streams.
	Position() int64

	Byte() (byte, error)
	Bytes() ([]byte, error)
	Int16() (int16, error)
	Int32() (int32, error)
	Int64() (int64, error)
	Bool() (bool, error)
	Double() (float64, error)
	String() (string, error)
	Handle() (string, error)
}

// tagState is the current-record snapshot shared by both readers: the
// group code and the decoded value cell, replaced together on every
// Advance.
type tagState struct {
	code codec.GroupCode
	val  codec.Value
}

func (s *tagState) Code() codec.GroupCode { return s.code }
func (s *tagState) Kind() codec.DataType { return s.val.Kind() }
func (s *tagState) Value() codec.Value { return s.val }
func (s *tagState) Byte() (byte, error) { return s.val.Byte() }
func (s *tagState) Bytes() ([]byte, error) { return s.val.Bytes() }
func (s *tagState) Int16() (int16, error) { return s.val.Int16() }
func (s *tagState) Int32() (int32, error) { return s.val.Int32() }
func (s *tagState) Int64() (int64, error) { return s.val.Int64() }
func (s *tagState) Bool() (bool, error) { return s.val.Bool() }
func (s *tagState) Double() (float64, error) {
	return s.val.Double()
}
func (s *tagState) String() (string, error) { return s.val.String() }
func (s *tagState) Handle() (string, error) { return s.val.Handle() }

var (
	_ TagReader = (*BinaryReader)(nil)
	_ TagReader = (*TextReader)(nil)
)
