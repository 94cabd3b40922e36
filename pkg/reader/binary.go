package reader

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	xtext "golang.org/x/text/encoding"

	"github.com/dxfkit/dxfkit/pkg/codec"
	dxfenc "github.com/dxfkit/dxfkit/pkg/encoding"
)

// Sentinel is the 18-character text identifying a binary DXF file. It is
// the first part of a fixed 22-byte header; the remaining 4 bytes are
// CR, LF, SUB and NUL.
const Sentinel = "AutoCAD Binary DXF"

// headerLen is the full sentinel block consumed at construction.
const headerLen = 22

// byteSource is the forward-only cursor over the underlying stream. It is
// shared between a reader and its clones, so advancing any holder moves
// the cursor for all of them.
type byteSource struct {
	r      *bufio.Reader
	offset int64
}

func (s *byteSource) readFull(buf []byte) error {
	n, err := io.ReadFull(s.r, buf)
	s.offset += int64(n)
	return err
}

// readCString reads bytes up to and including a 0x00 terminator and
// returns the run without the terminator.
func (s *byteSource) readCString() ([]byte, error) {
	b, err := s.r.ReadBytes(0)
	s.offset += int64(len(b))
	if err != nil {
		return nil, err
	}
	return b[:len(b)-1], nil
}

// BinaryReader decodes the binary form of a DXF tag stream.
//
// Use is single-threaded: Advance performs blocking reads and no locking
// is done. The reader exclusively owns its byte source unless Clone is
// used, in which case all clones share one cursor and must be driven
// sequentially.
type BinaryReader struct {
	src *byteSource
	dec *xtext.Decoder
	tagState
}

// NewBinaryReader consumes the 22-byte header from r and validates the
// sentinel. enc is the drawing's text encoding; nil selects UTF-8. The
// header bytes are consumed whether or not the sentinel matches, since
// the comparison requires reading them first.
func NewBinaryReader(r io.Reader, enc xtext.Encoding) (*BinaryReader, error) {
	src := &byteSource{r: bufio.NewReader(r)}

	header := make([]byte, headerLen)
	if err := src.readFull(header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, &codec.FormatError{Position: src.offset, Msg: "file too short for binary DXF sentinel"}
		}
		return nil, err
	}
	if string(header[:len(Sentinel)]) != Sentinel {
		return nil, &codec.FormatError{Position: 0, Msg: "not a binary DXF file"}
	}

	if enc == nil {
		enc = dxfenc.Default
	}
	return &BinaryReader{src: src, dec: enc.NewDecoder()}, nil
}

// Advance reads the next 2-byte little-endian group code and decodes the
// payload its range dictates. Code and value are replaced together; on
// error neither changes and the stream position is not trustworthy for
// resuming. A clean end of stream returns io.EOF.
func (r *BinaryReader) Advance() (codec.GroupCode, error) {
	var buf [8]byte
	if err := r.src.readFull(buf[:2]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return 0, &codec.FormatError{Position: r.src.offset, Msg: "truncated group code"}
		}
		return 0, err
	}
	code := codec.GroupCode(int16(binary.LittleEndian.Uint16(buf[:2])))
	pos := r.src.offset

	kind, ok := code.TypeOf()
	if !ok {
		return 0, &codec.FormatError{Position: pos, Msg: fmt.Sprintf("unrecognized group code %d", code)}
	}

	var val codec.Value
	switch kind {
	case codec.TypeComment:
		// The 999 comment record exists only in text-form DXF.
		return 0, &codec.FormatError{Position: pos, Msg: "comment group code 999 is not allowed in binary DXF"}

	case codec.TypeString:
		raw, err := r.src.readCString()
		if err != nil {
			return 0, r.payloadErr(err)
		}
		s, err := r.decodeText(raw)
		if err != nil {
			return 0, &codec.FormatError{Position: pos, Msg: fmt.Sprintf("undecodable text for group code %d: %v", code, err)}
		}
		val = codec.StringValue(s)

	case codec.TypeDouble:
		if err := r.src.readFull(buf[:8]); err != nil {
			return 0, r.payloadErr(err)
		}
		val = codec.DoubleValue(math.Float64frombits(binary.LittleEndian.Uint64(buf[:8])))

	case codec.TypeInt16:
		if err := r.src.readFull(buf[:2]); err != nil {
			return 0, r.payloadErr(err)
		}
		val = codec.Int16Value(int16(binary.LittleEndian.Uint16(buf[:2])))

	case codec.TypeInt32:
		if err := r.src.readFull(buf[:4]); err != nil {
			return 0, r.payloadErr(err)
		}
		val = codec.Int32Value(int32(binary.LittleEndian.Uint32(buf[:4])))

	case codec.TypeInt64:
		if err := r.src.readFull(buf[:8]); err != nil {
			return 0, r.payloadErr(err)
		}
		val = codec.Int64Value(int64(binary.LittleEndian.Uint64(buf[:8])))

	case codec.TypeBool:
		if err := r.src.readFull(buf[:1]); err != nil {
			return 0, r.payloadErr(err)
		}
		val = codec.BoolValue(buf[0])

	case codec.TypeBytes:
		if err := r.src.readFull(buf[:1]); err != nil {
			return 0, r.payloadErr(err)
		}
		chunk := make([]byte, int(buf[0]))
		if err := r.src.readFull(chunk); err != nil {
			return 0, r.payloadErr(err)
		}
		val = codec.BytesValue(chunk)

	case codec.TypeHandle:
		// Handles are hex text on the wire, stored canonicalized.
		raw, err := r.src.readCString()
		if err != nil {
			return 0, r.payloadErr(err)
		}
		h, err := codec.CanonicalHandle(string(raw))
		if err != nil {
			var ferr *codec.FormatError
			if errors.As(err, &ferr) {
				return 0, &codec.FormatError{Position: pos, Msg: ferr.Msg}
			}
			return 0, err
		}
		val = codec.HandleValue(h)
	}

	r.code, r.val = code, val
	return code, nil
}

// Position returns the absolute byte offset in the underlying stream,
// including the 22 header bytes. Used for diagnostics only.
func (r *BinaryReader) Position() int64 { return r.src.offset }

// Clone returns a new reader sharing this reader's byte source and text
// encoding, with a copy of the current code/value snapshot. This is a
// reference-sharing view, not an independent cursor: advancing the clone
// advances the shared source for every holder. Clones must not be driven
// from multiple goroutines.
func (r *BinaryReader) Clone() *BinaryReader {
	return &BinaryReader{src: r.src, dec: r.dec, tagState: r.tagState}
}

func (r *BinaryReader) decodeText(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	out, err := r.dec.Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (r *BinaryReader) payloadErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &codec.FormatError{Position: r.src.offset, Msg: "truncated record payload"}
	}
	return err
}
