// Package index builds a persistent handle index over DXF tag streams.
//
// Every DXF record stream assigns entities hexadecimal handles (group
// code 5, or 105 for dimension styles). The index scans a stream once and
// records, for each handle, the position of the record that declared it,
// so tooling can jump back to an entity without re-reading the file. The
// mapping is persisted in a pebble store; each scan runs under a fresh
// session ID so several files can share one store.
package index

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/dxfkit/dxfkit/pkg/codec"
	"github.com/dxfkit/dxfkit/pkg/reader"
)

// Group codes that declare a handle for the record being read.
const (
	entityHandleCode   = codec.GroupCode(5)
	dimstyleHandleCode = codec.GroupCode(105)
)

// HandleIndex maps canonical handles to stream positions, backed by a
// pebble store.
type HandleIndex struct {
	db      *pebble.DB
	session ksuid.KSUID
	count   int
}

// Open opens (or creates) the index store at path and starts a new
// session.
func Open(path string) (*HandleIndex, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open index store: %w", err)
	}
	return &HandleIndex{db: db, session: ksuid.New()}, nil
}

// Session returns the session ID namespacing this index's keys.
func (ix *HandleIndex) Session() ksuid.KSUID { return ix.session }

// Build scans r to the end of the stream, recording the position of every
// handle-declaring record. The position stored is the reader's position
// before the record was decoded, so binary streams index the byte offset
// of the record's group code. Returns the number of handles indexed.
func (ix *HandleIndex) Build(r reader.TagReader) (int, error) {
	indexed := 0
	for {
		pos := r.Position()
		code, err := r.Advance()
		if err != nil {
			if err == io.EOF {
				return indexed, nil
			}
			return indexed, err
		}

		var handle string
		switch code {
		case entityHandleCode:
			// Code 5 is string-typed on the wire but carries hex handle
			// text.
			text, err := r.String()
			if err != nil {
				return indexed, err
			}
			handle, err = codec.CanonicalHandle(text)
			if err != nil {
				return indexed, err
			}
		case dimstyleHandleCode:
			h, err := r.Handle()
			if err != nil {
				return indexed, err
			}
			handle = h
		default:
			continue
		}

		if err := ix.put(handle, pos); err != nil {
			return indexed, err
		}
		indexed++
	}
}

// Lookup returns the recorded position of a handle in the current
// session. The handle is canonicalized before lookup, so "00a3" finds an
// entry stored under "A3". The second result is false when the handle is
// not indexed.
func (ix *HandleIndex) Lookup(handle string) (int64, bool, error) {
	canonical, err := codec.CanonicalHandle(handle)
	if err != nil {
		return 0, false, err
	}
	data, closer, err := ix.db.Get(ix.key(canonical))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	defer closer.Close()

	if len(data) != 8 {
		return 0, false, fmt.Errorf("corrupt index entry for handle %s", canonical)
	}
	return int64(binary.LittleEndian.Uint64(data)), true, nil
}

// Count returns the number of handles indexed in this session.
func (ix *HandleIndex) Count() int { return ix.count }

// Close closes the underlying store.
func (ix *HandleIndex) Close() error { return ix.db.Close() }

func (ix *HandleIndex) put(handle string, pos int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(pos))
	if err := ix.db.Set(ix.key(handle), buf[:], pebble.NoSync); err != nil {
		return fmt.Errorf("failed to index handle %s: %w", handle, err)
	}
	ix.count++
	return nil
}

// key namespaces a handle under the session ID.
func (ix *HandleIndex) key(handle string) []byte {
	k := make([]byte, 0, len(ix.session)+1+len(handle))
	k = append(k, ix.session.Bytes()...)
	k = append(k, '/')
	k = append(k, handle...)
	return k
}
