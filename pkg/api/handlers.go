package api

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dxfkit/dxfkit/pkg/codec"
	dxfenc "github.com/dxfkit/dxfkit/pkg/encoding"
	"github.com/dxfkit/dxfkit/pkg/reader"
)

// Server holds the API server state.
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server.
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	if config.MaxTags <= 0 {
		config.MaxTags = 10000
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = 64 << 20
	}
	return &Server{config: config, metrics: metrics}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleInspect decodes an uploaded DXF file (binary or text form,
// detected by sentinel) into a JSON tag listing capped at MaxTags.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusRequestEntityTooLarge)
		return
	}
	if len(body) == 0 {
		sendError(w, "Empty request body", http.StatusBadRequest)
		return
	}

	enc, err := dxfenc.Lookup(s.config.CodePage)
	if err != nil {
		sendError(w, fmt.Sprintf("Bad code page configuration: %v", err), http.StatusInternalServerError)
		return
	}

	tr, format, err := reader.ForBytes(body, enc)
	if err != nil {
		s.metrics.RecordDecodeFailure(format, failureReason(err))
		s.metrics.RecordInspection(format, 0, false)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := InspectResult{
		RequestID: r.Header.Get(requestIDHeader),
		Format:    format,
		Tags:      []Tag{},
	}

	for len(result.Tags) < s.config.MaxTags {
		code, err := tr.Advance()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.metrics.RecordDecodeFailure(format, failureReason(err))
			s.metrics.RecordInspection(format, len(result.Tags), false)
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}

		value, err := tagValue(tr)
		if err != nil {
			s.metrics.RecordDecodeFailure(format, failureReason(err))
			s.metrics.RecordInspection(format, len(result.Tags), false)
			sendError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		result.Tags = append(result.Tags, Tag{
			Code:  int16(code),
			Type:  tr.Kind().String(),
			Value: value,
		})
	}
	result.Count = len(result.Tags)
	result.Truncated = result.Count == s.config.MaxTags

	s.metrics.RecordInspection(format, result.Count, true)
	sendSuccess(w, result)
}

// tagValue extracts the current value through the getter matching the
// record's type family. Binary chunks are rendered as hex text for JSON.
func tagValue(r reader.TagReader) (interface{}, error) {
	switch r.Kind() {
	case codec.TypeString, codec.TypeComment:
		return r.String()
	case codec.TypeInt16:
		return r.Int16()
	case codec.TypeInt32:
		return r.Int32()
	case codec.TypeInt64:
		return r.Int64()
	case codec.TypeDouble:
		return r.Double()
	case codec.TypeBool:
		return r.Bool()
	case codec.TypeBytes:
		b, err := r.Bytes()
		if err != nil {
			return nil, err
		}
		return hex.EncodeToString(b), nil
	case codec.TypeHandle:
		return r.Handle()
	}
	return nil, fmt.Errorf("no value decoded")
}

func failureReason(err error) string {
	var ferr *codec.FormatError
	if errors.As(err, &ferr) {
		return "format"
	}
	var merr *codec.TypeMismatchError
	if errors.As(err, &merr) {
		return "type_mismatch"
	}
	return "io"
}
