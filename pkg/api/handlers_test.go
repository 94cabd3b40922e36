package api

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxfkit/dxfkit/pkg/reader"
)

func newTestServer(t *testing.T, config ServerConfig) *httptest.Server {
	t.Helper()
	metrics := NewMetricsWith(prometheus.NewRegistry())
	srv := httptest.NewServer(NewServer(config, metrics).Router())
	t.Cleanup(srv.Close)
	return srv
}

func binaryFixture(records ...[]byte) []byte {
	stream := []byte(reader.Sentinel + "\r\n\x1a\x00")
	for _, rec := range records {
		stream = append(stream, rec...)
	}
	return stream
}

func record(code int16, payload ...byte) []byte {
	buf := make([]byte, 2, 2+len(payload))
	binary.LittleEndian.PutUint16(buf, uint16(code))
	return append(buf, payload...)
}

func decodeResponse(t *testing.T, resp *http.Response) (APIResponse, InspectResult) {
	t.Helper()
	defer resp.Body.Close()

	var envelope APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if envelope.Data == nil {
		return envelope, InspectResult{}
	}

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var result InspectResult
	require.NoError(t, json.Unmarshal(raw, &result))
	return envelope, result
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, ServerConfig{})

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandleInspect_BinaryStream(t *testing.T) {
	srv := newTestServer(t, ServerConfig{})

	stream := binaryFixture(
		record(0, 'L', 'I', 'N', 'E', 0),
		record(70, 0x01, 0x00),
		record(290, 1),
	)
	resp, err := http.Post(srv.URL+"/api/v1/tags", "application/octet-stream", bytes.NewReader(stream))
	require.NoError(t, err)

	envelope, result := decodeResponse(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)
	assert.Equal(t, "binary", result.Format)
	assert.Equal(t, 3, result.Count)
	assert.False(t, result.Truncated)
	assert.NotEmpty(t, result.RequestID)

	require.Len(t, result.Tags, 3)
	assert.Equal(t, int16(0), result.Tags[0].Code)
	assert.Equal(t, "string", result.Tags[0].Type)
	assert.Equal(t, "LINE", result.Tags[0].Value)
	assert.Equal(t, "int16", result.Tags[1].Type)
	assert.Equal(t, float64(1), result.Tags[1].Value) // JSON numbers decode as float64
	assert.Equal(t, "bool", result.Tags[2].Type)
	assert.Equal(t, true, result.Tags[2].Value)
}

func TestHandleInspect_TextStream(t *testing.T) {
	srv := newTestServer(t, ServerConfig{})

	text := "  0\r\nLINE\r\n330\r\n00ff\r\n999\r\na comment\r\n"
	resp, err := http.Post(srv.URL+"/api/v1/tags", "application/octet-stream", bytes.NewReader([]byte(text)))
	require.NoError(t, err)

	envelope, result := decodeResponse(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)
	assert.Equal(t, "text", result.Format)
	require.Len(t, result.Tags, 3)
	assert.Equal(t, "handle", result.Tags[1].Type)
	assert.Equal(t, "FF", result.Tags[1].Value)
	assert.Equal(t, "comment", result.Tags[2].Type)
	assert.Equal(t, "a comment", result.Tags[2].Value)
}

func TestHandleInspect_TruncatesAtMaxTags(t *testing.T) {
	srv := newTestServer(t, ServerConfig{MaxTags: 2})

	stream := binaryFixture(
		record(70, 1, 0),
		record(70, 2, 0),
		record(70, 3, 0),
	)
	resp, err := http.Post(srv.URL+"/api/v1/tags", "application/octet-stream", bytes.NewReader(stream))
	require.NoError(t, err)

	_, result := decodeResponse(t, resp)
	assert.Equal(t, 2, result.Count)
	assert.True(t, result.Truncated)
}

func TestHandleInspect_DecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		body []byte
	}{
		{"binary comment record", binaryFixture(record(999, 'x', 0))},
		{"unrecognized binary code", binaryFixture(record(2000))},
		{"truncated binary payload", binaryFixture(record(10, 1, 2))},
		{"malformed text code line", []byte("banana\r\nvalue\r\n")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, ServerConfig{})
			resp, err := http.Post(srv.URL+"/api/v1/tags", "application/octet-stream", bytes.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleInspect_EmptyBody(t *testing.T) {
	srv := newTestServer(t, ServerConfig{})
	resp, err := http.Post(srv.URL+"/api/v1/tags", "application/octet-stream", bytes.NewReader(nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIKeyMiddleware(t *testing.T) {
	srv := newTestServer(t, ServerConfig{APIKey: "secret"})

	t.Run("missing key", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong key", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
		require.NoError(t, err)
		req.Header.Set("X-API-Key", "wrong")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("correct key", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
		require.NoError(t, err)
		req.Header.Set("X-API-Key", "secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("metrics endpoint unprotected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
