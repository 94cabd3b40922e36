package cmd

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxfkit/dxfkit/pkg/reader"
)

func writeBinaryFixture(t *testing.T, records ...[]byte) string {
	t.Helper()
	stream := []byte(reader.Sentinel + "\r\n\x1a\x00")
	for _, rec := range records {
		stream = append(stream, rec...)
	}
	path := filepath.Join(t.TempDir(), "fixture.dxf")
	require.NoError(t, os.WriteFile(path, stream, 0600))
	return path
}

func rec(code int16, payload ...byte) []byte {
	buf := make([]byte, 2, 2+len(payload))
	binary.LittleEndian.PutUint16(buf, uint16(code))
	return append(buf, payload...)
}

func TestDumpFile_Binary(t *testing.T) {
	path := writeBinaryFixture(t,
		rec(0, 'L', 'I', 'N', 'E', 0),
		rec(70, 0x02, 0x00),
		rec(330, '0', '0', 'f', 'f', 0),
	)

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, path, "", 0))

	s := out.String()
	assert.Contains(t, s, "# format: binary")
	assert.Contains(t, s, "LINE")
	assert.Contains(t, s, "int16")
	assert.Contains(t, s, "FF")
}

func TestDumpFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.dxf")
	require.NoError(t, os.WriteFile(path, []byte("  0\r\nSECTION\r\n999\r\nnote\r\n"), 0600))

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, path, "", 0))

	s := out.String()
	assert.Contains(t, s, "# format: text")
	assert.Contains(t, s, "SECTION")
	assert.Contains(t, s, "note")
}

func TestDumpFile_MaxRecords(t *testing.T) {
	path := writeBinaryFixture(t,
		rec(70, 1, 0),
		rec(70, 2, 0),
		rec(70, 3, 0),
	)

	var out bytes.Buffer
	require.NoError(t, dumpFile(&out, path, "", 2))
	assert.NotContains(t, out.String(), "3")
}

func TestDumpFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		assert.Error(t, dumpFile(&out, filepath.Join(t.TempDir(), "nope.dxf"), "", 0))
	})

	t.Run("unknown code page", func(t *testing.T) {
		path := writeBinaryFixture(t)
		var out bytes.Buffer
		assert.Error(t, dumpFile(&out, path, "ansi_9999", 0))
	})

	t.Run("decode failure surfaces", func(t *testing.T) {
		path := writeBinaryFixture(t, rec(2000))
		var out bytes.Buffer
		assert.Error(t, dumpFile(&out, path, "", 0))
	})
}
