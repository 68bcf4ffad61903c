package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal PNG signature plus an IHDR-ish tail; enough for content sniffing
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("device vanished") }

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/gif;base64,R0lG", DataURI("image/gif", []byte("GIF")))
	assert.Equal(t, "data:application/octet-stream;base64,", DataURI("", nil))
}

func TestRead_SniffsWithoutName(t *testing.T) {
	uri, err := Read(bytes.NewReader(pngBytes), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), uri)

	payload := strings.TrimPrefix(uri, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestRead_ExtensionWins(t *testing.T) {
	uri, err := Read(bytes.NewReader(pngBytes), "photo.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"), uri)
}

func TestRead_Failure(t *testing.T) {
	_, err := Read(brokenReader{}, "x.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read image")
}

func TestIngest_CallbackReceivesResult(t *testing.T) {
	var got string
	h := Ingest(context.Background(), bytes.NewReader(pngBytes), "a.png", func(uri string, err error) {
		assert.NoError(t, err)
		got = uri
	})
	uri, err := h.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uri, got)
}

func TestIngest_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Ingest(ctx, bytes.NewReader(pngBytes), "", nil).Wait(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIngestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o600))

	uri, err := IngestFile(context.Background(), path, nil).Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	_, err = IngestFile(context.Background(), filepath.Join(t.TempDir(), "missing.png"), nil).Wait(context.Background())
	require.Error(t, err)
}
