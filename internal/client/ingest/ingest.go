// Package ingest turns a user-selected image into a data URI that can be
// stored in an entity field and rendered directly.
package ingest

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/glitterpage/internal/task"
)

const fallbackMIME = "application/octet-stream"

// DataURI encodes data as "data:<mime>;base64,<payload>".
func DataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = fallbackMIME
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Read consumes r and returns its data URI. name, when given, picks the
// MIME type by extension; otherwise the content is sniffed. No size cap is
// applied.
func Read(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return DataURI(detectMIME(name, data), data), nil
}

func detectMIME(name string, data []byte) string {
	if ext := filepath.Ext(name); ext != "" {
		if t := mime.TypeByExtension(strings.ToLower(ext)); t != "" {
			t, _, _ = strings.Cut(t, ";")
			return t
		}
	}
	if len(data) == 0 {
		return fallbackMIME
	}
	t, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return t
}

// Ingest reads r in the background. onDone receives the data URI, or an
// error in which case the caller must leave its entity untouched.
func Ingest(ctx context.Context, r io.Reader, name string, onDone func(string, error)) *task.Handle[string] {
	return task.Go(ctx, func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return Read(r, name)
	}, onDone)
}

// IngestFile opens path and ingests it in the background.
func IngestFile(ctx context.Context, path string, onDone func(string, error)) *task.Handle[string] {
	return task.Go(ctx, func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open image: %w", err)
		}
		defer f.Close()
		return Read(f, filepath.Base(path))
	}, onDone)
}
