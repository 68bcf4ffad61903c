package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndFormats(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{"database_path": "j.db", "request_timeout": "10s"}`)
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{GeminiModel: "default-model"}
		parseFile(cfg)

		assert.Equal(t, "j.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "default-model", cfg.GeminiModel)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yaml", "gemini_model: y-model\nrequest_timeout: 2m\nlog_level: debug\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, "y-model", cfg.GeminiModel)
		assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("yaml integer nanoseconds", func(t *testing.T) {
		path := writeTempFile(t, "cfg.yml", "request_timeout: 1500000000\n")
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		parseFile(cfg)

		assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabasePath: "defaults.db", RequestTimeout: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "defaults.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid json → panics", func(t *testing.T) {
		bad := writeTempFile(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid yaml duration → panics", func(t *testing.T) {
		bad := writeTempFile(t, "bad.yaml", "request_timeout: soon\n")
		os.Args = []string{"testbin", "-c", bad}
		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
