package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/glitterpage/internal/flagx"
	"github.com/dmitrijs2005/glitterpage/internal/timex"
)

// FileConfig is a DTO used only for decoding config files. Durations go
// through timex.Duration so files may write "30s" or integer nanoseconds.
type FileConfig struct {
	DatabasePath   string         `json:"database_path" yaml:"database_path"`
	GeminiAPIKey   string         `json:"gemini_api_key" yaml:"gemini_api_key"`
	GeminiModel    string         `json:"gemini_model" yaml:"gemini_model"`
	GeminiBaseURL  string         `json:"gemini_base_url" yaml:"gemini_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c or -config. Files ending
// in .yaml or .yml are decoded as YAML, anything else as JSON. Fields the
// file leaves empty keep their current value.
//
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	overlay(&cfg.DatabasePath, fc.DatabasePath)
	overlay(&cfg.GeminiAPIKey, fc.GeminiAPIKey)
	overlay(&cfg.GeminiModel, fc.GeminiModel)
	overlay(&cfg.GeminiBaseURL, fc.GeminiBaseURL)
	overlay(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
