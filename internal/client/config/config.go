package config

import (
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/client/genai"
)

// Config holds runtime settings for the glitterpage CLI.
//
// RequestTimeout bounds each call to the generative-text service; zero
// means no timeout.
type Config struct {
	DatabasePath   string
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "glitterpage.db"
	c.GeminiAPIKey = ""
	c.GeminiModel = "gemini-2.5-flash"
	c.GeminiBaseURL = genai.DefaultBaseURL
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
