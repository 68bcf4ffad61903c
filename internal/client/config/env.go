package config

import "os"

// Environment variables read by parseEnv.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGeminiModel  = "GEMINI_MODEL"
	EnvDatabasePath = "GLITTERPAGE_DB"
)

// parseEnv overlays cfg with non-empty environment variables.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvGeminiAPIKey); ok {
		overlay(&cfg.GeminiAPIKey, v)
	}
	if v, ok := os.LookupEnv(EnvGeminiModel); ok {
		overlay(&cfg.GeminiModel, v)
	}
	if v, ok := os.LookupEnv(EnvDatabasePath); ok {
		overlay(&cfg.DatabasePath, v)
	}
}
