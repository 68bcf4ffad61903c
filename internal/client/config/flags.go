package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/glitterpage/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database file path
//	-m string   Gemini model name
//	-l string   log level (debug, info, warn, error)
//	-t duration request timeout for the generative-text service
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not cause parse errors.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model name")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout, 0 for none")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
