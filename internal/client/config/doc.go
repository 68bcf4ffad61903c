// Package config loads runtime configuration for the glitterpage CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. ".yaml"/".yml"
//     files are read as YAML, everything else as JSON.
//  3. Environment: GEMINI_API_KEY, GEMINI_MODEL, GLITTERPAGE_DB.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string     database file path
//	-m string     Gemini model name
//	-l string     log level
//	-t duration   request timeout (e.g. 30s)
//
// # File schema
//
//	{
//	  "database_path": "glitterpage.db",
//	  "gemini_api_key": "...",
//	  "gemini_model": "gemini-2.5-flash",
//	  "request_timeout": "30s",
//	  "log_level": "debug"
//	}
//
// The API key can only come from the file or the environment, never from
// a flag, so it does not show up in process listings.
package config
