// Package config loads runtime configuration for the Backup Organizer CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: ORGANIZER_* variables, optionally seeded from a .env file.
//  3. Optional config file selected with -c or -config. Files with a .yaml or
//     .yml extension are read as YAML, anything else as JSON.
//  4. Command-line flags, which override earlier values.
//
// The merged Config is checked with (*Config).Validate before it is returned.
//
// Supported flags
//
//	-a string   base URL of the collection API
//	-t int      request timeout (seconds)
//	-d int      suggestion dismiss delay (milliseconds)
//	-l string   log level
//
// # File schema
//
// Durations can be strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_url": "http://127.0.0.1:5000",
//	  "request_timeout": "10s",
//	  "dismiss_delay": "100ms",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
package config
