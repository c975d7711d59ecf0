package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names understood by parseEnv.
const (
	EnvAPIURL         = "ORGANIZER_API_URL"
	EnvRequestTimeout = "ORGANIZER_REQUEST_TIMEOUT"
	EnvDismissDelay   = "ORGANIZER_DISMISS_DELAY"
	EnvLogLevel       = "ORGANIZER_LOG_LEVEL"
	EnvLogBackend     = "ORGANIZER_LOG_BACKEND"
)

// dotenvFile is loaded into the process environment when present. Variables
// already set in the environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with ORGANIZER_* variables. Durations use
// time.ParseDuration syntax ("10s", "250ms").
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	if v, ok := os.LookupEnv(EnvAPIURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogBackend); ok {
		cfg.LogBackend = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvRequestTimeout, &cfg.RequestTimeout},
		{EnvDismissDelay, &cfg.DismissDelay},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	return nil
}
