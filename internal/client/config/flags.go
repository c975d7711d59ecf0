package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/backuporganizer/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the collection API
//	-t int      request timeout in seconds
//	-d int      suggestion dismiss delay in milliseconds
//	-l string   log level
//
// Only these flags are parsed; see flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the collection API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	delay := fs.Int("d", int(cfg.DismissDelay.Milliseconds()), "suggestion dismiss delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		case "d":
			cfg.DismissDelay = time.Duration(*delay) * time.Millisecond
		}
	})
	return nil
}
