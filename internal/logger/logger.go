// Package logger sets up the application's zerolog logger.
package logger

import (
	"os"

	"portfolio-api/internal/config"

	"github.com/rs/zerolog"
)

// New returns the process-wide logger. Development gets a human-readable
// console writer; everything else logs JSON to stderr.
func New(cfg config.AppConfig) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.Env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.With().
		Timestamp().
		Str("service", cfg.Name).
		Logger()
}
