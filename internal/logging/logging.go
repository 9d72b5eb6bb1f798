// Package logging provides the leveled, structured logger every cmd/
// binary in this module shares. It wraps github.com/rs/zerolog rather
// than the standard library's log.Logger so every component logs in the
// same structured, field-based style.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger that writes structured lines to os.Stderr,
// tagged with component, at the level named by the LOG_LEVEL environment
// variable ("debug", "info", "warn", "error"; default "info").
func New(component string) zerolog.Logger {
	return zerolog.New(os.Stderr).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "":
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}
