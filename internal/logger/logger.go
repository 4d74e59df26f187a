// Package logger configures the process-global structured logger, the
// way arc's internal/logger package does for its daemon (§4.G).
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global zerolog logger with the requested level
// and output format ("json" or "console").
func Setup(level, format string) {
	zerolog.SetGlobalLevel(parseLevel(level))

	var output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if strings.ToLower(format) != "console" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns a logger scoped to the given component name.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
