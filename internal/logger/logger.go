// Package logger configures process-wide structured logging. All output goes
// to stderr: stdout carries the JSON-RPC protocol stream and must never see
// log text.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs the global logger at the given level. Unknown levels fall
// back to info rather than failing startup.
func Init(level string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger().
		Level(parsed)
}

// ForComponent returns a child logger tagged with the component name.
func ForComponent(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
