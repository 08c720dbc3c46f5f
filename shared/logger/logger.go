package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger tagged with the service name. When pretty is
// true the output is rendered for a terminal instead of JSON.
func New(service string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if pretty {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(writer).With().Timestamp().Str("service", service).Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Str("service", service).Logger()
}
