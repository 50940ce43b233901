package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the process logger. Outside production the output is the
// human-readable console writer.
func New(environment string) zerolog.Logger {
	if environment == "production" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stdout}
	return zerolog.New(writer).With().Timestamp().Logger()
}
