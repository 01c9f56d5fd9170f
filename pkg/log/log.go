package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the CLI logger: human-readable console output on stderr,
// debug level when verbose is set.
func New(verbose bool) *zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.999Z07:00"}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &logger
}
