package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the CLI logger. Diagnostics stay off unless a level is
// configured, so command output is not interleaved with log lines.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.Disabled
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
