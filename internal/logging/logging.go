// Package logging configures the process-wide zerolog logger. Diagnostics go
// to stderr so report output on stdout stays clean.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var global zerolog.Logger

func init() {
	global = New(os.Stderr, zerolog.WarnLevel)
}

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Setup resolves the level string and replaces the global logger. Unknown
// levels fall back to warn.
func Setup(level string, verbose bool) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.WarnLevel
	}
	if verbose {
		parsed = zerolog.DebugLevel
	}
	global = New(os.Stderr, parsed)
}

func SetGlobal(l zerolog.Logger) {
	global = l
}

func Global() zerolog.Logger {
	return global
}
