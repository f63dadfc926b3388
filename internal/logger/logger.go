package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger from ENV and LOG_LEVEL, writing to stderr.
func New() zerolog.Logger {
	return NewWithWriter(os.Stderr, os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
}

// NewWithWriter builds a logger writing to w. Development output is the
// human-readable console format; anything else is JSON. An empty or unknown
// level means debug.
func NewWithWriter(w io.Writer, env, level string) zerolog.Logger {
	// For Google Cloud Logging, the level field name should be "severity".
	zerolog.LevelFieldName = "severity"
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	out := w
	if env == "development" {
		out = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(out).With().Timestamp().Str("app", "quizhub").Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	return logger.Level(lvl)
}
