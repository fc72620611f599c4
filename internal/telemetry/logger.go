// Package telemetry provides the structured logger used by the ambient
// stack (CLI, fuzz harness, stress harness). The core btree package never
// imports it: the tree itself has nothing to log.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Path  string // "" or "stderr" writes to stderr; any other value rotates to a file
	Level string // "debug", "info", "warn", "error"
}

// New builds a zerolog.Logger writing to stderr or to a rotating file,
// depending on opts.Path.
func New(opts Options) zerolog.Logger {
	var w io.Writer
	switch opts.Path {
	case "", "stderr":
		w = os.Stderr
	default:
		w = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
