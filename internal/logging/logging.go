package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects how the process logger is built.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // "text" (human-readable) or "json" (structured)
	File   string // when set, log to a size-rotated file instead of stderr
}

// New builds the process logger. Output goes to stderr unless a file is
// configured; stdout and the transcript file carry program output only.
func New(opts Options) *slog.Logger {
	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    32, // MB
			MaxBackups: 2,
		}
	}
	return NewWithWriter(opts, w)
}

// NewWithWriter builds a logger writing to w.
func NewWithWriter(opts Options, w io.Writer) *slog.Logger {
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, ho)
	default:
		handler = slog.NewTextHandler(w, ho)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Returns slog.LevelInfo for unrecognized values.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
