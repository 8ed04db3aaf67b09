package cli

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger on w. Verbosity 0 logs warnings, 1 adds
// info and 2 or more adds debug output. Quiet limits output to errors.
func NewLogger(w io.Writer, verbosity int, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
