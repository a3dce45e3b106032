package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger for diagnostics. Results are printed to
// stdout separately; the logger only carries progress and debug detail.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
