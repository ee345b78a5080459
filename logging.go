package main

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. It is also installed as the
// slog default so library code that logs through slog.Default follows the
// configured level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
