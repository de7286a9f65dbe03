// Package logging builds the structured logger used for diagnostics on stderr.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text slog.Logger writing records at or above level to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
