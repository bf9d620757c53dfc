package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a no-op logger that discards all output.
// The mail builder uses it until WithLogger is applied.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
