package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger that tags records with the mail cycle
// id, followed by any additional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithLevel(slog.LevelInfo, extractors...)
}

// NewWithLevel is New with an explicit minimum level.
func NewWithLevel(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	log := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(NewLogHandlerDecorator(log, withCycleID(extractors)...))
}

// withCycleID prepends CycleIDExtractor to extractors.
func withCycleID(extractors []ContextExtractor) []ContextExtractor {
	return append([]ContextExtractor{CycleIDExtractor}, extractors...)
}
