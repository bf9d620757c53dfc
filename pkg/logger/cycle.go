package logger

import (
	"context"
	"log/slog"
)

// CycleIDKey is the attribute name used for mail cycle ids.
const CycleIDKey = "mail_cycle_id"

type cycleIDKey struct{}

// WithCycleID stores the id of the current compose/send cycle in ctx.
func WithCycleID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, cycleIDKey{}, id)
}

// CycleID returns the compose/send cycle id stored in ctx, if any.
func CycleID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(cycleIDKey{}).(string)
	return id, ok && id != ""
}

// CycleIDExtractor adds the cycle id to every record logged with a context
// that carries one.
func CycleIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := CycleID(ctx); ok {
		return slog.String(CycleIDKey, id), true
	}
	return slog.Attr{}, false
}
