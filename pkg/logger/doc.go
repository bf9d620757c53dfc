// Package logger provides the structured loggers used by the mail builder
// and the log-only sender.
//
// It builds on log/slog with two additions: context extractors that inject
// per-cycle values into every record, and optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New()
//	m := fluentmail.New(sender, fluentmail.WithLogger(log))
//
// Every record logged during a send cycle carries the "mail_cycle_id"
// attribute, because the builder stores the id with WithCycleID and New
// always installs CycleIDExtractor.
//
// Additional extractors work the same way:
//
//	tenantExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(tenantKey{}).(string); ok {
//			return slog.String("tenant_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//	log := logger.New(tenantExtractor)
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// Errors create Sentry issues, warnings are stored as logs. With an empty DSN
// the logger falls back to stdout only.
//
// # Handler Decoration
//
// LogHandlerDecorator wraps any slog.Handler:
//
//	h := slog.NewTextHandler(os.Stderr, nil)
//	log := slog.New(logger.NewLogHandlerDecorator(h, logger.CycleIDExtractor))
package logger
