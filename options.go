package fluentmail

import (
	"log/slog"

	"github.com/dmitrymomot/fluentmail/pkg/filter"
	"github.com/dmitrymomot/fluentmail/pkg/templating"
)

// Option configures a Builder for its whole lifetime.
type Option func(*Builder)

// WithDefaultSourceMail sets the sender address used when a cycle does not
// call SourceMail.
func WithDefaultSourceMail(mail string) Option {
	return func(b *Builder) {
		b.sourceMail = mail
	}
}

// WithDefaultSourceName sets the sender display name used when a cycle does
// not call SourceName.
func WithDefaultSourceName(name string) Option {
	return func(b *Builder) {
		b.sourceName = name
	}
}

// WithConfig applies the defaults from cfg.
func WithConfig(cfg Config) Option {
	return func(b *Builder) {
		b.sourceMail = cfg.DefaultSourceMail
		b.sourceName = cfg.DefaultSourceName
	}
}

// WithAddresseeFilter sets the hook that narrows addressees before sending.
// If nil, addressees are used unchanged.
func WithAddresseeFilter(f filter.Func) Option {
	return func(b *Builder) {
		if f != nil {
			b.filter = f
		}
	}
}

// WithTemplateEngine replaces the default substitution engine.
// If nil, the default engine is kept.
func WithTemplateEngine(e templating.Engine) Option {
	return func(b *Builder) {
		if e != nil {
			b.engine = e
		}
	}
}

// WithLogger sets the logger.
// If nil, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}
