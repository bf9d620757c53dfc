// Package logsender provides a mailer.Sender that writes messages to a
// slog.Logger instead of delivering them. Use it in development and tests.
package logsender

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fluentmail/pkg/logger"
	"github.com/dmitrymomot/fluentmail/pkg/mailer"
	"github.com/dmitrymomot/fluentmail/pkg/sanitizer"
)

const providerName = "log"

// Sender logs every message it is asked to send.
type Sender struct {
	log         *slog.Logger
	includeBody bool
}

// Option configures the Sender.
type Option func(*Sender)

// WithBody includes the message body in log records.
// HTML bodies are logged as their text content.
func WithBody() Option {
	return func(s *Sender) {
		s.includeBody = true
	}
}

// New creates a log-only sender. A nil logger uses logger.New().
func New(log *slog.Logger, opts ...Option) *Sender {
	if log == nil {
		log = logger.New()
	}
	s := &Sender{log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	attrs := []slog.Attr{
		slog.String("message_id", id),
		slog.String("from", msg.From),
		slog.Any("to", msg.To),
		slog.Any("bcc", msg.Bcc),
		slog.String("subject", msg.Subject),
		slog.String("content_type", string(msg.BodyType())),
		slog.Int("attachments", len(msg.Attachments)),
	}
	if s.includeBody {
		body := msg.Body
		if msg.BodyType() == mailer.ContentTypeHTML {
			body = sanitizer.Text(body)
		}
		attrs = append(attrs, slog.String("body", body))
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "email sent", attrs...)

	return &mailer.Receipt{MessageID: id, Provider: providerName}, nil
}

var _ mailer.Sender = (*Sender)(nil)
