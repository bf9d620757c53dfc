// Package smtp delivers messages through an SMTP relay using gopkg.in/mail.v2.
package smtp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"

	"github.com/dmitrymomot/fluentmail/pkg/mailer"
	"github.com/dmitrymomot/fluentmail/pkg/mailer/mimemsg"
)

const providerName = "smtp"

// Dialer is the subset of *mail.Dialer used by Sender.
type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Sender implements mailer.Sender over SMTP.
type Sender struct {
	dialer Dialer
	domain string
}

// New creates an SMTP sender.
func New(cfg Config) (*Sender, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("%w: smtp host and port are required", mailer.ErrInvalidConfig)
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}

	return NewWithDialer(d, cfg.MessageIDDomain), nil
}

// NewWithDialer creates a sender on top of an existing dialer.
func NewWithDialer(d Dialer, messageIDDomain string) *Sender {
	if messageIDDomain == "" {
		messageIDDomain = "localhost"
	}
	return &Sender{dialer: d, domain: messageIDDomain}
}

// Send implements mailer.Sender.
// mail.v2 has no context support, so ctx is only checked before dialing.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString() + "@" + s.domain

	if err := s.dialer.DialAndSend(mimemsg.Build(msg, id)); err != nil {
		return nil, fmt.Errorf("smtp: failed to send email: %w", errors.Join(mailer.ErrSendFailed, err))
	}

	return &mailer.Receipt{MessageID: id, Provider: providerName}, nil
}

var _ mailer.Sender = (*Sender)(nil)
