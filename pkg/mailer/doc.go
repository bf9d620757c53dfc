// Package mailer defines the transport-level message handed to email
// providers and the Sender interface they implement.
//
// The package is provider-agnostic. Concrete senders live in subpackages:
//
//   - resend: Resend HTTP API
//   - ses: Amazon SES v2 API (raw MIME, so attachments are supported)
//   - smtp: any SMTP relay via gopkg.in/mail.v2
//   - logsender: writes messages to a slog.Logger, for development
//
// # Message
//
// A Message is assembled by the fluent builder in the root package:
//
//	msg := &mailer.Message{
//		From:    mailer.Recipient("Team", "team@example.com"),
//		To:      []string{"user@example.com"},
//		Subject: "Welcome",
//		Body:    "Hello!",
//	}
//
// Attachments is left nil when none were requested.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Receipt, error) {
//		// Send email using your provider's API
//		return &mailer.Receipt{MessageID: id, Provider: "mine"}, nil
//	}
//
// SenderFunc adapts a plain function for tests and small adapters.
//
// # Errors
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSender: No From address
//   - ErrNoSubject: No subject provided
//   - ErrInvalidConfig: Provider configuration is incomplete
//   - ErrSendFailed: Provider rejected or failed to deliver the message
package mailer
