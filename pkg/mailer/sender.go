package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Message and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// Returns a receipt on success or an error if delivery fails.
	Send(ctx context.Context, msg *Message) (*Receipt, error)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg *Message) (*Receipt, error)

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, msg *Message) (*Receipt, error) {
	return f(ctx, msg)
}
