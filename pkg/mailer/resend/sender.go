package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/fluentmail/pkg/mailer"
)

// providerName is reported in receipts.
const providerName = "resend"

// EmailsAPI is the subset of the Resend emails service used by Sender.
type EmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails EmailsAPI
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: resend api key is required", mailer.ErrInvalidConfig)
	}
	return NewWithAPI(resend.NewClient(cfg.APIKey).Emails), nil
}

// NewWithAPI creates a sender on top of an existing emails service.
func NewWithAPI(api EmailsAPI) *Sender {
	return &Sender{emails: api}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Bcc:     msg.Bcc,
		Subject: msg.Subject,
	}

	if msg.BodyType() == mailer.ContentTypeHTML {
		req.Html = msg.Body
	} else {
		req.Text = msg.Body
	}

	if len(msg.Attachments) > 0 {
		req.Attachments = convertAttachments(msg.Attachments)
	}

	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", errors.Join(mailer.ErrSendFailed, err))
	}

	receipt := &mailer.Receipt{Provider: providerName}
	if resp != nil {
		receipt.MessageID = resp.Id
	}
	return receipt, nil
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return result
}

var _ mailer.Sender = (*Sender)(nil)
