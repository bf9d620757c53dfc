// Package ses delivers messages through the Amazon SES v2 API.
//
// Messages are sent as raw MIME so attachments and HTML bodies work the same
// way they do over SMTP.
package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/dmitrymomot/fluentmail/pkg/mailer"
	"github.com/dmitrymomot/fluentmail/pkg/mailer/mimemsg"
)

const providerName = "ses"

// API is the subset of *sesv2.Client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender implements mailer.Sender using Amazon SES.
type Sender struct {
	api              API
	configurationSet string
}

// New creates an SES sender with static credentials.
// Use NewWithAPI to supply a client built from the SDK's default credential chain.
func New(cfg Config) (*Sender, error) {
	cfg.applyDefaults()
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: ses access key and secret key are required", mailer.ErrInvalidConfig)
	}

	client := sesv2.New(sesv2.Options{}, func(o *sesv2.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithAPI(client, cfg.ConfigurationSet), nil
}

// NewWithAPI creates a sender on top of an existing SES client.
func NewWithAPI(api API, configurationSet string) *Sender {
	return &Sender{api: api, configurationSet: configurationSet}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) (*mailer.Receipt, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	raw, err := mimemsg.Render(msg, "")
	if err != nil {
		return nil, err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses:  msg.To,
			BccAddresses: msg.Bcc,
		},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	out, err := s.api.SendEmail(ctx, input)
	if err != nil {
		return nil, wrapSESError(err)
	}

	receipt := &mailer.Receipt{Provider: providerName}
	if out != nil {
		receipt.MessageID = aws.ToString(out.MessageId)
	}
	return receipt, nil
}

var _ mailer.Sender = (*Sender)(nil)
