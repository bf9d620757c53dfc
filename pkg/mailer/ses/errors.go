package ses

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/fluentmail/pkg/mailer"
)

var (
	// ErrMessageRejected indicates SES refused the message content or sender.
	ErrMessageRejected = errors.New("ses: message rejected")

	// ErrThrottled indicates the account sending quota or rate was exceeded.
	ErrThrottled = errors.New("ses: sending rate exceeded")
)

// wrapSESError maps SES API error codes onto sentinel errors.
// The result always matches mailer.ErrSendFailed.
func wrapSESError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "MessageRejected", "MailFromDomainNotVerifiedException", "AccountSuspendedException", "SendingPausedException":
			return fmt.Errorf("%w: %w: %v", mailer.ErrSendFailed, ErrMessageRejected, err)
		case "TooManyRequestsException", "LimitExceededException", "Throttling":
			return fmt.Errorf("%w: %w: %v", mailer.ErrSendFailed, ErrThrottled, err)
		}
	}
	return fmt.Errorf("%w: %v", mailer.ErrSendFailed, err)
}
