package mailer

import "fmt"

// ContentType is the MIME type of a message body.
type ContentType string

const (
	ContentTypeText ContentType = "text/plain"
	ContentTypeHTML ContentType = "text/html"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Message is a fully assembled email handed to a Sender.
//
// Attachments stays nil when the caller never provided any, so senders can
// tell "no attachments requested" apart from an explicitly empty list.
type Message struct {
	From        string       // Complete source, "Name <address>"
	Subject     string       // Email subject
	Body        string       // Computed template text
	ContentType ContentType  // Body MIME type; empty means ContentTypeText
	To          []string     // Recipients (at least one required)
	Bcc         []string     // Blind carbon copy recipients
	Attachments []Attachment // File attachments, passed through unmodified
}

// BodyType returns the body MIME type, defaulting to plain text.
func (m *Message) BodyType() ContentType {
	if m.ContentType == "" {
		return ContentTypeText
	}
	return m.ContentType
}

// Recipients returns To followed by Bcc.
func (m *Message) Recipients() []string {
	all := make([]string, 0, len(m.To)+len(m.Bcc))
	all = append(all, m.To...)
	return append(all, m.Bcc...)
}

// Validate checks the fields every provider requires.
func (m *Message) Validate() error {
	if m == nil || len(m.To) == 0 {
		return ErrNoRecipient
	}
	if m.From == "" {
		return ErrNoSender
	}
	if m.Subject == "" {
		return ErrNoSubject
	}
	return nil
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}

// Receipt is the provider's acknowledgement of an accepted message.
type Receipt struct {
	MessageID string // Provider-assigned message identifier
	Provider  string // Sender name, e.g. "resend" or "ses"
}
