// Package mimemsg renders a mailer.Message into a MIME document using
// gopkg.in/mail.v2. It is shared by the SMTP sender and the SES raw sender.
package mimemsg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/mail.v2"

	"github.com/dmitrymomot/fluentmail/pkg/mailer"
)

// Build converts msg into a mail.v2 message.
// The Bcc header is set so SMTP dialers can derive the envelope recipients;
// mail.v2 never writes it into the rendered document.
func Build(msg *mailer.Message, messageID string) *mail.Message {
	m := mail.NewMessage()

	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", msg.Bcc...)
	}
	m.SetHeader("Subject", msg.Subject)
	if messageID != "" {
		m.SetHeader("Message-ID", fmt.Sprintf("<%s>", strings.Trim(messageID, "<>")))
	}

	m.SetBody(string(msg.BodyType())+"; charset=UTF-8", msg.Body)

	for _, a := range msg.Attachments {
		settings := []mail.FileSetting{mail.SetCopyFunc(copyContent(a.Content))}

		header := map[string][]string{}
		if a.ContentType != "" {
			header["Content-Type"] = []string{a.ContentType}
		}
		if a.ContentID != "" {
			header["Content-ID"] = []string{fmt.Sprintf("<%s>", a.ContentID)}
			settings = append(settings, mail.SetHeader(header))
			m.Embed(a.Filename, settings...)
			continue
		}
		if len(header) > 0 {
			settings = append(settings, mail.SetHeader(header))
		}
		m.Attach(a.Filename, settings...)
	}

	return m
}

// Render writes the MIME document for msg and returns its bytes.
func Render(msg *mailer.Message, messageID string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Build(msg, messageID).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("mimemsg: failed to render message: %w", err)
	}
	return buf.Bytes(), nil
}

func copyContent(content []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(content)
		return err
	}
}
