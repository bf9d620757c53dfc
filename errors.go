package fluentmail

import (
	"errors"
	"runtime/debug"
)

// Fixed messages of the three validation sites.
const (
	msgAddresseesAndSubject = "Addressees and Subject must be defined"
	msgTemplatingOptions    = "Templating options must be defined"
	msgSource               = "Source name and source mail must be defined"
)

// MissingOptionsError reports a required option that was not set when the
// cycle was validated.
type MissingOptionsError struct {
	Message string
}

func (e *MissingOptionsError) Error() string {
	return "[MissingOptionsError] " + e.Message
}

// MailerError reports a failure raised while delivering a message.
// It carries the original failure's text and trace, not its identity.
type MailerError struct {
	Message string
	Stack   string
}

func (e *MailerError) Error() string {
	return "[MailerError] " + e.Message
}

// TemplateEngineError reports a failure raised by the template engine during
// a send or compute cycle. It carries the original failure's text and trace,
// not its identity.
type TemplateEngineError struct {
	Message string
	Stack   string
}

func (e *TemplateEngineError) Error() string {
	return "[TemplateEngineError] " + e.Message
}

func newMailerError(err error) *MailerError {
	return &MailerError{Message: err.Error(), Stack: stackOf(err)}
}

func newTemplateEngineError(err error) *TemplateEngineError {
	return &TemplateEngineError{Message: err.Error(), Stack: stackOf(err)}
}

// stackOf returns the trace carried by err when one of the errors in its
// chain exposes it, otherwise the stack at the wrap site.
func stackOf(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch st := e.(type) {
		case interface{ Stack() []byte }:
			return string(st.Stack())
		case interface{ Stack() string }:
			return st.Stack()
		case interface{ StackTrace() string }:
			return st.StackTrace()
		}
	}
	return string(debug.Stack())
}
