// Package fluentmail is a fluent mail-composition facade over transactional
// email providers.
//
// A Builder collects the options of one message through chained setters,
// validates them when the message is sent, lets an addressee filter narrow
// the recipients, fills the body through a pluggable template engine and
// hands the assembled message to a mailer.Sender.
//
// # Usage
//
//	sender, err := ses.New(ses.Config{Region: "eu-west-1", AccessKey: key, SecretKey: secret})
//	if err != nil {
//		return err
//	}
//
//	m := fluentmail.New(sender,
//		fluentmail.WithDefaultSourceName("Team"),
//		fluentmail.WithDefaultSourceMail("team@example.com"),
//		fluentmail.WithLogger(logger.New()),
//	)
//
//	receipt, err := m.
//		Addressees("alice@example.com", "bob@example.com").
//		Subject("Your order shipped").
//		Template(templating.Options{
//			Template: "Hello {{ name }}, order {{ order }} is on its way. {{ note? }}",
//			Mapping:  templating.Mapping{"name": "Alice", "order": "A-42"},
//		}).
//		UseBcc(true).
//		Send(ctx)
//
// # Cycles
//
// Every Send or ComputedTemplate call consumes the options set since the
// previous call and leaves the Builder empty, on success and on failure alike.
// Constructor options (default source, filter, engine, logger) are kept.
//
// Send checks, in order:
//
//  1. addressees and subject are set, otherwise *MissingOptionsError
//  2. the addressee filter keeps at least one addressee, otherwise Send
//     returns (nil, nil) without sending
//  3. the template computes, otherwise *TemplateEngineError
//     (*MissingOptionsError when no template was set)
//  4. a source name and mail resolve, otherwise *MissingOptionsError
//  5. the sender accepts the message, otherwise *MailerError
//
// With UseBcc(true) and more than one remaining addressee, the first one is
// the visible recipient and the others are sent as Bcc.
//
// # Errors
//
// Callers branch on the error kind with errors.As:
//
//	var missing *fluentmail.MissingOptionsError
//	var mailErr *fluentmail.MailerError
//	var tplErr *fluentmail.TemplateEngineError
//	switch {
//	case errors.As(err, &missing):
//	case errors.As(err, &tplErr):
//	case errors.As(err, &mailErr):
//	}
//
// MailerError and TemplateEngineError keep the original failure's message and
// stack trace but not its identity, so errors.Is against provider errors does
// not match through them.
package fluentmail
