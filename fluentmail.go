package fluentmail

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fluentmail/pkg/filter"
	"github.com/dmitrymomot/fluentmail/pkg/logger"
	"github.com/dmitrymomot/fluentmail/pkg/mailer"
	"github.com/dmitrymomot/fluentmail/pkg/templating"
)

// mailOptions accumulates the options of one compose/send cycle.
type mailOptions struct {
	templating  any
	subject     string
	sourceMail  string
	sourceName  string
	contentType mailer.ContentType
	addressees  []string
	attachments []mailer.Attachment
	useBcc      bool
	hasTemplate bool
}

// Builder composes and sends one message at a time through chained setters.
//
// Setters record options for the current cycle and return the Builder.
// Send and ComputedTemplate consume those options and leave the Builder empty
// again, whether they succeed or fail. Constructor options are kept for the
// Builder's lifetime.
//
// A Builder is not meant for overlapping cycles: setters from concurrent
// callers would mix into the same message. Use one Builder per goroutine, or
// Clone a configured one.
type Builder struct {
	sender     mailer.Sender
	engine     templating.Engine
	filter     filter.Func
	logger     *slog.Logger
	sourceMail string
	sourceName string

	mu   sync.Mutex
	opts mailOptions
}

// New creates a Builder delivering through sender.
//
// Example:
//
//	m := fluentmail.New(sesSender,
//		fluentmail.WithDefaultSourceName("Team"),
//		fluentmail.WithDefaultSourceMail("team@example.com"),
//	)
//	receipt, err := m.Addressees("user@example.com").
//		Subject("Welcome").
//		Template(templating.Options{Template: "Hello {{ name }}", Mapping: templating.Mapping{"name": "Ann"}}).
//		Send(ctx)
func New(sender mailer.Sender, opts ...Option) *Builder {
	b := &Builder{
		sender: sender,
		engine: templating.New(),
		filter: filter.Identity,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Clone returns an empty Builder sharing b's constructor options.
func (b *Builder) Clone() *Builder {
	return &Builder{
		sender:     b.sender,
		engine:     b.engine,
		filter:     b.filter,
		logger:     b.logger,
		sourceMail: b.sourceMail,
		sourceName: b.sourceName,
	}
}

// Template sets the templating options handed to the template engine.
// The default engine accepts a plain string or templating.Options.
// nil and "" leave the templating options unset.
func (b *Builder) Template(options any) *Builder {
	return b.set(func(o *mailOptions) {
		o.templating = options
		o.hasTemplate = options != nil && options != ""
	})
}

// Subject sets the message subject.
func (b *Builder) Subject(subject string) *Builder {
	return b.set(func(o *mailOptions) { o.subject = subject })
}

// SourceMail sets the sender address, overriding the default one.
func (b *Builder) SourceMail(sourceMail string) *Builder {
	return b.set(func(o *mailOptions) { o.sourceMail = sourceMail })
}

// SourceName sets the sender display name, overriding the default one.
func (b *Builder) SourceName(sourceName string) *Builder {
	return b.set(func(o *mailOptions) { o.sourceName = sourceName })
}

// Addressees replaces the addressee list with one or more addresses.
func (b *Builder) Addressees(addressees ...string) *Builder {
	return b.set(func(o *mailOptions) { o.addressees = slices.Clone(addressees) })
}

// Attachments replaces the attachment list with one or more attachments.
// They are handed to the sender unmodified.
func (b *Builder) Attachments(attachments ...mailer.Attachment) *Builder {
	return b.set(func(o *mailOptions) { o.attachments = attachments })
}

// UseBcc hides all but the first addressee by moving them to Bcc.
// Only applies when more than one addressee survives filtering.
func (b *Builder) UseBcc(useBcc bool) *Builder {
	return b.set(func(o *mailOptions) { o.useBcc = useBcc })
}

// HTML marks the computed body as HTML instead of plain text.
func (b *Builder) HTML(html bool) *Builder {
	return b.set(func(o *mailOptions) {
		o.contentType = mailer.ContentTypeText
		if html {
			o.contentType = mailer.ContentTypeHTML
		}
	})
}

// Send validates the current options, filters the addressees, computes the
// body and hands the assembled message to the sender.
//
// When the addressee filter drops every addressee, Send returns (nil, nil)
// without contacting the sender. The Builder is empty when Send returns.
func (b *Builder) Send(ctx context.Context) (*mailer.Receipt, error) {
	opts := b.take()
	ctx = logger.WithCycleID(ctx, uuid.NewString())

	if len(opts.addressees) == 0 || opts.subject == "" {
		return nil, &MissingOptionsError{Message: msgAddresseesAndSubject}
	}

	b.logger.DebugContext(ctx, "sending email",
		slog.String("subject", opts.subject),
		slog.Int("addressees", len(opts.addressees)),
	)

	final, err := b.filter(ctx, opts.addressees)
	if err != nil {
		b.logger.ErrorContext(ctx, "addressee filter failed", slog.String("error", err.Error()))
		return nil, newMailerError(err)
	}
	if len(final) == 0 {
		b.logger.InfoContext(ctx, "all addressees filtered out, email not sent",
			slog.String("subject", opts.subject),
		)
		return nil, nil
	}

	body, err := b.compute(ctx, opts)
	if err != nil {
		return nil, err
	}

	from, err := b.completeSource(opts)
	if err != nil {
		return nil, err
	}

	msg := &mailer.Message{
		From:        from,
		Subject:     opts.subject,
		Body:        body,
		ContentType: opts.contentType,
		Attachments: opts.attachments,
	}
	if opts.useBcc && len(final) > 1 {
		msg.To = final[:1]
		msg.Bcc = final[1:]
	} else {
		msg.To = final
	}

	receipt, err := b.sender.Send(ctx, msg)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to send email",
			slog.String("subject", opts.subject),
			slog.String("error", err.Error()),
		)
		return nil, newMailerError(err)
	}

	return receipt, nil
}

// ComputedTemplate runs the template engine on the current templating
// options and returns the result. The Builder is empty when it returns.
func (b *Builder) ComputedTemplate(ctx context.Context) (string, error) {
	opts := b.take()
	return b.compute(logger.WithCycleID(ctx, uuid.NewString()), opts)
}

func (b *Builder) compute(ctx context.Context, opts mailOptions) (string, error) {
	if !opts.hasTemplate {
		return "", &MissingOptionsError{Message: msgTemplatingOptions}
	}

	body, err := b.engine.ComputeTemplate(ctx, opts.templating)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to compute template", slog.String("error", err.Error()))
		return "", newTemplateEngineError(err)
	}
	return body, nil
}

// completeSource resolves "Name <mail>", preferring per-cycle values.
func (b *Builder) completeSource(opts mailOptions) (string, error) {
	name := opts.sourceName
	if name == "" {
		name = b.sourceName
	}
	mail := opts.sourceMail
	if mail == "" {
		mail = b.sourceMail
	}
	if name == "" || mail == "" {
		return "", &MissingOptionsError{Message: msgSource}
	}
	return mailer.Recipient(name, mail), nil
}

func (b *Builder) set(fn func(*mailOptions)) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.opts)
	return b
}

// take returns the current cycle's options and clears them.
func (b *Builder) take() mailOptions {
	b.mu.Lock()
	defer b.mu.Unlock()
	opts := b.opts
	b.opts = mailOptions{}
	return opts
}
