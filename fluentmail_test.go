package fluentmail_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluentmail"
	"github.com/dmitrymomot/fluentmail/pkg/mailer"
	"github.com/dmitrymomot/fluentmail/pkg/templating"
)

// recordingSender captures every message it is asked to send.
type recordingSender struct {
	calls    atomic.Int32
	messages []*mailer.Message
	err      error
}

func (s *recordingSender) Send(_ context.Context, msg *mailer.Message) (*mailer.Receipt, error) {
	s.calls.Add(1)
	s.messages = append(s.messages, msg)
	if s.err != nil {
		return nil, s.err
	}
	return &mailer.Receipt{MessageID: "id-1", Provider: "test"}, nil
}

func (s *recordingSender) last(t *testing.T) *mailer.Message {
	t.Helper()
	require.NotEmpty(t, s.messages)
	return s.messages[len(s.messages)-1]
}

// countingFilter keeps every addressee and counts invocations.
type countingFilter struct {
	calls atomic.Int32
	keep  func([]string) []string
	err   error
}

func (f *countingFilter) filter(_ context.Context, addressees []string) ([]string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	if f.keep != nil {
		return f.keep(addressees), nil
	}
	return addressees, nil
}

// countingEngine wraps the default engine and counts invocations.
type countingEngine struct {
	calls atomic.Int32
	inner templating.Engine
}

func (e *countingEngine) ComputeTemplate(ctx context.Context, input any) (string, error) {
	e.calls.Add(1)
	return e.inner.ComputeTemplate(ctx, input)
}

type fixture struct {
	sender *recordingSender
	filter *countingFilter
	engine *countingEngine
	mail   *fluentmail.Builder
}

func newFixture(opts ...fluentmail.Option) *fixture {
	f := &fixture{
		sender: &recordingSender{},
		filter: &countingFilter{},
		engine: &countingEngine{inner: templating.New()},
	}
	base := []fluentmail.Option{
		fluentmail.WithDefaultSourceName("Team"),
		fluentmail.WithDefaultSourceMail("team@example.com"),
		fluentmail.WithAddresseeFilter(f.filter.filter),
		fluentmail.WithTemplateEngine(f.engine),
	}
	f.mail = fluentmail.New(f.sender, append(base, opts...)...)
	return f
}

func (f *fixture) requireCalls(t *testing.T, filter, engine, sender int32) {
	t.Helper()
	require.Equal(t, filter, f.filter.calls.Load(), "filter calls")
	require.Equal(t, engine, f.engine.calls.Load(), "engine calls")
	require.Equal(t, sender, f.sender.calls.Load(), "sender calls")
}

func greeting() templating.Options {
	return templating.Options{
		Template: "Hello {{ name }}",
		Mapping:  templating.Mapping{"name": "Ann"},
	}
}

func TestBuilder_Send(t *testing.T) {
	t.Parallel()

	f := newFixture()
	receipt, err := f.mail.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(greeting()).
		Send(context.Background())

	require.NoError(t, err)
	require.Equal(t, &mailer.Receipt{MessageID: "id-1", Provider: "test"}, receipt)
	f.requireCalls(t, 1, 1, 1)

	msg := f.sender.last(t)
	require.Equal(t, "Team <team@example.com>", msg.From)
	require.Equal(t, "Welcome", msg.Subject)
	require.Equal(t, "Hello Ann", msg.Body)
	require.Equal(t, []string{"a@example.com"}, msg.To)
	require.Empty(t, msg.Bcc)
	require.Nil(t, msg.Attachments)
	require.Equal(t, mailer.ContentTypeText, msg.BodyType())
}

func TestBuilder_Send_MissingAddresseesOrSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *fluentmail.Builder) *fluentmail.Builder
	}{
		{
			name: "no addressees",
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b.Subject("Welcome").Template(greeting())
			},
		},
		{
			name: "empty addressees",
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b.Addressees().Subject("Welcome").Template(greeting())
			},
		},
		{
			name: "no subject",
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b.Addressees("a@example.com").Template(greeting())
			},
		},
		{
			name: "nothing set",
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			receipt, err := tt.build(f.mail).Send(context.Background())

			require.Nil(t, receipt)
			var missing *fluentmail.MissingOptionsError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, "Addressees and Subject must be defined", missing.Message)
			require.Equal(t, "[MissingOptionsError] Addressees and Subject must be defined", err.Error())
			f.requireCalls(t, 0, 0, 0)
		})
	}
}

func TestBuilder_Send_MissingTemplate(t *testing.T) {
	t.Parallel()

	for _, tpl := range []any{nil, ""} {
		f := newFixture()
		b := f.mail.Addressees("a@example.com").Subject("Welcome")
		if tpl != nil {
			b = b.Template(tpl)
		}
		_, err := b.Send(context.Background())

		var missing *fluentmail.MissingOptionsError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "Templating options must be defined", missing.Message)
		f.requireCalls(t, 1, 0, 0)
	}
}

func TestBuilder_Send_SourceResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		defaults []fluentmail.Option
		build    func(b *fluentmail.Builder) *fluentmail.Builder
		from     string
		missing  bool
	}{
		{
			name: "defaults only",
			defaults: []fluentmail.Option{
				fluentmail.WithDefaultSourceName("Team"),
				fluentmail.WithDefaultSourceMail("team@example.com"),
			},
			build: func(b *fluentmail.Builder) *fluentmail.Builder { return b },
			from:  "Team <team@example.com>",
		},
		{
			name: "per-cycle values win over defaults",
			defaults: []fluentmail.Option{
				fluentmail.WithDefaultSourceName("Team"),
				fluentmail.WithDefaultSourceMail("team@example.com"),
			},
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b.SourceName("Alice").SourceMail("alice@example.com")
			},
			from: "Alice <alice@example.com>",
		},
		{
			name: "mixed default and per-cycle",
			defaults: []fluentmail.Option{
				fluentmail.WithDefaultSourceName("Team"),
			},
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b.SourceMail("alice@example.com")
			},
			from: "Team <alice@example.com>",
		},
		{
			name: "from config",
			defaults: []fluentmail.Option{
				fluentmail.WithConfig(fluentmail.Config{
					DefaultSourceMail: "cfg@example.com",
					DefaultSourceName: "Cfg",
				}),
			},
			build: func(b *fluentmail.Builder) *fluentmail.Builder { return b },
			from:  "Cfg <cfg@example.com>",
		},
		{
			name: "no name anywhere",
			defaults: []fluentmail.Option{
				fluentmail.WithDefaultSourceMail("team@example.com"),
			},
			build:   func(b *fluentmail.Builder) *fluentmail.Builder { return b },
			missing: true,
		},
		{
			name: "no mail anywhere",
			build: func(b *fluentmail.Builder) *fluentmail.Builder {
				return b.SourceName("Alice")
			},
			missing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &recordingSender{}
			b := fluentmail.New(sender, tt.defaults...)
			_, err := tt.build(b).
				Addressees("a@example.com").
				Subject("Welcome").
				Template("Body").
				Send(context.Background())

			if tt.missing {
				var missing *fluentmail.MissingOptionsError
				require.ErrorAs(t, err, &missing)
				require.Equal(t, "Source name and source mail must be defined", missing.Message)
				require.Zero(t, sender.calls.Load())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.from, sender.last(t).From)
		})
	}
}

func TestBuilder_Send_TemplateFailureBeforeSourceCheck(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	b := fluentmail.New(sender)

	_, err := b.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(templating.Options{Template: "{{ missing }}"}).
		Send(context.Background())

	var tplErr *fluentmail.TemplateEngineError
	require.ErrorAs(t, err, &tplErr)
	require.Zero(t, sender.calls.Load())
}

func TestBuilder_Send_TemplateEngineError(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.mail.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(templating.Options{
			Template: "Hello {{ name }} from {{ city }}",
			Mapping:  templating.Mapping{"name": "Ann"},
		}).
		Send(context.Background())

	var tplErr *fluentmail.TemplateEngineError
	require.ErrorAs(t, err, &tplErr)
	require.Contains(t, tplErr.Message, "city")
	require.NotEmpty(t, tplErr.Stack)
	require.True(t, strings.HasPrefix(err.Error(), "[TemplateEngineError] "))

	var inner *templating.TemplatingError
	require.False(t, errors.As(err, &inner))

	f.requireCalls(t, 1, 1, 0)
}

func TestBuilder_Send_Bcc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		addressees []string
		useBcc     bool
		to         []string
		bcc        []string
	}{
		{
			name:       "bcc with many addressees",
			addressees: []string{"a@example.com", "b@example.com", "c@example.com"},
			useBcc:     true,
			to:         []string{"a@example.com"},
			bcc:        []string{"b@example.com", "c@example.com"},
		},
		{
			name:       "bcc with single addressee",
			addressees: []string{"a@example.com"},
			useBcc:     true,
			to:         []string{"a@example.com"},
		},
		{
			name:       "no bcc",
			addressees: []string{"a@example.com", "b@example.com"},
			to:         []string{"a@example.com", "b@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			_, err := f.mail.
				Addressees(tt.addressees...).
				Subject("Welcome").
				Template("Body").
				UseBcc(tt.useBcc).
				Send(context.Background())
			require.NoError(t, err)

			msg := f.sender.last(t)
			require.Equal(t, tt.to, msg.To)
			require.Equal(t, tt.bcc, msg.Bcc)
		})
	}
}

func TestBuilder_Send_BccAppliesAfterFiltering(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.filter.keep = func(in []string) []string { return in[1:2] }

	_, err := f.mail.
		Addressees("a@example.com", "b@example.com", "c@example.com").
		Subject("Welcome").
		Template("Body").
		UseBcc(true).
		Send(context.Background())
	require.NoError(t, err)

	msg := f.sender.last(t)
	require.Equal(t, []string{"b@example.com"}, msg.To)
	require.Empty(t, msg.Bcc)
}

func TestBuilder_Send_Attachments(t *testing.T) {
	t.Parallel()

	one := mailer.Attachment{Filename: "a.txt", Content: []byte("a")}
	two := mailer.Attachment{Filename: "b.txt", Content: []byte("b")}

	f := newFixture()
	_, err := f.mail.
		Addressees("a@example.com").
		Subject("Files").
		Template("Body").
		Attachments(one).
		Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, []mailer.Attachment{one}, f.sender.last(t).Attachments)

	_, err = f.mail.
		Addressees("a@example.com").
		Subject("Files").
		Template("Body").
		Attachments(one, two).
		Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, []mailer.Attachment{one, two}, f.sender.last(t).Attachments)
}

func TestBuilder_Send_HTML(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.mail.
		Addressees("a@example.com").
		Subject("Welcome").
		Template("<p>Body</p>").
		HTML(true).
		Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, mailer.ContentTypeHTML, f.sender.last(t).BodyType())
}

func TestBuilder_Send_FilteredOut(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.filter.keep = func([]string) []string { return nil }

	receipt, err := f.mail.
		Addressees("a@example.com", "b@example.com").
		Subject("Welcome").
		Template(greeting()).
		Send(context.Background())

	require.NoError(t, err)
	require.Nil(t, receipt)
	f.requireCalls(t, 1, 0, 0)
}

func TestBuilder_Send_FilterError(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.filter.err = errors.New("dns down")

	_, err := f.mail.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(greeting()).
		Send(context.Background())

	var mailErr *fluentmail.MailerError
	require.ErrorAs(t, err, &mailErr)
	require.Equal(t, "dns down", mailErr.Message)
	f.requireCalls(t, 1, 0, 0)
}

func TestBuilder_Send_SenderError(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.sender.err = errors.New("x")

	receipt, err := f.mail.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(greeting()).
		Send(context.Background())

	require.Nil(t, receipt)
	var mailErr *fluentmail.MailerError
	require.ErrorAs(t, err, &mailErr)
	require.Contains(t, mailErr.Message, "x")
	require.Equal(t, "[MailerError] x", err.Error())
	require.NotEmpty(t, mailErr.Stack)
	require.False(t, errors.Is(err, f.sender.err))

	// The failed cycle leaves nothing behind.
	_, err = f.mail.Send(context.Background())
	var missing *fluentmail.MissingOptionsError
	require.ErrorAs(t, err, &missing)
}

func TestBuilder_Send_ClearsOptionsAfterSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.mail.
		Addressees("a@example.com").
		Subject("Welcome").
		SourceName("Alice").
		SourceMail("alice@example.com").
		Template(greeting()).
		Attachments(mailer.Attachment{Filename: "a.txt"}).
		UseBcc(true).
		HTML(true).
		Send(context.Background())
	require.NoError(t, err)

	_, err = f.mail.
		Addressees("x@example.com", "y@example.com").
		Subject("Second").
		Template("Plain").
		Send(context.Background())
	require.NoError(t, err)

	msg := f.sender.last(t)
	require.Equal(t, "Team <team@example.com>", msg.From)
	require.Equal(t, []string{"x@example.com", "y@example.com"}, msg.To)
	require.Empty(t, msg.Bcc)
	require.Nil(t, msg.Attachments)
	require.Equal(t, mailer.ContentTypeText, msg.BodyType())
	require.Equal(t, "Plain", msg.Body)
}

func TestBuilder_Send_AddresseesAreCopied(t *testing.T) {
	t.Parallel()

	f := newFixture()
	addressees := []string{"a@example.com"}
	b := f.mail.Addressees(addressees...).Subject("Welcome").Template("Body")
	addressees[0] = "changed@example.com"

	_, err := b.Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a@example.com"}, f.sender.last(t).To)
}

func TestBuilder_ComputedTemplate(t *testing.T) {
	t.Parallel()

	f := newFixture()

	got, err := f.mail.Template(greeting()).ComputedTemplate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hello Ann", got)

	got, err = f.mail.Template("Static").ComputedTemplate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Static", got)

	f.requireCalls(t, 0, 2, 0)
}

func TestBuilder_ComputedTemplate_Missing(t *testing.T) {
	t.Parallel()

	f := newFixture()

	_, err := f.mail.ComputedTemplate(context.Background())
	var missing *fluentmail.MissingOptionsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Templating options must be defined", missing.Message)

	// A Send cycle consumes the template too.
	_, err = f.mail.Template(greeting()).Send(context.Background())
	require.Error(t, err)
	_, err = f.mail.ComputedTemplate(context.Background())
	require.ErrorAs(t, err, &missing)

	f.requireCalls(t, 0, 0, 0)
}

func TestBuilder_ComputedTemplate_EngineError(t *testing.T) {
	t.Parallel()

	engine := templating.EngineFunc(func(context.Context, any) (string, error) {
		return "", errors.New("boom")
	})
	b := fluentmail.New(&recordingSender{}, fluentmail.WithTemplateEngine(engine))

	_, err := b.Template("anything").ComputedTemplate(context.Background())

	var tplErr *fluentmail.TemplateEngineError
	require.ErrorAs(t, err, &tplErr)
	require.Equal(t, "boom", tplErr.Message)
}

func TestBuilder_Clone(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.mail.Subject("pending")

	clone := f.mail.Clone()
	_, err := clone.Send(context.Background())
	var missing *fluentmail.MissingOptionsError
	require.ErrorAs(t, err, &missing, "clone must not inherit cycle options")

	_, err = clone.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(greeting()).
		Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Team <team@example.com>", f.sender.last(t).From)
	f.requireCalls(t, 1, 1, 1)
}

func TestNew_NilOptionsKeepDefaults(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	b := fluentmail.New(sender,
		fluentmail.WithAddresseeFilter(nil),
		fluentmail.WithTemplateEngine(nil),
		fluentmail.WithLogger(nil),
		fluentmail.WithDefaultSourceName("Team"),
		fluentmail.WithDefaultSourceMail("team@example.com"),
	)

	_, err := b.
		Addressees("a@example.com").
		Subject("Welcome").
		Template(greeting()).
		Send(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hello Ann", sender.last(t).Body)
}
