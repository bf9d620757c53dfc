package markdown

import (
	"bytes"
	"context"
	"errors"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/fluentmail/pkg/sanitizer"
	"github.com/dmitrymomot/fluentmail/pkg/templating"
)

// ErrRender is returned when the markdown source cannot be converted.
var ErrRender = errors.New("markdown: render failed")

// Engine fills a markdown template with an inner engine and renders the
// result to sanitized HTML.
type Engine struct {
	inner       templating.Engine
	policy      *bluemonday.Policy
	buttonClass string
	md          goldmark.Markdown
}

// Option configures an Engine.
type Option func(*Engine)

// WithInner sets the engine that fills the markdown source.
// If nil, templating.New() is kept.
func WithInner(e templating.Engine) Option {
	return func(m *Engine) {
		if e != nil {
			m.inner = e
		}
	}
}

// WithPolicy replaces the sanitizer.EmailPolicy applied to the rendered HTML.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(m *Engine) {
		if p != nil {
			m.policy = p
		}
	}
}

// WithButtonClass sets the class of rendered call-to-action buttons.
func WithButtonClass(class string) Option {
	return func(m *Engine) {
		m.buttonClass = class
	}
}

// New creates a markdown Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		inner:  templating.New(),
		policy: sanitizer.EmailPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.md = goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			Buttons(e.buttonClass),
		),
	)
	return e
}

// ComputeTemplate implements templating.Engine.
// Errors from the inner engine are returned unchanged.
func (e *Engine) ComputeTemplate(ctx context.Context, input any) (string, error) {
	source, err := e.inner.ComputeTemplate(ctx, input)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := e.md.Convert([]byte(source), &buf); err != nil {
		return "", errors.Join(ErrRender, err)
	}

	return sanitizer.Custom(buf.String(), e.policy), nil
}
