package remote

import (
	"context"
	"fmt"
	"maps"

	"github.com/dmitrymomot/fluentmail/pkg/templating"
)

// Options selects a stored template and the values to fill it with.
type Options struct {
	Key     string
	Mapping templating.Mapping
}

// Engine is a templating.Engine that fetches template documents through a
// Loader before substituting them.
type Engine struct {
	loader Loader
	inner  templating.Engine
}

// Option configures an Engine.
type Option func(*Engine)

// WithInner sets the engine that fills the loaded body, for example
// markdown.New(). If nil, templating.New() is kept.
func WithInner(e templating.Engine) Option {
	return func(r *Engine) {
		if e != nil {
			r.inner = e
		}
	}
}

// New creates an Engine reading documents from loader.
func New(loader Loader, opts ...Option) *Engine {
	e := &Engine{
		loader: loader,
		inner:  templating.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeTemplate implements templating.Engine.
//
// input is Options, *Options or a bare key string. Frontmatter defaults fill
// variables the caller's mapping leaves unset or empty.
func (e *Engine) ComputeTemplate(ctx context.Context, input any) (string, error) {
	var opts Options
	switch v := input.(type) {
	case Options:
		opts = v
	case *Options:
		if v == nil {
			return "", &templating.TemplatingError{Message: "remote template options are nil"}
		}
		opts = *v
	case string:
		opts = Options{Key: v}
	default:
		return "", &templating.TemplatingError{Message: fmt.Sprintf("unsupported template input %T", input)}
	}

	if opts.Key == "" {
		return "", &templating.TemplatingError{Message: "remote template key must be set"}
	}

	raw, err := e.loader.Load(ctx, opts.Key)
	if err != nil {
		return "", err
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", opts.Key, err)
	}

	mapping := make(templating.Mapping, len(doc.Defaults)+len(opts.Mapping))
	maps.Copy(mapping, doc.Defaults)
	for k, v := range opts.Mapping {
		// An empty caller value counts as unset, so the default still applies.
		if v != "" || mapping[k] == "" {
			mapping[k] = v
		}
	}

	return e.inner.ComputeTemplate(ctx, templating.Options{
		Template: doc.Body,
		Mapping:  mapping,
	})
}
