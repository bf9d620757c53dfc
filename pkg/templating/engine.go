package templating

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Engine turns templating options into a final message body.
//
// Implementations receive whatever the caller passed to the builder's
// Template setter, so alternate engines may accept their own option types
// (a storage key, a cached template name, ...). The context allows engines
// that perform I/O to honour cancellation.
type Engine interface {
	ComputeTemplate(ctx context.Context, input any) (string, error)
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(ctx context.Context, input any) (string, error)

// ComputeTemplate implements Engine.
func (f EngineFunc) ComputeTemplate(ctx context.Context, input any) (string, error) {
	return f(ctx, input)
}

// Mapping maps variable names to their substitution values.
type Mapping map[string]string

// Options is the structured input of the default engine.
type Options struct {
	Mapping  Mapping // Optional; nil behaves like an empty mapping
	Template string
}

// placeholderPattern matches "{{ name }}" with optional inner whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// Default is the built-in literal substitution engine.
// It is stateless and safe for concurrent use.
type Default struct{}

// New returns the default substitution engine.
func New() *Default {
	return &Default{}
}

// ComputeTemplate implements Engine.
//
// A plain string is returned untouched. Options are scanned left to right and
// every placeholder is replaced by its mapped value. A name starting or ending
// with "?" is optional and resolves to an empty string when unmapped; any other
// unmapped (or empty) variable aborts with a *TemplatingError.
func (e *Default) ComputeTemplate(_ context.Context, input any) (string, error) {
	switch in := input.(type) {
	case string:
		return in, nil
	case Options:
		return Substitute(in.Template, in.Mapping)
	case *Options:
		if in == nil {
			return "", &TemplatingError{Message: "templating options are nil"}
		}
		return Substitute(in.Template, in.Mapping)
	default:
		return "", &TemplatingError{Message: fmt.Sprintf("unsupported template input %T", input)}
	}
}

// Substitute replaces every placeholder of tmpl using mapping.
// Replaced text is never rescanned.
func Substitute(tmpl string, mapping Mapping) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(tmpl, -1)
	if len(matches) == 0 {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl))

	last := 0
	for _, m := range matches {
		varName := strings.TrimSpace(tmpl[m[2]:m[3]])

		value, err := resolve(varName, mapping)
		if err != nil {
			return "", err
		}

		b.WriteString(tmpl[last:m[0]])
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(tmpl[last:])

	return b.String(), nil
}

// resolve looks up a single variable. An empty value counts as missing.
func resolve(varName string, mapping Mapping) (string, error) {
	optional := strings.HasPrefix(varName, "?") || strings.HasSuffix(varName, "?")

	key := varName
	if optional {
		key = strings.ReplaceAll(varName, "?", "")
	}

	value := mapping[key]
	if value == "" && !optional {
		return "", &TemplatingError{
			Message:  fmt.Sprintf("TemplateMapping is not correctly filled, could not find %s value", varName),
			Variable: varName,
		}
	}

	return value, nil
}

var _ Engine = (*Default)(nil)
