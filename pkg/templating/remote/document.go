package remote

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fluentmail/pkg/templating"
)

// Document is a parsed template: optional YAML frontmatter and a body.
//
//	---
//	defaults:
//	  product: Acme
//	  support: help@acme.test
//	---
//	Hello {{ name }}, welcome to {{ product }}.
type Document struct {
	Defaults templating.Mapping
	Meta     map[string]any
	Body     string
}

var fence = []byte("---")

// ParseDocument splits content into frontmatter and body. Content that does
// not start with "---" is all body.
func ParseDocument(content []byte) (*Document, error) {
	if !bytes.HasPrefix(content, fence) {
		return &Document{Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(content[len(fence):], "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: nothing after opening fence", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, fence)
	if end < 0 {
		return nil, fmt.Errorf("%w: closing fence not found", ErrInvalidFrontmatter)
	}

	head := rest[:end]
	body := rest[end+len(fence):]
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}

	doc := &Document{Body: string(body)}
	if len(bytes.TrimSpace(head)) == 0 {
		return doc, nil
	}

	var meta map[string]any
	if err := yaml.Unmarshal(head, &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	defaults, err := parseDefaults(meta["defaults"])
	if err != nil {
		return nil, err
	}
	delete(meta, "defaults")

	doc.Meta = meta
	doc.Defaults = defaults
	return doc, nil
}

func parseDefaults(raw any) (templating.Mapping, error) {
	if raw == nil {
		return nil, nil
	}

	values, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: defaults must be a mapping, got %T", ErrInvalidFrontmatter, raw)
	}

	defaults := make(templating.Mapping, len(values))
	for k, v := range values {
		switch v := v.(type) {
		case nil:
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: default %q must be a scalar", ErrInvalidFrontmatter, k)
		default:
			defaults[k] = fmt.Sprint(v)
		}
	}
	return defaults, nil
}
