// Package templating provides the pluggable template engine used to build
// message bodies.
//
// The default engine performs literal substitution of "{{ name }}"
// placeholders. It is deliberately not a templating language: there are no
// loops, conditionals, partials or escaping rules.
//
// # Placeholders
//
// A placeholder is two opening braces, optional whitespace, a variable name,
// optional whitespace and two closing braces:
//
//	Hello {{ firstName }}, your order {{orderID}} has shipped.
//
// A name with a leading or trailing "?" is optional:
//
//	Note: {{ note? }}
//
// Optional variables resolve to an empty string when the mapping has no
// value for them. Required variables without a value make ComputeTemplate fail
// with a *TemplatingError. An empty string value is treated as missing.
//
// # Usage
//
//	engine := templating.New()
//	body, err := engine.ComputeTemplate(ctx, templating.Options{
//		Template: "Hello {{ name }}",
//		Mapping:  templating.Mapping{"name": "Alice"},
//	})
//
// A plain string input is returned unchanged:
//
//	body, _ := engine.ComputeTemplate(ctx, "Static body")
//
// # Custom Engines
//
// Anything implementing Engine can replace the default one, for example an
// engine that loads templates from object storage (see subpackage remote) or
// renders markdown (see subpackage markdown).
package templating
