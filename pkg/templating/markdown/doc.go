// Package markdown provides a templating.Engine that renders markdown message
// bodies to HTML.
//
// The input is first filled by an inner engine (templating.New() by default),
// then converted with goldmark and finally sanitized with
// sanitizer.EmailPolicy. Raw HTML in the source is not rendered.
//
// Besides CommonMark, tables, strikethrough and autolinks, the source may
// contain call-to-action buttons:
//
//	[!button|Confirm email](https://example.com/confirm?token={{ token }})
//
// which render as
//
//	<a href="https://example.com/confirm?token=..." class="button">Confirm email</a>
//
// Use it with a Builder and mark the message as HTML:
//
//	m := fluentmail.New(sender, fluentmail.WithTemplateEngine(markdown.New()))
//	m.Addressees(to).Subject("Confirm").HTML(true).Template(templating.Options{...}).Send(ctx)
package markdown
