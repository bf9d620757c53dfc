// Package sanitizer cleans HTML message bodies with bluemonday policies.
//
// Email keeps the markup a rendered email needs (headings, lists, tables,
// links, images) and removes scripts, event handlers and unsafe URLs. Text
// strips every tag and returns the readable content, which is useful for
// logging or plain-text previews of HTML bodies.
//
//	body := sanitizer.Email(rendered)
//	preview := sanitizer.Text(rendered)
package sanitizer
