package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	textPolicy  *bluemonday.Policy
	initOnce    sync.Once
)

var classPattern = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)

func initPolicies() {
	initOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
		emailPolicy = EmailPolicy()
	})
}

// EmailPolicy returns a new policy for message bodies: the block and inline
// elements markdown produces, tables, images and links.
// Links accept http, https and mailto URLs; images also accept cid references
// to embedded attachments.
func EmailPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowURLSchemes("mailto", "http", "https", "cid")
	p.AllowElements(
		"h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "hr", "span", "div",
		"strong", "b", "em", "i", "del", "s",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").Matching(classPattern).OnElements("a", "span", "div", "code")
	p.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|right|center)$`)).OnElements("th", "td")
	p.AllowImages()
	return p
}

// Email sanitizes an HTML message body with EmailPolicy.
// Scripts, event handlers, inline styles and javascript: URLs are removed.
func Email(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// Text strips all markup and returns the text content.
func Text(s string) string {
	initPolicies()
	return textPolicy.Sanitize(s)
}

// Custom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func Custom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
