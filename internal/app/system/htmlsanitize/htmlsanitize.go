// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from rich-text HTML before it
// is stored. Magazine content comes from a browser editor, so the policy
// keeps the formatting that editor produces (headings, lists, tables, code
// blocks, inline styles like underline/strikethrough) while removing
// scripts, event handlers, iframes, and javascript: URLs.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	// Inline formatting beyond the UGC baseline.
	p.AllowElements("u", "s", "sub", "sup", "mark", "figure", "figcaption")

	// Tables, including the structural attributes editors emit.
	p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")

	// Editors tag elements with classes for styling; the class values are
	// inert without a matching stylesheet, so allowing them is safe.
	p.AllowAttrs("class").Globally()

	return p
}

// Sanitize returns html with all disallowed markup removed.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return policy.Sanitize(html)
}

// IsPlainText reports whether s contains no HTML tags at all.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
