package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict   = sync.OnceValue(bluemonday.StrictPolicy)
	safeHTML = sync.OnceValue(func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		p.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		return p
	})
)

// StripHTML removes all HTML markup and returns plain text.
// Scripts, event handlers, and javascript: URLs are dropped entirely.
func StripHTML(s string) string {
	return strict().Sanitize(s)
}

// SanitizeHTML keeps basic formatting tags (p, a, strong, em, lists, code)
// and strips everything dangerous. Use for user-generated content that may
// carry simple markup.
func SanitizeHTML(s string) string {
	return safeHTML().Sanitize(s)
}

// SanitizeHTMLCustom applies a caller-provided bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
