package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// nbspPattern matches both the HTML entity &nbsp; (case insensitive) and the
// actual unicode non-breaking space character (U+00A0).
var nbspPattern = regexp.MustCompile("(?i)&nbsp;|\xc2\xa0")

// NormalizeNBSP replaces non-breaking space entities and characters with
// regular spaces. Operates on raw input before line normalization so that
// indentation and whitespace-based heuristics see ordinary spaces.
func NormalizeNBSP() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		return nbspPattern.ReplaceAll(input, []byte{' '}), nil
	}
}

// SanitizeHTML applies sanitization rules to the assembled HTML output,
// stripping any tags or attributes that a link-dictionary rule's HTML-literal
// replacement (the "h" switch, see package linkdict) might have introduced
// beyond what the analyzer itself emits.
func SanitizeHTML() TransformerFunc {
	htmlSanitizer := sanitizer()
	return func(input []byte) ([]byte, error) {
		return htmlSanitizer.SanitizeBytes(input), nil
	}
}

// sanitizer is a [bluemonday.NewPolicy] allow-list scoped to the tag
// vocabulary the analyzer and assembler can themselves emit (including the
// document envelope's html/head/title/meta/link/body), plus the inline
// markup a link dictionary rule is allowed to introduce.
func sanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardAttributes()
	policy.AllowStandardURLs()
	policy.RequireNoReferrerOnLinks(true)

	policy.AllowElements(
		"a", "b", "br", "code", "div",
		"em", "h1", "h2", "h3", "h4", "h5", "h6",
		"hr", "i", "li", "ol", "p", "pre", "strong",
		"table", "tbody", "td", "th", "thead", "tr", "u", "ul",
		"html", "head", "title", "body",
	)

	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("name", "id").
		Matching(bluemonday.SpaceSeparatedTokens).
		OnElements("a", "h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("align").
		Matching(regexp.MustCompile(`^(?i:left|right|center)$`)).
		OnElements("td", "th")

	// meta/link are only ever emitted by the assembler itself (the
	// generator tag and an optional stylesheet link), never by a link
	// dictionary rule, so they're allowed with the exact attributes the
	// assembler writes rather than opened up generally.
	policy.AllowElements("meta", "link")
	policy.AllowAttrs("name", "content").OnElements("meta")
	policy.AllowAttrs("rel").Matching(regexp.MustCompile(`^stylesheet$`)).OnElements("link")
	policy.AllowAttrs("href").OnElements("link")

	return policy
}
