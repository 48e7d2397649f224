package analyzer

import "strings"

var escapeReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeHTML applies spec.md §4.3 Pass 2's escaping order: & first, then <
// and >, so that entities introduced by the first substitution are never
// themselves re-escaped.
func escapeHTML(s string) string { return escapeReplacer.Replace(s) }

// EscapeHTML exports Pass 2's escaping for callers outside the analyzer
// that need the same order (the document assembler, escaping a title taken
// verbatim from the first input line).
func EscapeHTML(s string) string { return escapeHTML(s) }

// passEscape implements Pass 2. The caller only reaches this pass when
// Pass 1 did not render the paragraph as a table, so every line here is
// eligible for escaping. A no-op when EscapeHTMLChars is off.
func (a *Analyzer) passEscape(lines []Line) {
	if !a.opts.EscapeHTMLChars {
		return
	}
	for i := range lines {
		lines[i].HTML = escapeHTML(lines[i].HTML)
	}
}
