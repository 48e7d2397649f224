// Package applier walks a compiled link dictionary's rules over an
// analyzed paragraph's HTML, rewriting matches into links or raw HTML while
// skipping anything already inside an anchor (spec.md §4.4).
package applier

import (
	"strings"

	"github.com/corvid-labs/txt2html/internal/linkdict"
)

// Applier rewrites paragraph HTML against a compiled dictionary, in
// declaration order, honoring link-context skipping and the ONCE/SECT_ONCE
// memo. One Applier belongs to exactly one converter instance, pairing its
// dictionary with that instance's own Memo (spec.md §5).
type Applier struct {
	dict      *linkdict.Dictionary
	memo      *linkdict.Memo
	lowercase bool
}

// New returns an Applier over dict, starting with a fresh Memo sized for
// its rule count. lowercase matches the converter's lower_case_tags/xhtml
// option, so rendered anchors share the case every other body tag uses.
func New(dict *linkdict.Dictionary, lowercase bool) *Applier {
	return &Applier{dict: dict, memo: linkdict.NewMemo(dict.Len()), lowercase: lowercase}
}

// EndParagraph clears the section-scope memo at a paragraph boundary, per
// spec.md §3's OnceMemo invariant.
func (ap *Applier) EndParagraph() { ap.memo.ClearSection() }

// Apply walks every rule in declaration order over html and returns the
// rewritten result.
func (ap *Applier) Apply(html string) string {
	for _, rule := range ap.dict.Rules() {
		html = ap.applyRule(rule, html)
	}
	return html
}

// applyRule implements spec.md §4.4 steps 1-4 for a single rule: repeated
// left-to-right search, link-context skipping, and ONCE/SECT_ONCE
// short-circuiting after the first successful rewrite.
func (ap *Applier) applyRule(rule *linkdict.Rule, html string) string {
	if ap.memo.Fired(rule) {
		return html
	}

	var out strings.Builder
	pos := 0
	for pos <= len(html) {
		loc := rule.Regexp().FindStringIndex(html[pos:])
		if loc == nil {
			out.WriteString(html[pos:])
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if inLinkContext(html, start, end) {
			out.WriteString(html[pos:end])
			pos = end
			if end == start {
				pos = advancePastZeroLength(html, &out, pos)
			}
			continue
		}

		out.WriteString(html[pos:start])
		matchIndexes := rule.Regexp().FindStringSubmatchIndex(html[start:])
		adjusted := adjustIndexes(matchIndexes, start)
		matchText := html[start:end]
		expanded := rule.Expand([]byte(html), adjusted)
		out.WriteString(rule.Render(matchText, expanded, ap.lowercase))
		pos = end

		if rule.Flags.Once || rule.Flags.SectOnce {
			ap.memo.MarkFired(rule)
			out.WriteString(html[pos:])
			return out.String()
		}

		if end == start {
			pos = advancePastZeroLength(html, &out, pos)
		}
	}
	return out.String()
}

// advancePastZeroLength emits one literal byte and advances pos by one,
// guaranteeing forward progress after a zero-length regex match.
func advancePastZeroLength(html string, out *strings.Builder, pos int) int {
	if pos >= len(html) {
		return pos + 1
	}
	out.WriteByte(html[pos])
	return pos + 1
}

// adjustIndexes rebases submatch indexes found in html[offset:] back onto
// the full string's coordinate space.
func adjustIndexes(indexes []int, offset int) []int {
	adjusted := make([]int, len(indexes))
	for i, v := range indexes {
		if v < 0 {
			adjusted[i] = v
			continue
		}
		adjusted[i] = v + offset
	}
	return adjusted
}

// inLinkContext implements spec.md §4.4 step 2: a match is in link context
// if it contains an <a>/</a> tag itself, the text before it has an
// unmatched "<a " open tag, or the text before it ends inside any
// partially-open tag. Matched case-insensitively since the anchor's own
// case follows lower_case_tags/xhtml and may render as <A ...>/</A>.
func inLinkContext(html string, start, end int) bool {
	lower := strings.ToLower(html)
	if strings.Contains(lower[start:end], "<a ") || strings.Contains(lower[start:end], "</a>") ||
		strings.Contains(lower[start:end], "<a>") {
		return true
	}

	before := lower[:start]
	if lastOpen := strings.LastIndex(before, "<a "); lastOpen >= 0 {
		if !strings.Contains(before[lastOpen:], "</a>") {
			return true
		}
	}

	lastLT := strings.LastIndex(before, "<")
	lastGT := strings.LastIndex(before, ">")
	return lastLT > lastGT
}
