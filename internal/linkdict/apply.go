package linkdict

import "github.com/corvid-labs/txt2html/internal/model"

// Expand fills r.Replacement's backreferences ($1, ${name}, ...) against one
// regex match, mirroring the "replacement_closure" spec.md §3 describes:
// "accepts the matched span and its captured groups and returns the
// rewritten string".
func (r *Rule) Expand(src []byte, matchIndexes []int) string {
	return string(r.regex.ExpandString(nil, r.Replacement, string(src), matchIndexes))
}

// Render synthesizes the final substitution text for one match, applying
// spec.md §4.2's HTML-flag switch: with "h" the expanded replacement is
// inserted verbatim as raw HTML; without it, the replacement is treated as a
// URL and the original matched text is wrapped as an anchor, cased to match
// every other body-tag emission in the pipeline (spec.md §8 scenario 3's
// <A HREF="..."> under the default uppercase tags).
func (r *Rule) Render(matchText, expanded string, lowercase bool) string {
	if r.Flags.HTML {
		return expanded
	}
	tag := model.CaseName(lowercase, "a")
	attr := model.CaseName(lowercase, "href")
	return "<" + tag + " " + attr + `="` + expanded + `">` + matchText + "</" + tag + ">"
}
