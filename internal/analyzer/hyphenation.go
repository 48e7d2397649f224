package analyzer

import (
	"regexp"
	"strings"
)

var (
	hyphenatedEnd   = regexp.MustCompile(`([A-Za-z]+)-$`)
	continuationStart = regexp.MustCompile(`^(\s*)([A-Za-z]+)([.,;:!?]*)`)
)

// passHyphenation implements spec.md §4.3 Pass 13: a word broken across a
// line by a trailing hyphen is rejoined with its continuation, the hyphen
// dropped, while the continuation line's own leading indentation is
// preserved on the line that follows the join. It returns the paragraph's
// final joined HTML.
func (a *Analyzer) passHyphenation(lines []Line) string {
	if !a.opts.Unhyphenation {
		return joinHTML(lines)
	}
	for i := 0; i < len(lines)-1; i++ {
		if a.skipsHyphenation(lines[i]) || a.skipsHyphenation(lines[i+1]) {
			continue
		}
		end := hyphenatedEnd.FindStringSubmatch(lines[i].HTML)
		if end == nil {
			continue
		}
		start := continuationStart.FindStringSubmatch(lines[i+1].HTML)
		if start == nil {
			continue
		}

		lines[i].HTML = strings.TrimSuffix(lines[i].HTML, end[0]) + end[1] + start[2] + start[3]
		lines[i+1].HTML = start[1] + strings.TrimPrefix(lines[i+1].HTML, start[0])
	}
	return joinHTML(lines)
}

func (a *Analyzer) skipsHyphenation(l Line) bool {
	return a.mode.Pre || a.mode.Table || l.Action.Pre || l.Action.Header || l.Action.MailHeader || l.Action.Break
}
