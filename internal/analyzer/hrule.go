package analyzer

import "strings"

const hruleChars = "-_~=*"

// passHRule implements spec.md §4.3 Pass 5.
func (a *Analyzer) passHRule(lines []Line) {
	for i := range lines {
		text := lines[i].Source.Text
		if strings.ContainsRune(text, '\f') {
			lines[i].HTML = "<" + a.caseName("hr") + "/>"
			lines[i].Action.HRule = true
			continue
		}
		if isHRule(text, a.opts.HRuleMin) {
			lines[i].HTML = "<" + a.caseName("hr") + "/>"
			lines[i].Action.HRule = true
		}
	}
}

// isHRule reports whether text is made up solely of hrule characters and
// spaces, with at least min non-space characters.
func isHRule(text string, min int) bool {
	if min <= 0 {
		min = DefaultOptions().HRuleMin
	}
	count := 0
	for _, r := range text {
		switch {
		case r == ' ':
			continue
		case strings.ContainsRune(hruleChars, r):
			count++
		default:
			return false
		}
	}
	return count >= min
}
