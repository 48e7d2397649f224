package analyzer

import "strings"

// passCaps implements spec.md §4.3 Pass 12: a line made up of a long
// enough run of uppercase letters, with no lowercase letters anywhere, is
// wrapped in the configured caps tag.
func (a *Analyzer) passCaps(lines []Line) {
	tag := a.opts.CapsTag
	if tag == "" {
		tag = DefaultOptions().CapsTag
	}
	tag = a.caseName(tag)
	for i := range lines {
		if lines[i].Blank() || lines[i].Action.Header || lines[i].Action.HRule || lines[i].Action.ListItem {
			continue
		}
		if !isAllCaps(lines[i].Source.Text, a.minCapsLength()) {
			continue
		}
		content := lines[i].Source.Text
		if a.opts.EscapeHTMLChars {
			content = escapeHTML(content)
		}
		if idx := strings.LastIndex(lines[i].HTML, content); idx >= 0 {
			h := lines[i].HTML
			lines[i].HTML = h[:idx] + "<" + tag + ">" + content + "</" + tag + ">" + h[idx+len(content):]
		} else {
			lines[i].HTML = "<" + tag + ">" + lines[i].HTML + "</" + tag + ">"
		}
		lines[i].Action.Caps = true
	}
}

func (a *Analyzer) minCapsLength() int {
	if a.opts.MinCapsLength <= 0 {
		return DefaultOptions().MinCapsLength
	}
	return a.opts.MinCapsLength
}
