package analyzer

// passShortLineBreaks implements spec.md §4.3 Pass 11: a short previous
// line outside PRE/LIST/TABLE gets a trailing <br> when neither line is a
// structural boundary.
func (a *Analyzer) passShortLineBreaks(lines []Line) {
	if a.mode.Pre || a.mode.List || a.mode.Table {
		return
	}
	for i := 0; i < len(lines)-1; i++ {
		prev, cur := lines[i], lines[i+1]
		if prev.Blank() || cur.Blank() {
			continue
		}
		if prev.Action.Header || prev.Action.HRule || prev.Action.ListItem || prev.Action.End || prev.Action.Break ||
			cur.Action.Header || cur.Action.HRule || cur.Action.ListItem || cur.Action.Par {
			continue
		}
		if prev.Source.Length >= a.opts.ShortLineLength {
			continue
		}
		lines[i].HTML += a.openTag("br")
		lines[i].Action.Break = true
	}
}
