package analyzer

import "github.com/corvid-labs/txt2html/internal/model"

// preformatLooking reports whether text contains a run of at least
// PreformatWhitespaceMin spaces or dots followed by a non-space character,
// the heuristic spec.md §4.3 Pass 8 uses to recognize unmarked
// preformatted text (e.g. a table of contents with dot leaders).
func (a *Analyzer) preformatLooking(text string) bool {
	return a.preformatPattern.MatchString(text)
}

// passEndPreformat implements spec.md §4.3 Pass 4: closing an open
// preformatted region, explicit or heuristic.
func (a *Analyzer) passEndPreformat(lines []Line) {
	if !a.mode.Pre {
		return
	}

	if a.mode.PreExplicit {
		for i := range lines {
			if a.opts.EndPreformatPattern.MatchString(lines[i].Source.Text) {
				lines[i].Action.End = true
				a.mode.Pre = false
				a.mode.PreExplicit = false
				return
			}
			lines[i].Action.Pre = true
		}
		return
	}

	for i := range lines {
		if !a.mode.Pre {
			break
		}
		cur := a.preformatLooking(lines[i].Source.Text)
		if cur {
			lines[i].Action.Pre = true
			continue
		}
		var next bool
		if i+1 < len(lines) {
			next = a.preformatLooking(lines[i+1].Source.Text)
		}
		atBoundary := i == len(lines)-1
		if !next || a.opts.EndPreformatTriggerLines == 1 || atBoundary {
			lines[i].Action.End = true
			a.mode.Pre = false
		} else {
			lines[i].Action.Pre = true
		}
	}
}

// passPreformat implements spec.md §4.3 Pass 8: entering an unmarked
// preformatted region. It never fires out of a mail-quoted line, and on
// entry it pops any just-opened <p> from the shared open-tag stack; the
// line's HTML is left as it is.
func (a *Analyzer) passPreformat(lines []Line) {
	if a.mode.Pre {
		return
	}

	if a.opts.UsePreformatMarker {
		a.enterExplicitPreformat(lines)
		if a.mode.Pre {
			return
		}
	}

	if a.opts.PreformatTriggerLines == 0 {
		for i := range lines {
			lines[i].Action.Pre = true
		}
		a.mode.Pre = true
		a.stripOpenParagraph(lines, 0)
		return
	}

	for i := range lines {
		if lines[i].Action.MailQuote {
			continue
		}
		if !a.preformatLooking(lines[i].Source.Text) {
			continue
		}
		var next bool
		if i+1 < len(lines) {
			next = a.preformatLooking(lines[i+1].Source.Text)
		}
		if a.opts.PreformatTriggerLines != 1 && !next {
			continue
		}
		a.mode.Pre = true
		a.stripOpenParagraph(lines, i)
		for j := i; j < len(lines); j++ {
			lines[j].Action.Pre = true
		}
		return
	}
}

// enterExplicitPreformat looks for a line matching StartPattern and, if
// found, opens PRE_EXPLICIT: the marker line itself renders as nothing (it
// is a delimiter, not content), and every line from there on is marked Pre
// until passEndPreformat finds a matching EndPreformatPattern line.
func (a *Analyzer) enterExplicitPreformat(lines []Line) {
	for i := range lines {
		if !a.opts.StartPattern.MatchString(lines[i].Source.Text) {
			continue
		}
		a.mode.Pre = true
		a.mode.PreExplicit = true
		a.stripOpenParagraph(lines, i)
		lines[i].HTML = ""
		lines[i].Action.End = true
		for j := i + 1; j < len(lines); j++ {
			lines[j].Action.Pre = true
		}
		return
	}
}

// stripOpenParagraph closes a <p> left dangling by an earlier paragraph,
// popping it off the shared open-tag stack without emitting its closing
// tag: preformat content is never wrapped in the paragraph it interrupts.
// The lines/i parameters are accepted for symmetry with the other entry
// points into preformat mode but are unused; nothing in the current
// paragraph can have opened a <p> yet; Pass 10 runs after this pass.
func (a *Analyzer) stripOpenParagraph(_ []Line, _ int) {
	if top, ok := a.tags.Top(); ok && top == model.TagP {
		a.tags.Close()
	}
}
