package analyzer

import (
	"strings"

	"github.com/corvid-labs/txt2html/internal/model"
)

// passParagraphStart implements spec.md §4.3 Pass 10: deciding whether a
// non-blank line opens a new paragraph, and in which of three flavors.
func (a *Analyzer) passParagraphStart(lines []Line, isFirstParagraph bool) {
	for i := range lines {
		if lines[i].Blank() || a.mode.Pre || a.mode.Table {
			continue
		}
		if lines[i].Action.End || lines[i].Action.MailQuote || lines[i].Action.Caps || lines[i].Action.Break ||
			lines[i].Action.Header || lines[i].Action.ListStart || lines[i].Action.ListItem || lines[i].Action.HRule {
			continue
		}

		prevBlank := (i == 0 && isFirstParagraph) || (i > 0 && lines[i-1].Blank())
		prevEnded := i > 0 && lines[i-1].Action.End
		prevIndent := 0
		if i > 0 {
			prevIndent = lines[i-1].Source.Indent
		}
		indentedMore := lines[i].Source.Indent > prevIndent+a.opts.ParIndent

		if !(prevBlank || prevEnded || indentedMore) {
			continue
		}

		switch {
		case a.opts.IndentParBreak:
			pad := strings.Repeat("&nbsp;", a.indentSteps(lines[i].Source.Indent))
			lines[i].HTML = a.openTag("br") + pad + lines[i].HTML
			lines[i].Action.IndBreak = true
		case a.opts.PreserveIndent:
			pad := strings.Repeat("&nbsp;", a.indentSteps(lines[i].Source.Indent))
			lines[i].HTML = a.openParagraph() + pad + lines[i].HTML
		default:
			lines[i].HTML = a.openParagraph() + lines[i].HTML
		}
		lines[i].Action.Par = true
	}
}

// indentSteps collapses a column indent into IndentWidth-wide steps, each
// rendered as one &nbsp;. IndentWidth<=0 (the zero value) renders one
// &nbsp; per column, the same as a width of 1.
func (a *Analyzer) indentSteps(indent int) int {
	width := a.opts.IndentWidth
	if width <= 0 {
		width = 1
	}
	return indent / width
}

// openParagraph closes a still-open <p> left dangling by an earlier
// paragraph (tracked on the shared tag stack, since Pass 10 does not run
// again until the next call to AnalyzeParagraph) before opening a new one,
// so paragraphs never nest.
func (a *Analyzer) openParagraph() string {
	prefix := ""
	if top, ok := a.tags.Top(); ok && top == model.TagP {
		prefix = a.tags.Close()
	}
	a.tags.Open(model.TagP)
	return prefix + a.tags.Start(model.TagP)
}
