package analyzer

import (
	"github.com/corvid-labs/txt2html/internal/model"
	"github.com/corvid-labs/txt2html/internal/normalize"
)

// Line is one paragraph line as the analyzer's passes see and mutate it:
// the normalized source line, the HTML under construction, and the
// LineAction record of what has already been done to it.
type Line struct {
	Source normalize.Line
	HTML   string
	Action model.LineAction
}

// newLines wraps a paragraph's normalized lines for analysis, seeding HTML
// with each line's source text.
func newLines(src []normalize.Line) []Line {
	lines := make([]Line, len(src))
	for i, l := range src {
		lines[i] = Line{Source: l, HTML: l.Text}
	}
	return lines
}

// Blank reports whether the underlying source line is blank.
func (l Line) Blank() bool { return l.Source.Blank() }
