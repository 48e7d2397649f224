package analyzer

import (
	"fmt"

	"github.com/corvid-labs/txt2html/internal/model"
)

// passCustomHeadings implements spec.md §4.3 Pass 6: the first
// user-supplied regex (in declaration order) that matches a line promotes
// it to a heading.
func (a *Analyzer) passCustomHeadings(lines []Line) {
	if len(a.opts.CustomHeadings) == 0 {
		return
	}

	for i := range lines {
		if lines[i].Action.Header || lines[i].Action.HRule || lines[i].Blank() {
			continue
		}
		for idx, re := range a.opts.CustomHeadings {
			if !re.MatchString(lines[i].Source.Text) {
				continue
			}
			key := model.CustomStyleKey(idx)
			level := idx + 1
			if !a.opts.ExplicitHeadings {
				level = a.styles.Level(key)
			} else {
				a.styles.Set(key, level)
			}
			lines[i].HTML = a.renderHeading(level, lines[i].HTML)
			lines[i].Action.Header = true
			break
		}
	}
}

// renderHeading wraps content in the appropriate <hN> tag, adding a
// synthetic section anchor when HeadingAnchors is enabled.
func (a *Analyzer) renderHeading(level int, content string) string {
	tag := a.caseName(fmt.Sprintf("h%d", clampHeadingLevel(level)))
	anchor := ""
	if a.opts.HeadingAnchors {
		anchorTag := a.caseName("a")
		anchor = fmt.Sprintf(`<%s name="%s"></%s>`, anchorTag, a.counters.Next(level), anchorTag)
	}
	return "<" + tag + ">" + anchor + content + "</" + tag + ">"
}

func clampHeadingLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > model.MaxHeadingLevel {
		return model.MaxHeadingLevel
	}
	return level
}
