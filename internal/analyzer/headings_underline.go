package analyzer

import (
	"strings"
	"unicode"

	"github.com/corvid-labs/txt2html/internal/model"
)

const mosaicUnderlineChars = "=-"
const fullUnderlineChars = "=-*.~+"

// passUnderlineHeadings implements spec.md §4.3 Pass 9: a heading text line
// immediately followed by a same-character underline run of comparable
// length and offset is promoted to a heading, and the underline line
// collapses to a single space.
func (a *Analyzer) passUnderlineHeadings(lines []Line) {
	chars := fullUnderlineChars
	if a.opts.UseMosaicHeader {
		chars = mosaicUnderlineChars
	}

	lenTol := a.opts.UnderlineLenTol
	offTol := a.opts.UnderlineOffTol

	for i := 0; i < len(lines)-1; i++ {
		text := lines[i]
		next := lines[i+1]
		if text.Blank() || text.Action.Header || text.Action.HRule || text.Action.ListItem || text.Action.MailQuote || text.Action.Pre {
			continue
		}
		underline := strings.TrimSpace(next.Source.Text)
		if underline == "" {
			continue
		}
		ch := rune(underline[0])
		if !strings.ContainsRune(chars, ch) {
			continue
		}
		if !isUniformRune(underline, ch) {
			continue
		}

		lenDiff := abs(len(underline) - len(strings.TrimSpace(text.Source.Text)))
		offDiff := abs(next.Source.Indent - text.Source.Indent)
		if lenDiff > lenTol || offDiff > offTol {
			continue
		}

		key := string(ch)
		if isAllCaps(text.Source.Text, 1) {
			key = model.CapsStyleKey(byte(ch))
		}
		level := a.styles.Level(key)

		lines[i].HTML = a.renderHeading(level, lines[i].HTML)
		lines[i].Action.Header = true
		lines[i+1].HTML = " "
		lines[i+1].Action.Header = true
	}
}

func isUniformRune(s string, r rune) bool {
	for _, c := range s {
		if c != r && c != ' ' {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// isAllCaps reports whether text has at least minLen consecutive Latin-1
// uppercase letters and no lowercase letters at all.
func isAllCaps(text string, minLen int) bool {
	run, best := 0, 0
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best >= minLen
}
