package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corvid-labs/txt2html/internal/model"
	"github.com/corvid-labs/txt2html/internal/normalize"
)

// Analyzer runs the thirteen structural passes over one paragraph at a
// time, carrying Mode and the previous paragraph's final LineAction between
// calls exactly as spec.md §4.3 requires. One Analyzer belongs to exactly
// one converter instance (spec.md §5); it is not safe for concurrent use.
type Analyzer struct {
	opts Options

	mode     model.Mode
	prevLine model.LineAction

	lists    model.ListStack
	styles   *model.HeadingStyleTable
	counters model.HeadingCounters
	tags     *model.OpenTagStack

	preformatPattern *regexp.Regexp

	// firstParagraph tracks whether Pass 7/10 are looking at the very
	// first paragraph of the document. Only Pass 10 acts on it, treating
	// the paragraph's first line as following a blank line.
	firstParagraph bool

	// messageSeq numbers mail message anchors placed by Pass 3.
	messageSeq int
}

// New returns an Analyzer using opts, sharing tags with the document
// assembler so Pass 8 can pop a just-opened <p> when unmarked preformat
// begins.
func New(opts Options, tags *model.OpenTagStack) *Analyzer {
	min := opts.PreformatWhitespaceMin
	if min <= 0 {
		min = DefaultOptions().PreformatWhitespaceMin
	}
	return &Analyzer{
		opts:             opts,
		styles:           model.NewHeadingStyleTable(),
		tags:             tags,
		firstParagraph:   true,
		preformatPattern: regexp.MustCompile(fmt.Sprintf(`[ .]{%d,}\S`, min)),
	}
}

// Mode returns the analyzer's current carried-over structural mode.
func (a *Analyzer) Mode() model.Mode { return a.mode }

// AnalyzeParagraph runs all thirteen passes over one paragraph (a
// contiguous run of normalized lines with no intervening paragraph break)
// and returns the assembled HTML fragment for it. It never fails: ambiguous
// input resolves to the earliest matching rule in pass order, per spec.md
// §4.3's failure semantics.
func (a *Analyzer) AnalyzeParagraph(src []normalize.Line) string {
	lines := newLines(src)
	isFirst := a.firstParagraph
	a.firstParagraph = false

	if !a.passTable(lines) {
		a.passEscape(lines)
		if a.opts.Mail {
			a.passMail(lines)
		}
		a.passEndPreformat(lines)
		a.passHRule(lines)
		a.passCustomHeadings(lines)
		a.passLists(lines, isFirst)
		a.passPreformat(lines)
		a.passUnderlineHeadings(lines)
		a.passParagraphStart(lines, isFirst)
		a.passShortLineBreaks(lines)
		a.passCaps(lines)
	}

	out := a.passHyphenation(lines)
	a.mode.Table = false

	if n := len(lines); n > 0 {
		a.prevLine = lines[n-1].Action
	}
	return out
}

// Close finalizes analyzer state at end of input: closes any still-open
// list frames and any dangling open paragraph, and clears the TABLE/LIST
// mode bits. The caller (the document assembler) is responsible for
// rendering the returned closing tags.
func (a *Analyzer) Close() []string {
	var closed []string
	for !a.lists.Empty() {
		a.lists.Pop()
		closed = append(closed, a.tags.Close(), a.tags.Close())
	}
	a.mode.List = false
	if top, ok := a.tags.Top(); ok && top == model.TagP {
		closed = append(closed, a.tags.Close())
	}
	return closed
}

// caseName renders name in the case the shared open-tag stack is
// configured for, so every body-tag and body-attribute name the analyzer
// assembles directly (outside the stack's own Open/Close bookkeeping)
// matches the lower_case_tags/xhtml switch the stack already honors for
// structural closes.
func (a *Analyzer) caseName(name string) string {
	return model.CaseName(a.tags.Lowercase(), name)
}

// openTag renders a bare opening tag (no attributes) in the stack's
// configured case.
func (a *Analyzer) openTag(name string) string {
	return "<" + a.caseName(name) + ">"
}

// joinHTML concatenates each line's rendered HTML with newlines, the form
// Pass 13's hyphenation joiner expects to walk.
func joinHTML(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.HTML
	}
	return strings.Join(parts, "\n")
}
