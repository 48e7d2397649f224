// Package normalize implements the line-level pass that runs ahead of the
// paragraph analyzer: tab expansion, trailing-whitespace trimming, and
// indent accounting (spec.md §4.1).
package normalize

import "strings"

// DefaultTabWidth is the tab-expansion width used when a config leaves
// tab_width unset or non-positive.
const DefaultTabWidth = 8

// Line is a single input line after tab expansion and CR/trailing-whitespace
// trimming, with its derived indent and length (spec.md §3's Line type).
type Line struct {
	Text   string
	Indent int
	Length int
}

// Blank reports whether the line contains only whitespace.
func (l Line) Blank() bool { return strings.TrimSpace(l.Text) == "" }

// Normalizer expands tabs and tracks indent propagation across blank lines.
type Normalizer struct {
	tabWidth   int
	lastIndent int
}

// New returns a Normalizer that expands tabs to tabWidth columns. A
// non-positive tabWidth falls back to DefaultTabWidth.
func New(tabWidth int) *Normalizer {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Normalizer{tabWidth: tabWidth}
}

// Line normalizes one raw input line: expands tabs, trims a trailing
// CR and any trailing whitespace, and computes indent. A blank line's indent
// is defined as the previous non-blank-or-blank line's indent (propagation),
// per spec.md §4.1, so list continuation stays stable across blank lines
// inside an item.
func (n *Normalizer) Line(raw string) Line {
	expanded := expandTabs(raw, n.tabWidth)
	trimmed := strings.TrimRight(expanded, "\r\n")
	trimmed = strings.TrimRight(trimmed, " \t")

	text := strings.TrimLeft(trimmed, " ")
	indent := len(trimmed) - len(text)

	if strings.TrimSpace(trimmed) == "" {
		indent = n.lastIndent
	} else {
		n.lastIndent = indent
	}

	return Line{Text: text, Indent: indent, Length: len(text)}
}

// Lines splits raw input on line boundaries and normalizes each line in
// order, preserving indent propagation across the whole input.
func (n *Normalizer) Lines(input string) []Line {
	raw := strings.Split(input, "\n")
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, n.Line(r))
	}
	return lines
}

// expandTabs replaces each horizontal tab with spaces out to the next
// multiple of width, tracking column position so tabs mid-line expand
// correctly relative to preceding characters.
func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := width - (col % width)
			for range spaces {
				b.WriteByte(' ')
			}
			col += spaces
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
