// Package analyzer implements the paragraph-level structural passes of the
// converter: table detection, HTML escaping, mail-quote handling,
// preformat boundaries, horizontal rules, headings (custom and underlined),
// lists, paragraph starts, short-line breaks, all-caps spans, and
// cross-line hyphen joining (spec.md §4.3).
package analyzer

import "regexp"

// Options carries every paragraph-analyzer tunable named in spec.md §6.
// Zero-value Options is invalid for the numeric tunables; use
// DefaultOptions to get spec-mandated defaults.
type Options struct {
	// Tables enables Pass 1 table detection.
	Tables bool
	// Mail enables Pass 3 mail-quote/header handling.
	Mail bool

	// HRuleMin is the minimum run length of -_~=* that forms a horizontal
	// rule (Pass 5). Default 4.
	HRuleMin int

	// CustomHeadings is an ordered list of user-supplied heading regexes
	// (Pass 6). ExplicitHeadings controls whether each regex's ordinal
	// fixes its level directly, or whether levels are assigned in
	// accumulative first-encounter order shared with Pass 9.
	CustomHeadings    []*regexp.Regexp
	ExplicitHeadings  bool
	HeadingAnchors    bool
	UnderlineLenTol   int // default 1
	UnderlineOffTol   int // default 1
	UseMosaicHeader   bool

	// PreformatWhitespaceMin is the minimum run of spaces/dots before a
	// non-space that marks a line as preformat-looking (Pass 8). Default 5.
	PreformatWhitespaceMin int
	// PreformatTriggerLines: 0 means the whole document is preformatted;
	// 1 means a single qualifying line is enough to enter PRE; otherwise
	// the next line must also qualify. Default 2.
	PreformatTriggerLines int
	// EndPreformatTriggerLines mirrors PreformatTriggerLines for Pass 4's
	// exit condition. Default 2.
	EndPreformatTriggerLines int
	// EndPreformatPattern matches an explicit end-of-preformat marker line
	// (default: a lone "</pre>").
	EndPreformatPattern *regexp.Regexp
	// UsePreformatMarker opts into explicit markers: a line matching
	// StartPattern opens PRE_EXPLICIT instead of relying on the whitespace
	// heuristic, and only EndPreformatPattern (not the heuristic) closes it.
	UsePreformatMarker bool
	// StartPattern matches an explicit start-of-preformat marker line
	// (default: a lone "<pre>"). Only consulted when UsePreformatMarker is set.
	StartPattern *regexp.Regexp

	// TreatOAsBullet opts into treating a bare "o " marker as a bullet
	// (spec.md §9 Open Question (c); default false, see DESIGN.md).
	TreatOAsBullet bool

	// ParIndent is how many columns beyond the previous line's indent
	// triggers a new paragraph start (Pass 10). Default 2.
	ParIndent int
	// IndentWidth is the column width of one indent step when rendering
	// the &nbsp; padding for IndentParBreak/PreserveIndent (Pass 10).
	// The zero value renders one &nbsp; per column (width 1).
	IndentWidth int
	// IndentParBreak and PreserveIndent select Pass 10's output flavor;
	// per DESIGN.md Open Question (b), IndentParBreak wins if both are set.
	IndentParBreak bool
	PreserveIndent bool

	// ShortLineLength is the previous-line length below which Pass 11
	// inserts a <br>. Default 40.
	ShortLineLength int

	// MinCapsLength is the minimum run of uppercase letters for Pass 12.
	// Default 3.
	MinCapsLength int
	// CapsTag wraps an all-caps line (Pass 12). Default "strong".
	CapsTag string

	// EscapeHTMLChars enables Pass 2's HTML escaping. Default true; set
	// false to pass embedded markup through untouched.
	EscapeHTMLChars bool

	// Unhyphenation enables Pass 13's cross-line word rejoining. Default
	// true; false leaves a hyphenated line break exactly as input.
	Unhyphenation bool
}

// DefaultOptions returns the spec-mandated defaults for every numeric and
// pattern tunable.
func DefaultOptions() Options {
	return Options{
		HRuleMin:                 4,
		UnderlineLenTol:          1,
		UnderlineOffTol:          1,
		PreformatWhitespaceMin:   5,
		PreformatTriggerLines:    2,
		EndPreformatTriggerLines: 2,
		EndPreformatPattern:      regexp.MustCompile(`^\s*</pre>\s*$`),
		StartPattern:             regexp.MustCompile(`^\s*<pre>\s*$`),
		ParIndent:                2,
		ShortLineLength:          40,
		MinCapsLength:            3,
		CapsTag:                  "strong",
		EscapeHTMLChars:          true,
		Unhyphenation:            true,
	}
}
