// Package convert ties together the five core components — line
// normalizer, link dictionary compiler, paragraph analyzer, link/markup
// applier, and document assembler — behind the single Converter contract
// spec.md §6 describes: New, SetOptions, ConvertDocument, ConvertFragment.
package convert

import (
	"fmt"
	"regexp"

	"github.com/corvid-labs/txt2html/internal/analyzer"
	"github.com/corvid-labs/txt2html/internal/assembler"
	"github.com/corvid-labs/txt2html/internal/linkdict"
	"github.com/corvid-labs/txt2html/internal/normalize"
)

// Options carries every configuration tunable named in spec.md §6, plus
// the ambient-stack fields SPEC_FULL.md §6 adds for the HTTP service and
// CLI. File contents (append/prepend/head splices, dictionary sources) are
// passed in already read, per spec.md §1's "out of scope: file I/O
// plumbing" boundary.
type Options struct {
	// Splice points: already-read verbatim content, not file paths.
	AppendContent     string
	AppendHeadContent string
	PrependContent    string

	BodyDeco string
	CapsTag  string

	CustomHeadingRegexp []string
	ExplicitHeadings    bool

	Doctype string

	EightBitClean  bool
	EscapeHTML     bool
	Extract        bool
	HRuleMin       int
	IndentWidth    int
	IndentParBreak bool

	// LinksDictionaries holds one or more already-read link-dictionary
	// source texts, compiled together in order (spec.md §4.2's
	// declaration-order guarantee spans all of them, as if concatenated).
	LinksDictionaries []string
	LinkOnly          bool
	MakeAnchors       bool
	MakeLinks         bool
	MakeTables        bool
	Mailmode          bool

	LowerCaseTags bool

	MinCapsLength int
	ParIndent     int

	PreformatTriggerLines    int
	EndPreformatTriggerLines int
	UsePreformatMarker       bool
	PreformatStartMarker     *regexp.Regexp
	PreformatEndMarker       *regexp.Regexp
	PreformatWhitespaceMin   int
	PreserveIndent           bool

	ShortLineLength int
	StyleURL        string
	TabWidth        int

	// Title is the configured document title. TitleFirst, if Title is
	// empty, derives it from the first non-blank paragraph line instead.
	// InputName, if both of those are empty, derives a title from the
	// input's filename/slug (see slugconv.ToTitle).
	Title      string
	TitleFirst bool
	InputName  string

	UnderlineLengthTolerance int
	UnderlineOffsetTolerance int
	Unhyphenation            bool
	UseMosaicHeader          bool

	// TreatOAsBullet opts into treating a bare "o " marker as a bullet
	// (spec.md §9 Open Question (c); default false, see DESIGN.md).
	TreatOAsBullet bool

	XHTML bool
}

// DefaultOptions returns the spec-mandated defaults for every tunable.
func DefaultOptions() Options {
	return Options{
		CapsTag:                  "strong",
		Doctype:                  "-//W3C//DTD HTML 3.2 Final//EN",
		EscapeHTML:               true,
		HRuleMin:                 4,
		IndentWidth:              2,
		LinkOnly:                 false,
		MakeAnchors:              true,
		MakeLinks:                true,
		MakeTables:               false,
		MinCapsLength:            3,
		ParIndent:                2,
		PreformatTriggerLines:    2,
		EndPreformatTriggerLines: 2,
		PreformatWhitespaceMin:   5,
		PreformatStartMarker:     regexp.MustCompile(`^\s*<pre>\s*$`),
		PreformatEndMarker:       regexp.MustCompile(`^\s*</pre>\s*$`),
		ShortLineLength:          40,
		TabWidth:                 normalize.DefaultTabWidth,
		UnderlineLengthTolerance: 1,
		UnderlineOffsetTolerance: 1,
		Unhyphenation:            true,
	}
}

// lowerCaseTags applies spec.md §6's rule that xhtml forces lower-case tag
// names regardless of LowerCaseTags.
func (o Options) lowerCaseTags() bool { return o.LowerCaseTags || o.XHTML }

// withDefaults fills any zero-valued numeric/pattern tunable with its
// spec-mandated default, so a caller-built Options{} with only a few
// fields set still behaves sanely.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CapsTag == "" {
		o.CapsTag = d.CapsTag
	}
	if o.Doctype == "" {
		o.Doctype = d.Doctype
	}
	if o.HRuleMin <= 0 {
		o.HRuleMin = d.HRuleMin
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = d.IndentWidth
	}
	if o.MinCapsLength <= 0 {
		o.MinCapsLength = d.MinCapsLength
	}
	if o.ParIndent <= 0 {
		o.ParIndent = d.ParIndent
	}
	if o.PreformatWhitespaceMin <= 0 {
		o.PreformatWhitespaceMin = d.PreformatWhitespaceMin
	}
	if o.PreformatStartMarker == nil {
		o.PreformatStartMarker = d.PreformatStartMarker
	}
	if o.PreformatEndMarker == nil {
		o.PreformatEndMarker = d.PreformatEndMarker
	}
	if o.ShortLineLength <= 0 {
		o.ShortLineLength = d.ShortLineLength
	}
	if o.TabWidth <= 0 {
		o.TabWidth = d.TabWidth
	}
	if o.UnderlineLengthTolerance <= 0 {
		o.UnderlineLengthTolerance = d.UnderlineLengthTolerance
	}
	o.PreformatTriggerLines = clamp(o.PreformatTriggerLines, 0, 2)
	if o.PreformatTriggerLines == 0 {
		o.EndPreformatTriggerLines = 1
	} else {
		o.EndPreformatTriggerLines = clampDefault(o.EndPreformatTriggerLines, 0, 2, d.EndPreformatTriggerLines)
	}
	if o.UnderlineOffsetTolerance == 0 {
		o.UnderlineOffsetTolerance = d.UnderlineOffsetTolerance
	}
	return o
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDefault(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	return clamp(v, lo, hi)
}

// analyzerOptions translates Options into the Paragraph Analyzer's own
// Options shape. customHeadings is the already-compiled result of
// compileHeadingRegexps, since compilation can fail and this translation
// cannot itself return an error.
func (o Options) analyzerOptions(customHeadings []*regexp.Regexp) analyzer.Options {
	return analyzer.Options{
		Tables:                   o.MakeTables,
		Mail:                     o.Mailmode,
		CustomHeadings:           customHeadings,
		HRuleMin:                 o.HRuleMin,
		ExplicitHeadings:         o.ExplicitHeadings,
		HeadingAnchors:           o.MakeAnchors,
		UnderlineLenTol:          o.UnderlineLengthTolerance,
		UnderlineOffTol:          o.UnderlineOffsetTolerance,
		UseMosaicHeader:          o.UseMosaicHeader,
		PreformatWhitespaceMin:   o.PreformatWhitespaceMin,
		PreformatTriggerLines:    o.PreformatTriggerLines,
		EndPreformatTriggerLines: o.EndPreformatTriggerLines,
		EndPreformatPattern:      o.PreformatEndMarker,
		UsePreformatMarker:       o.UsePreformatMarker,
		StartPattern:             o.PreformatStartMarker,
		TreatOAsBullet:           o.TreatOAsBullet,
		ParIndent:                o.ParIndent,
		IndentWidth:              o.IndentWidth,
		IndentParBreak:           o.IndentParBreak,
		PreserveIndent:           o.PreserveIndent,
		ShortLineLength:          o.ShortLineLength,
		MinCapsLength:            o.MinCapsLength,
		CapsTag:                  o.CapsTag,
		EscapeHTMLChars:          o.EscapeHTML,
		Unhyphenation:            o.Unhyphenation,
	}
}

// assemblerOptions translates Options into the Document Assembler's own
// Options shape.
func (o Options) assemblerOptions() assembler.Options {
	return assembler.Options{
		Doctype:           o.Doctype,
		XHTML:             o.XHTML,
		LowerCaseTags:     o.LowerCaseTags,
		Title:             o.resolveTitle(),
		TitleFirst:        o.TitleFirst,
		AppendHeadContent: o.AppendHeadContent,
		StyleURL:          o.StyleURL,
		BodyDeco:          o.BodyDeco,
		PrependContent:    o.PrependContent,
		AppendContent:     o.AppendContent,
		Extract:           o.Extract,
	}
}

// compileHeadingRegexps compiles CustomHeadingRegexp in order, per spec.md
// §4.3 Pass 6.
func (o Options) compileHeadingRegexps() ([]*regexp.Regexp, error) {
	if len(o.CustomHeadingRegexp) == 0 {
		return nil, nil
	}
	out := make([]*regexp.Regexp, len(o.CustomHeadingRegexp))
	for i, pattern := range o.CustomHeadingRegexp {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("custom_heading_regexp[%d] %q: %w", i, pattern, err)
		}
		out[i] = re
	}
	return out, nil
}

// compileDictionary compiles LinksDictionaries into a single [linkdict.Dictionary],
// preserving declaration order across sources as if they were concatenated.
// Returns a nil Dictionary (not an error) when no dictionary source is
// configured.
func (o Options) compileDictionary() (*linkdict.Dictionary, error) {
	if len(o.LinksDictionaries) == 0 {
		return nil, nil
	}
	combined := ""
	for i, src := range o.LinksDictionaries {
		if i > 0 {
			combined += "\n"
		}
		combined += src
	}
	dict, err := linkdict.Compile(combined)
	if err != nil {
		return nil, fmt.Errorf("links_dictionaries: %w", err)
	}
	return dict, nil
}
