package convert

import (
	"io"
	"strings"

	"github.com/corvid-labs/txt2html/internal/analyzer"
	"github.com/corvid-labs/txt2html/internal/applier"
	"github.com/corvid-labs/txt2html/internal/assembler"
	"github.com/corvid-labs/txt2html/internal/model"
	"github.com/corvid-labs/txt2html/internal/normalize"
	"github.com/corvid-labs/txt2html/internal/slugconv"
)

// Converter drives the whole pipeline — line normalizer, link dictionary,
// paragraph analyzer, link/markup applier, document assembler — over one
// document at a time, per spec.md §6's `new`/`set_options`/
// `convert_document`/`convert_fragment` contract. One Converter is not safe
// for concurrent use (spec.md §5); construct one per goroutine/request.
type Converter struct {
	opts Options

	normalizer *normalize.Normalizer
	tags       *model.OpenTagStack
	an         *analyzer.Analyzer
	ap         *applier.Applier
	asm        *assembler.Assembler
}

// New constructs a Converter with defaults overridden by opts, per spec.md
// §6's `new(config)`.
func New(opts Options) (*Converter, error) {
	c := &Converter{}
	if err := c.SetOptions(opts); err != nil {
		return nil, err
	}
	return c, nil
}

// SetOptions mutates the converter's options between documents, per
// spec.md §6's `set_options(config)`. It rebuilds the underlying pipeline
// (a fresh open-tag stack, analyzer, applier, and assembler), so in-flight
// carry-over state (Mode, ListStack, OnceMemo) from a prior document or
// ConvertFragment(..., close_open_tags=false) call is discarded.
func (c *Converter) SetOptions(opts Options) error {
	opts = opts.withDefaults()

	customHeadings, err := opts.compileHeadingRegexps()
	if err != nil {
		return err
	}
	dict, err := opts.compileDictionary()
	if err != nil {
		return err
	}

	tags := model.NewOpenTagStack(opts.lowerCaseTags())
	an := analyzer.New(opts.analyzerOptions(customHeadings), tags)

	var ap *applier.Applier
	if opts.MakeLinks && dict != nil {
		ap = applier.New(dict, opts.lowerCaseTags())
	}

	asm := assembler.New(opts.assemblerOptions(), tags, an, ap)

	c.opts = opts
	c.normalizer = normalize.New(opts.TabWidth)
	c.tags = tags
	c.an = an
	c.ap = ap
	c.asm = asm
	return nil
}

// ConvertDocument reads every input in order, concatenating their contents
// (spec.md §6's `convert_document(inputs, output)`: "read one or more
// input streams concatenated"), and writes the full HTML document to
// output.
func (c *Converter) ConvertDocument(inputs []io.Reader, output io.Writer) error {
	var raw strings.Builder
	for _, r := range inputs {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		raw.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			raw.WriteByte('\n')
		}
	}

	html := c.convert(raw.String())
	_, err := io.WriteString(output, html)
	return err
}

// ConvertFragment converts a single, possibly multi-line paragraph and
// returns the HTML fragment, per spec.md §6's
// `convert_fragment(text, close_open_tags=true)`. When closeOpenTags is
// false, the converter retains open structural context (lists, a dangling
// paragraph) for the next call instead of draining it.
func (c *Converter) ConvertFragment(text string, closeOpenTags bool) string {
	lines := c.normalizer.Lines(text)
	paragraphs := splitParagraphs(lines)

	var body strings.Builder
	for _, p := range paragraphs {
		html := c.an.AnalyzeParagraph(p)
		if c.ap != nil {
			html = c.ap.Apply(html)
			c.ap.EndParagraph()
		}
		body.WriteString(html)
	}

	if closeOpenTags {
		for _, closing := range c.an.Close() {
			body.WriteString(closing)
		}
	}

	out := body.String()
	if !c.opts.EightBitClean {
		out = applyEntities(out)
	}
	return out
}

// convert runs the full document pipeline: normalize, split into
// paragraphs, and hand off to the assembler (or, under link_only, a
// structural-analysis-free path that only applies the link dictionary).
func (c *Converter) convert(input string) string {
	lines := c.normalizer.Lines(input)
	paragraphs := splitParagraphs(lines)

	var html string
	if c.opts.LinkOnly {
		html = c.convertLinkOnly(paragraphs)
	} else {
		html = c.asm.Assemble(paragraphs)
	}

	if !c.opts.EightBitClean {
		html = applyEntities(html)
	}
	return html
}

// convertLinkOnly implements spec.md §6's link_only option: skip the
// paragraph analyzer entirely (no tables, lists, headings, preformat,
// paragraph breaks), optionally HTML-escape each line, and run only the
// link dictionary and document envelope.
func (c *Converter) convertLinkOnly(paragraphs [][]normalize.Line) string {
	rendered := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		lines := make([]string, len(p))
		for j, l := range p {
			text := l.Text
			if c.opts.EscapeHTML {
				text = analyzer.EscapeHTML(text)
			}
			lines[j] = text
		}
		rendered[i] = strings.Join(lines, "\n")
	}
	return c.asm.AssembleRaw(rendered)
}

// resolveTitle applies spec.md §6's titlefirst fallback chain plus
// SPEC_FULL.md's filename-derived fallback: explicit Title, then the first
// non-blank paragraph line (handled inside the assembler), then a title
// slugified from InputName.
func (o Options) resolveTitle() string {
	if o.Title != "" || o.TitleFirst || o.InputName == "" {
		return o.Title
	}
	return slugconv.ToTitle(o.InputName)
}
