package assembler

import (
	"strings"

	"github.com/corvid-labs/txt2html/internal/analyzer"
	"github.com/corvid-labs/txt2html/internal/applier"
	"github.com/corvid-labs/txt2html/internal/model"
	"github.com/corvid-labs/txt2html/internal/normalize"
)

// Assembler drives one Analyzer and, when a link dictionary is in effect,
// one Applier over a document's paragraphs, and wraps the result in the
// HTML envelope spec.md §4.5 describes. One Assembler belongs to exactly
// one converter instance (spec.md §5); it is not safe for concurrent use.
type Assembler struct {
	opts Options
	tags *model.OpenTagStack
	an   *analyzer.Analyzer
	ap   *applier.Applier // nil under make_links off or no loaded dictionary
}

// New returns an Assembler over a shared open-tag stack. ap may be nil,
// meaning no link dictionary rewrites paragraph HTML (make_links off, or
// no dictionary configured).
func New(opts Options, tags *model.OpenTagStack, an *analyzer.Analyzer, ap *applier.Applier) *Assembler {
	return &Assembler{opts: opts, tags: tags, an: an, ap: ap}
}

// Assemble renders every paragraph in declaration order and returns the
// complete document. Under Options.Extract it returns just the
// concatenated, converted paragraphs with no envelope, per spec.md §6.
func (as *Assembler) Assemble(paragraphs [][]normalize.Line) string {
	var body strings.Builder
	title := as.opts.Title

	for _, p := range paragraphs {
		html := as.an.AnalyzeParagraph(p)
		if as.ap != nil {
			html = as.ap.Apply(html)
			as.ap.EndParagraph()
		}
		if title == "" && as.opts.TitleFirst {
			if first := firstNonBlankText(p); first != "" {
				title = first
			}
		}
		body.WriteString(html)
		body.WriteString("\n")
	}

	for _, closing := range as.an.Close() {
		body.WriteString(closing)
	}

	if as.opts.Extract {
		return body.String()
	}
	return as.envelope(title, body.String())
}

// AssembleRaw renders already-rendered paragraph HTML through the same
// applier/envelope/extract logic as Assemble, without driving the paragraph
// analyzer at all. Used under link_only, which skips structural analysis
// entirely but still applies the link dictionary and wraps the result in
// the document envelope.
func (as *Assembler) AssembleRaw(paragraphs []string) string {
	var body strings.Builder
	for _, html := range paragraphs {
		if as.ap != nil {
			html = as.ap.Apply(html)
			as.ap.EndParagraph()
		}
		body.WriteString(html)
		body.WriteString("\n")
	}
	if as.opts.Extract {
		return body.String()
	}
	return as.envelope(as.opts.Title, body.String())
}

// firstNonBlankText returns the raw text of the first non-blank line in
// paragraph, the titlefirst source spec.md §4.5 describes.
func firstNonBlankText(lines []normalize.Line) string {
	for _, l := range lines {
		if !l.Blank() {
			return l.Text
		}
	}
	return ""
}

// tagName renders name in the case Options selects.
func (as *Assembler) tagName(name string) string {
	if as.opts.lowerCaseTags() {
		return name
	}
	return strings.ToUpper(name)
}

// envelope wraps body in the doctype/head/body structure spec.md §4.5
// requires, splicing in title, append_head, stylesheet link, and the
// prepend/append file contents at their respective boundaries.
func (as *Assembler) envelope(title, body string) string {
	tag := as.tagName

	var out strings.Builder
	out.WriteString(`<!DOCTYPE ` + tag("html") + ` PUBLIC "` + as.opts.resolveDoctype() + `">` + "\n")
	out.WriteString("<" + tag("html") + ">\n")
	out.WriteString("<" + tag("head") + ">\n")

	if title != "" {
		out.WriteString("<" + tag("title") + ">" + analyzer.EscapeHTML(title) + "</" + tag("title") + ">\n")
	}
	if as.opts.AppendHeadContent != "" {
		out.WriteString(as.opts.AppendHeadContent + "\n")
	}
	out.WriteString(`<` + tag("meta") + ` name="generator" content="txt2html">` + "\n")
	if as.opts.StyleURL != "" {
		out.WriteString(`<` + tag("link") + ` rel="stylesheet" href="` + as.opts.StyleURL + `">` + "\n")
	}
	out.WriteString("</" + tag("head") + ">\n")

	bodyOpen := "<" + tag("body") + ">"
	if as.opts.BodyDeco != "" {
		bodyOpen = "<" + tag("body") + " " + as.opts.BodyDeco + ">"
	}
	out.WriteString(bodyOpen + "\n")

	if as.opts.PrependContent != "" {
		out.WriteString(as.opts.PrependContent + "\n")
	}

	out.WriteString(body)

	if as.opts.AppendContent != "" {
		out.WriteString(as.opts.AppendContent + "\n")
	}

	out.WriteString("</" + tag("body") + ">\n")
	out.WriteString("</" + tag("html") + ">\n")
	return out.String()
}
