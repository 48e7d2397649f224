package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/txt2html/internal/analyzer"
	"github.com/corvid-labs/txt2html/internal/applier"
	"github.com/corvid-labs/txt2html/internal/linkdict"
	"github.com/corvid-labs/txt2html/internal/model"
	"github.com/corvid-labs/txt2html/internal/normalize"
)

func paragraph(texts ...string) []normalize.Line {
	n := normalize.New(8)
	lines := make([]normalize.Line, len(texts))
	for i, t := range texts {
		lines[i] = n.Line(t)
	}
	return lines
}

func newAssembler(opts Options, lowercaseTags bool, ap *applier.Applier) *Assembler {
	tags := model.NewOpenTagStack(lowercaseTags)
	an := analyzer.New(analyzer.DefaultOptions(), tags)
	return New(opts, tags, an, ap)
}

func TestAssembleEmitsEnvelopeWithConfiguredTitle(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Title = "My Document"
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("hello world")})
	assert.Contains(t, out, "<!DOCTYPE html PUBLIC \"-//W3C//DTD HTML 3.2 Final//EN\">")
	assert.Contains(t, out, "<title>My Document</title>")
	assert.Contains(t, out, "<p>hello world")
	assert.Contains(t, out, "</body>")
	assert.Contains(t, out, "</html>")
}

func TestAssembleTitleFirstUsesFirstNonBlankLine(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.TitleFirst = true
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("Chapter One")})
	assert.Contains(t, out, "<title>Chapter One</title>")
}

func TestAssembleTitleFirstEscapesHTML(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.TitleFirst = true
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("Tom & Jerry")})
	assert.Contains(t, out, "<title>Tom &amp; Jerry</title>")
}

func TestAssembleExtractSkipsEnvelope(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Extract = true
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("hello world")})
	assert.NotContains(t, out, "<!DOCTYPE")
	assert.NotContains(t, out, "<html>")
	assert.Contains(t, out, "<p>hello world")
}

func TestAssembleXHTMLForcesLowercaseAndOverridesDoctype(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.XHTML = true
	opts.LowerCaseTags = false
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("hello world")})
	assert.Contains(t, out, "-//W3C//DTD XHTML 1.0 Transitional//EN")
	assert.Contains(t, out, "<html>")
	assert.NotContains(t, out, "<HTML>")
}

func TestAssembleUppercaseTagsWithoutXHTML(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	a := newAssembler(opts, false, nil)

	out := a.Assemble([][]normalize.Line{paragraph("hello world")})
	assert.Contains(t, out, "<HTML>")
	assert.Contains(t, out, "<HEAD>")
	assert.Contains(t, out, "<BODY>")
}

func TestAssembleClosesDanglingListAtEndOfInput(t *testing.T) {
	t.Parallel()

	a := newAssembler(DefaultOptions(), true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("- item one", "- item two")})
	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "</li></ul>")
}

func TestAssemblePrependAndAppendSplicing(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.PrependContent = "<div id=\"banner\">hi</div>"
	opts.AppendContent = "<div id=\"footer\">bye</div>"
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("hello world")})

	bannerIdx := indexOf(out, `<div id="banner">hi</div>`)
	bodyIdx := indexOf(out, "<body>")
	pIdx := indexOf(out, "<p>hello world")
	footerIdx := indexOf(out, `<div id="footer">bye</div>`)
	bodyCloseIdx := indexOf(out, "</body>")

	require.True(t, bannerIdx > bodyIdx)
	require.True(t, pIdx > bannerIdx)
	require.True(t, footerIdx > pIdx)
	require.True(t, bodyCloseIdx > footerIdx)
}

func TestAssembleAppendHeadAndStyleURL(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.AppendHeadContent = `<meta name="author" content="me">`
	opts.StyleURL = "style.css"
	a := newAssembler(opts, true, nil)

	out := a.Assemble([][]normalize.Line{paragraph("hello world")})
	assert.Contains(t, out, `<meta name="author" content="me">`)
	assert.Contains(t, out, `<link rel="stylesheet" href="style.css">`)
}

func TestAssembleAppliesLinkDictionaryPerParagraph(t *testing.T) {
	t.Parallel()

	dict, err := linkdict.Compile(`Go --> https://go.dev`)
	require.NoError(t, err)
	ap := applier.New(dict, true)
	a := newAssembler(DefaultOptions(), true, ap)

	out := a.Assemble([][]normalize.Line{paragraph("Go is fun")})
	assert.Contains(t, out, `<a href="https://go.dev">Go</a>`)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
