package applier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-labs/txt2html/internal/linkdict"
)

func compile(t *testing.T, source string) *linkdict.Dictionary {
	t.Helper()
	dict, err := linkdict.Compile(source)
	require.NoError(t, err)
	return dict
}

func TestApplyWrapsMatchInAnchor(t *testing.T) {
	t.Parallel()

	dict := compile(t, `Go --> https://go.dev`)
	ap := New(dict, true)

	out := ap.Apply("Go is fun")
	assert.Equal(t, `<a href="https://go.dev">Go</a> is fun`, out)
}

func TestApplySkipsMatchAlreadyInsideAnchor(t *testing.T) {
	t.Parallel()

	dict := compile(t, "Go --> https://go.dev\nfun -s-> https://example.com/fun")
	ap := New(dict, true)

	out := ap.Apply(`<a href="https://elsewhere.example">Go</a> is fun`)
	assert.Equal(t, `<a href="https://elsewhere.example">Go</a> is <a href="https://example.com/fun">fun</a>`, out)
}

func TestApplySkipsMatchInsideUnclosedOpenTag(t *testing.T) {
	t.Parallel()

	dict := compile(t, `src --> https://example.com/src`)
	ap := New(dict, true)

	out := ap.Apply(`<img src="x">`)
	assert.Equal(t, `<img src="x">`, out)
}

func TestApplyHTMLFlagInsertsReplacementVerbatim(t *testing.T) {
	t.Parallel()

	dict := compile(t, `TM -h-> <sup>TM</sup>`)
	ap := New(dict, true)

	out := ap.Apply("Acme TM widgets")
	assert.Equal(t, "Acme <sup>TM</sup> widgets", out)
}

func TestApplyOnceFlagFiresAtMostOnceAcrossParagraphs(t *testing.T) {
	t.Parallel()

	dict := compile(t, `Acme -o-> https://acme.example`)
	ap := New(dict, true)

	first := ap.Apply("Acme makes Acme products")
	assert.Equal(t, `<a href="https://acme.example">Acme</a> makes Acme products`, first)

	ap.EndParagraph()

	second := ap.Apply("Acme again")
	assert.Equal(t, "Acme again", second)
}

func TestApplySectOnceFlagResetsAtParagraphBoundary(t *testing.T) {
	t.Parallel()

	dict := compile(t, `Acme -s-> https://acme.example`)
	ap := New(dict, true)

	first := ap.Apply("Acme and Acme again")
	assert.Equal(t, `<a href="https://acme.example">Acme</a> and Acme again`, first)

	ap.EndParagraph()

	second := ap.Apply("Acme returns")
	assert.Equal(t, `<a href="https://acme.example">Acme</a> returns`, second)
}

func TestApplyRunsRulesInDeclarationOrder(t *testing.T) {
	t.Parallel()

	dict := compile(t, "Go --> https://go.dev\nGo --> https://wrong.example")
	require.Equal(t, 1, dict.Len(), "second identical key is a duplicate and should be dropped")

	ap := New(dict, true)
	out := ap.Apply("Go")
	assert.Equal(t, `<a href="https://go.dev">Go</a>`, out)
}

func TestApplyLaterRuleLinksTextOutsideEarlierAnchor(t *testing.T) {
	t.Parallel()

	dict := compile(t, "Go --> https://go.dev\nfun --> https://fun.example")
	ap := New(dict, true)

	out := ap.Apply("Go is fun")
	assert.Equal(t, `<a href="https://go.dev">Go</a> is <a href="https://fun.example">fun</a>`, out)
}

func TestApplyNoCaseFlagMatchesRegardlessOfCase(t *testing.T) {
	t.Parallel()

	dict := compile(t, `go -i-> https://go.dev`)
	ap := New(dict, true)

	out := ap.Apply("GO is great")
	assert.Equal(t, `<a href="https://go.dev">GO</a> is great`, out)
}
