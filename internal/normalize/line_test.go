package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineExpandsTabsToNextStop(t *testing.T) {
	t.Parallel()

	n := New(8)
	line := n.Line("a\tb")
	assert.Equal(t, "a       b", line.Text)
}

func TestLineDefaultsTabWidthWhenNonPositive(t *testing.T) {
	t.Parallel()

	n := New(0)
	line := n.Line("\tx")
	assert.Equal(t, 8, line.Indent)
	assert.Equal(t, "x", line.Text)
}

func TestLineTrimsCRAndTrailingWhitespace(t *testing.T) {
	t.Parallel()

	n := New(8)
	line := n.Line("hello   \r")
	assert.Equal(t, "hello", line.Text)
}

func TestLineTracksIndent(t *testing.T) {
	t.Parallel()

	n := New(8)
	line := n.Line("    indented")
	assert.Equal(t, 4, line.Indent)
	assert.Equal(t, "indented", line.Text)
}

func TestBlankLineIndentPropagatesFromPreviousLine(t *testing.T) {
	t.Parallel()

	n := New(8)
	first := n.Line("    item one")
	assert.Equal(t, 4, first.Indent)

	blank := n.Line("")
	assert.True(t, blank.Blank())
	assert.Equal(t, 4, blank.Indent, "blank line indent propagates from the previous line")

	next := n.Line("  less indented")
	assert.Equal(t, 2, next.Indent)
}

func TestLinesPreservesIndentPropagationAcrossInput(t *testing.T) {
	t.Parallel()

	n := New(8)
	lines := n.Lines("  one\n\n  two")
	assert.Len(t, lines, 3)
	assert.Equal(t, 2, lines[1].Indent)
}
