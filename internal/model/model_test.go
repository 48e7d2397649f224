package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStack(t *testing.T) {
	t.Parallel()

	var s ListStack
	assert.True(t, s.Empty())

	s.Push(ListFrame{Prefix: "- ", Kind: Unordered})
	s.Push(ListFrame{Prefix: "  - ", Kind: Unordered})
	require.Equal(t, 2, s.Depth())

	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "  - ", top.Prefix)

	idx, ok := s.IndexOf("- ")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	closed := s.PopTo(1)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 1, s.Depth())

	closed = s.CloseAll()
	assert.Equal(t, 1, closed)
	assert.True(t, s.Empty())
}

func TestHeadingStyleTableAssignsInFirstEncounterOrder(t *testing.T) {
	t.Parallel()

	tbl := NewHeadingStyleTable()
	assert.Equal(t, 1, tbl.Level("="))
	assert.Equal(t, 2, tbl.Level("-"))
	assert.Equal(t, 1, tbl.Level("="), "re-encountering a known style returns its original level")

	assert.Equal(t, 3, tbl.Level(CapsStyleKey('=')), "an all-caps heading is a distinct style from '='")
}

func TestHeadingStyleTableCollapsesBeyondMax(t *testing.T) {
	t.Parallel()

	tbl := NewHeadingStyleTable()
	for i := range MaxHeadingLevel + 3 {
		tbl.Level(CustomStyleKey(i))
	}
	assert.Equal(t, MaxHeadingLevel, tbl.Level(CustomStyleKey(MaxHeadingLevel+2)))
}

func TestHeadingStyleTableSetFixesLevel(t *testing.T) {
	t.Parallel()

	tbl := NewHeadingStyleTable()
	tbl.Set(CustomStyleKey(0), 2)
	assert.Equal(t, 2, tbl.Level(CustomStyleKey(0)))
}

func TestHeadingCountersSynthesizesNestedAnchors(t *testing.T) {
	t.Parallel()

	var c HeadingCounters
	assert.Equal(t, "section_1", c.Next(1))
	assert.Equal(t, "section_1_1", c.Next(2))
	assert.Equal(t, "section_1_2", c.Next(2))
	assert.Equal(t, "section_2", c.Next(1), "a shallower heading resets deeper counters")
	assert.Equal(t, "section_2_1", c.Next(2))
}

func TestOpenTagStackCloseOrder(t *testing.T) {
	t.Parallel()

	s := NewOpenTagStack(false)
	s.Open(TagBody)
	s.Open(TagUL)
	s.Open(TagLI)

	assert.True(t, s.Has(TagUL))
	assert.Equal(t, 3, s.Depth())

	assert.Equal(t, "</LI>", s.Close())
	assert.Equal(t, "</UL>", s.Close())
	assert.Equal(t, 1, s.Depth())
}

func TestOpenTagStackCloseThrough(t *testing.T) {
	t.Parallel()

	s := NewOpenTagStack(true)
	s.Open(TagBody)
	s.Open(TagUL)
	s.Open(TagLI)

	closed := s.CloseThrough(TagUL)
	assert.Equal(t, []string{"</li>", "</ul>"}, closed)
	assert.Equal(t, 1, s.Depth())

	assert.Nil(t, s.CloseThrough(TagTable))
}

func TestOpenTagStackCloseAll(t *testing.T) {
	t.Parallel()

	s := NewOpenTagStack(true)
	s.Open(TagHTML)
	s.Open(TagBody)
	s.Open(TagP)

	closed := s.CloseAll()
	assert.Equal(t, []string{"</p>", "</body>", "</html>"}, closed)
	assert.Equal(t, 0, s.Depth())
}

func TestHeadingTagClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TagH1, HeadingTag(0))
	assert.Equal(t, TagH6, HeadingTag(9))
	assert.Equal(t, TagH3, HeadingTag(3))
}

func TestLineActionBlocked(t *testing.T) {
	t.Parallel()

	var a LineAction
	assert.False(t, a.Blocked())

	a.MailQuote = true
	assert.True(t, a.Blocked())
}

func TestModeCloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := Mode{Pre: true}
	clone := m.Clone()
	clone.Pre = false

	assert.True(t, m.Pre)
	assert.False(t, clone.Pre)
}
