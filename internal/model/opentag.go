package model

// Tag enumerates the structural HTML tags the assembler may owe a closing
// tag for. Unlike a free-form string stack, a closed enum limits the stack
// to this fixed vocabulary; Close pops whatever tag is on top without
// checking it against an expected tag.
type Tag int

// Structural tags, matching spec.md §3's OpenTagStack vocabulary.
const (
	TagHTML Tag = iota
	TagHead
	TagBody
	TagP
	TagLI
	TagUL
	TagOL
	TagPre
	TagTable
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
)

// names holds the lowercase tag name for each Tag; End() lowercases or
// uppercases it according to the stack's configured case.
var names = map[Tag]string{
	TagHTML:  "html",
	TagHead:  "head",
	TagBody:  "body",
	TagP:     "p",
	TagLI:    "li",
	TagUL:    "ul",
	TagOL:    "ol",
	TagPre:   "pre",
	TagTable: "table",
	TagH1:    "h1",
	TagH2:    "h2",
	TagH3:    "h3",
	TagH4:    "h4",
	TagH5:    "h5",
	TagH6:    "h6",
}

// HeadingTag returns the Tag for heading level 1..6, clamped to that range.
func HeadingTag(level int) Tag {
	if level < 1 {
		level = 1
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return TagH1 + Tag(level-1)
}

// OpenTagStack is the stack of structural tags the assembler has opened and
// still owes a closing tag for. At any emission point, the stack top is the
// only tag that may be closed next — the invariant spec.md §3 requires.
type OpenTagStack struct {
	tags      []Tag
	lowercase bool
}

// NewOpenTagStack returns an empty stack. lowercase controls the case End
// renders tag names in (forced lowercase under xhtml output, per spec.md
// §4.5's end-of-input closing rules).
func NewOpenTagStack(lowercase bool) *OpenTagStack {
	return &OpenTagStack{lowercase: lowercase}
}

// Open pushes tag onto the stack.
func (s *OpenTagStack) Open(tag Tag) { s.tags = append(s.tags, tag) }

// Lowercase reports whether the stack renders tag and attribute names in
// lowercase, the same switch every other body-tag emission in the
// pipeline shares (spec.md §4.5's lower_case_tags/xhtml option).
func (s *OpenTagStack) Lowercase() bool { return s.lowercase }

// Start renders the opening-tag string for tag without touching the
// stack, applying the stack's configured case.
func (s *OpenTagStack) Start(tag Tag) string {
	name := names[tag]
	if !s.lowercase {
		name = upper(name)
	}
	return "<" + name + ">"
}

// Top returns the innermost open tag and true, or the zero value and false
// if nothing is open.
func (s *OpenTagStack) Top() (Tag, bool) {
	if len(s.tags) == 0 {
		return 0, false
	}
	return s.tags[len(s.tags)-1], true
}

// Has reports whether tag is anywhere on the stack.
func (s *OpenTagStack) Has(tag Tag) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Depth returns the number of currently open tags.
func (s *OpenTagStack) Depth() int { return len(s.tags) }

// Close pops and renders the closing tag for the stack's current top. It
// panics if the stack is empty, since callers must check Depth/Top first —
// closing past an empty stack is a caller bug, not a data-driven condition.
func (s *OpenTagStack) Close() string {
	n := len(s.tags)
	tag := s.tags[n-1]
	s.tags = s.tags[:n-1]
	return s.End(tag)
}

// End renders the closing-tag string for tag without touching the stack,
// applying the stack's configured case.
func (s *OpenTagStack) End(tag Tag) string {
	name := names[tag]
	if !s.lowercase {
		name = upper(name)
	}
	return "</" + name + ">"
}

// CloseAll pops and renders closing tags for every open tag, innermost
// first, as required at end-of-input.
func (s *OpenTagStack) CloseAll() []string {
	closed := make([]string, 0, len(s.tags))
	for len(s.tags) > 0 {
		closed = append(closed, s.Close())
	}
	return closed
}

// CloseThrough pops and renders closing tags down to and including the
// innermost occurrence of tag. It returns nil if tag is not on the stack.
func (s *OpenTagStack) CloseThrough(tag Tag) []string {
	if !s.Has(tag) {
		return nil
	}
	var closed []string
	for {
		top, ok := s.Top()
		if !ok {
			break
		}
		closed = append(closed, s.Close())
		if top == tag {
			break
		}
	}
	return closed
}

// CaseName renders name in the case every body-tag and body-attribute
// emission in the pipeline shares: unchanged when lowercase is set,
// upper-cased otherwise (spec.md §4.5's lower_case_tags/xhtml option).
// Unlike Start/End it is not tied to the Tag enum, for the markup (the
// caps tag, list/table cells, anchors) assembled outside the open-tag
// stack's own bookkeeping.
func CaseName(lowercase bool, name string) string {
	if lowercase {
		return name
	}
	return upper(name)
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
