package model

// ListKind distinguishes an ordered list frame from an unordered one.
type ListKind int

// List kinds.
const (
	Unordered ListKind = iota
	Ordered
)

// ListFrame is one entry in a [ListStack]: the literal whitespace+marker
// prefix that opened the frame (used to detect when a later line belongs to
// an ancestor frame rather than continuing or nesting further) and its kind.
type ListFrame struct {
	Prefix string
	Kind   ListKind
}

// ListStack is an ordered stack of open list frames. Depth equals the current
// nesting level of <ul>/<ol> elements the analyzer has opened.
type ListStack struct {
	frames []ListFrame
}

// Depth returns the number of currently open list frames.
func (s *ListStack) Depth() int { return len(s.frames) }

// Empty reports whether no list frame is open.
func (s *ListStack) Empty() bool { return len(s.frames) == 0 }

// Push opens a new innermost frame.
func (s *ListStack) Push(frame ListFrame) { s.frames = append(s.frames, frame) }

// Top returns the innermost frame and true, or the zero value and false if
// the stack is empty.
func (s *ListStack) Top() (ListFrame, bool) {
	if len(s.frames) == 0 {
		return ListFrame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

// Pop removes and returns the innermost frame.
func (s *ListStack) Pop() (ListFrame, bool) {
	if len(s.frames) == 0 {
		return ListFrame{}, false
	}
	frame := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return frame, true
}

// PopTo closes frames until the stack depth equals depth, returning the
// number of frames closed. If depth >= the current depth, it is a no-op.
func (s *ListStack) PopTo(depth int) int {
	closed := 0
	for len(s.frames) > depth {
		s.frames = s.frames[:len(s.frames)-1]
		closed++
	}
	return closed
}

// IndexOf returns the stack index (0 = outermost) of the first frame whose
// Prefix equals prefix, and true; or -1, false if no ancestor frame matches.
func (s *ListStack) IndexOf(prefix string) (int, bool) {
	for i, frame := range s.frames {
		if frame.Prefix == prefix {
			return i, true
		}
	}
	return -1, false
}

// CloseAll empties the stack, returning the number of frames closed.
func (s *ListStack) CloseAll() int {
	return s.PopTo(0)
}
