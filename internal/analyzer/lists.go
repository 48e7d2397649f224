package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/corvid-labs/txt2html/internal/model"
)

var (
	bulletMarker  = regexp.MustCompile(`^(-|\*|=|o|·)( +)`)
	orderedMarker = regexp.MustCompile(`^([0-9]+|[A-Za-z])([.)])( +)`)
)

// matchListMarker recognizes spec.md §4.3 Pass 7's two marker shapes,
// returning the byte length of the marker (including trailing spaces), the
// list kind, and — for ordered markers — the starting token matched
// ("1", "3", "b", ...). Whether that starting token is allowed to *open* a
// new ordered list ("1", "a", or "A" only) is validated by the caller, since
// an already-open list's later items legitimately continue counting past 1.
func (a *Analyzer) matchListMarker(text string) (markerLen int, kind model.ListKind, start string, ok bool) {
	if m := bulletMarker.FindStringSubmatchIndex(text); m != nil {
		bullet := text[m[2]:m[3]]
		if bullet == "o" && !a.opts.TreatOAsBullet {
			// fall through to the ordered check below
		} else {
			return m[1], model.Unordered, "", true
		}
	}
	if m := orderedMarker.FindStringSubmatchIndex(text); m != nil {
		return m[1], model.Ordered, text[m[2]:m[3]], true
	}
	return 0, 0, "", false
}

// opensOrderedList reports whether start is a valid starting token for a
// brand-new ordered list, per spec.md §4.3 Pass 7.
func opensOrderedList(start string) bool {
	return start == "1" || start == "a" || start == "A"
}

// frameKey computes the stack-matching key for a list frame. Ordered-list
// items increment their visible marker on every line, so their identity as
// "the same frame" is tracked by indentation column and kind rather than
// by literal marker text; bullet markers are distinguished by their actual
// bullet character as well, since "- " and "* " at the same indent open
// sibling lists, not a shared one.
func frameKey(kind model.ListKind, indent int, markerText string) string {
	if kind == model.Ordered {
		return fmt.Sprintf("%d:ordered", indent)
	}
	bulletChar := ""
	if len(markerText) > 0 {
		bulletChar = markerText[:1]
	}
	return fmt.Sprintf("%d:bullet:%s", indent, bulletChar)
}

func listTag(kind model.ListKind) model.Tag {
	if kind == model.Ordered {
		return model.TagOL
	}
	return model.TagUL
}

func listTagName(kind model.ListKind) string {
	if kind == model.Ordered {
		return "ol"
	}
	return "ul"
}

// openListTag renders the "<ol><li>"/"<ul><li>" pair that opens a new list
// frame, in the stack's configured case, closing a still-open <p> left
// dangling by the intro paragraph that precedes the list (spec.md §4.5's
// no-nested-<p> invariant — Pass 10 does not run again until the next
// AnalyzeParagraph call, so the list pass must close it itself).
func (a *Analyzer) openListTag(kind model.ListKind) string {
	prefix := ""
	if top, ok := a.tags.Top(); ok && top == model.TagP {
		prefix = a.tags.Close()
	}
	return prefix + "<" + a.caseName(listTagName(kind)) + ">" + a.openTag("li")
}

// passLists implements spec.md §4.3 Pass 7 and its list state machine:
// opening a new frame, continuing the innermost frame, closing down to an
// ancestor frame whose prefix recurs, and closing all frames when a
// paragraph with no list markers follows at column zero.
func (a *Analyzer) passLists(lines []Line, isFirstParagraph bool) {
	if len(lines) == 0 {
		return
	}

	if !a.lists.Empty() {
		if _, _, _, ok := a.matchListMarker(lines[0].Source.Text); !ok && lines[0].Source.Indent == 0 && !lines[0].Blank() {
			var closes []string
			for !a.lists.Empty() {
				a.lists.Pop()
				closes = append(closes, a.tags.Close(), a.tags.Close())
			}
			lines[0].HTML = strings.Join(closes, "") + lines[0].HTML
		}
	}

	for i := range lines {
		if lines[i].Blank() {
			continue
		}
		markerLen, kind, start, ok := a.matchListMarker(lines[i].Source.Text)
		if !ok {
			continue
		}
		markerText := lines[i].Source.Text[:markerLen]
		rest := lines[i].Source.Text[markerLen:]
		key := frameKey(kind, lines[i].Source.Indent, markerText)

		if a.lists.Empty() {
			if kind == model.Ordered && !opensOrderedList(start) {
				continue
			}
			prevBoundary := i == 0 ||
				lines[i].Source.Indent > 0 ||
				lines[i-1].Blank() || lines[i-1].Action.Break || lines[i-1].Action.Header || lines[i-1].Action.Caps
			if !prevBoundary {
				continue
			}
			opening := a.openListTag(kind)
			a.lists.Push(model.ListFrame{Prefix: key, Kind: kind})
			a.tags.Open(listTag(kind))
			a.tags.Open(model.TagLI)
			lines[i].HTML = opening + rest
			lines[i].Action.ListStart = true
		} else {
			if idx, found := a.lists.IndexOf(key); found && idx < a.lists.Depth()-1 {
				var closes []string
				for a.lists.Depth() > idx+1 {
					a.lists.Pop()
					closes = append(closes, a.tags.Close(), a.tags.Close())
				}
				closes = append(closes, a.tags.Close()) // the ancestor frame's own open <li>
				lines[i].HTML = strings.Join(closes, "") + a.openTag("li") + rest
				a.tags.Open(model.TagLI)
			} else if top, hasTop := a.lists.Top(); hasTop && top.Prefix != key {
				// A differently-shaped marker at the same depth starts a
				// nested frame rather than continuing this one.
				a.lists.Push(model.ListFrame{Prefix: key, Kind: kind})
				a.tags.Open(listTag(kind))
				a.tags.Open(model.TagLI)
				lines[i].HTML = "<" + a.caseName(listTagName(kind)) + ">" + a.openTag("li") + rest
				lines[i].Action.ListStart = true
			} else {
				lines[i].HTML = a.tags.Close() + a.openTag("li") + rest
				a.tags.Open(model.TagLI)
			}
		}

		lines[i].Action.List = true
		lines[i].Action.ListItem = true
		// Indentation recorded for subsequent paragraph-start detection is
		// the column after the marker, not before it.
		lines[i].Source.Indent = markerLen
	}

	a.mode.List = !a.lists.Empty()
}
