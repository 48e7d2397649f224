package model

// LineAction records what the analyzer has already done to a given line, so
// later passes in the same run (see analyzer.Analyzer) can tell whether a
// transformation has already been applied and avoid conflicting with it.
type LineAction struct {
	Par        bool // a <p>/<br>-style paragraph start was emitted before this line
	Break      bool // a <br> was appended after this line (short-line break)
	Header     bool // this line was rendered as a heading
	MailHeader bool // this line is part of a mail header block
	MailQuote  bool // this line is a quoted mail line (">" / "|" / ":")
	HRule      bool // this line was rendered as a horizontal rule
	List       bool // this line belongs to an open list
	ListStart  bool // this line opened a new list frame
	ListItem   bool // this line was rendered as a <li>
	Caps       bool // this line was wrapped as an all-caps span
	Link       bool // this line has already been walked by the link applier
	Pre        bool // this line is inside a preformatted region
	End        bool // this line closes a structural block (e.g. end of list/table)
	IndBreak   bool // this line was emitted via the indent_par_break flavor
}

// Blocked reports whether any of the actions that should suppress paragraph
// start detection (see analyzer pass 10) have been recorded.
func (a LineAction) Blocked() bool {
	return a.End || a.MailQuote || a.Caps || a.Break
}
