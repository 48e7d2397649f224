package linkdict

// Error is a typed string error for link-dictionary compilation failures,
// following the same typed-string-error idiom used elsewhere in this module
// (see internal/storage's Error type).
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrDoubleArrow is returned when two consecutive "->" arrows appear in
	// a single entry, a hard parse error per spec.md §4.2.
	ErrDoubleArrow Error = "linkdict: two consecutive arrows in one entry"

	// ErrEvalUnsupported is returned at compile time for any rule carrying
	// the "e" flag. spec.md §9 Open Question (a) leaves expression
	// evaluation support to the implementer's discretion "only behind an
	// explicit opt-in"; no such opt-in is implemented, so "e" rules are
	// unconditionally rejected (see DESIGN.md).
	ErrEvalUnsupported Error = "linkdict: \"e\" (eval) flag is not supported"

	// ErrMissingArrow is returned when a non-comment, non-blank line has no
	// "-...->" separator at all.
	ErrMissingArrow Error = "linkdict: entry has no \"->\" separator"

	// ErrEmptyKey is returned when the key portion of an entry is empty.
	ErrEmptyKey Error = "linkdict: entry has an empty key"

	// ErrBadPattern is returned when a "/regex/" or "|regex|" key fails to
	// compile as a regular expression.
	ErrBadPattern Error = "linkdict: key pattern does not compile"

	// ErrUnknownFlag is returned when a flag character outside
	// {i,e,h,o,s} appears between the dashes.
	ErrUnknownFlag Error = "linkdict: unknown flag character"
)
