// Package assembler implements the document envelope spec.md §4.5
// describes: doctype/head/title emission, prepend/append splicing, and
// end-of-input structural tag closing, driving one analyzer.Analyzer and
// (optionally) one applier.Applier per document.
package assembler

// Options carries every document-envelope tunable from spec.md §4.5/§6.
// Zero value is a usable but minimal envelope; use DefaultOptions for the
// spec-mandated doctype default.
type Options struct {
	// Doctype is the DTD identifier string placed in the <!DOCTYPE> line.
	// Overridden by XHTML, per spec.md §6.
	Doctype string
	// XHTML forces lower-case tag names and the XHTML transitional
	// doctype (spec.md §4.5). Tags still open at end of input are closed
	// whether or not XHTML is set.
	XHTML bool
	// LowerCaseTags renders structural tag names in lower case even
	// outside XHTML mode.
	LowerCaseTags bool

	// Title is the configured document title. If empty and TitleFirst is
	// set, the first non-blank input line is used instead.
	Title      string
	TitleFirst bool

	// AppendHeadContent is spliced verbatim before </head> (the
	// append_head file's already-read contents; reading it is the
	// caller's concern, per spec.md §1's "out of scope" list).
	AppendHeadContent string
	// StyleURL, if set, emits a <link rel="stylesheet"> in <head>.
	StyleURL string
	// BodyDeco is an attribute string placed on <body> verbatim.
	BodyDeco string

	// PrependContent and AppendContent are spliced verbatim between
	// <body> and the first paragraph, and before </body>, respectively.
	PrependContent string
	AppendContent  string

	// Extract renders only the converted paragraphs, no envelope at all
	// (spec.md §6's extract option).
	Extract bool
}

// DefaultOptions returns the spec-mandated doctype default; every other
// field is empty/false, matching an unconfigured conversion.
func DefaultOptions() Options {
	return Options{Doctype: "-//W3C//DTD HTML 3.2 Final//EN"}
}

// lowerCaseTags reports whether structural tag names render lower case,
// applying spec.md §4.5's rule that xhtml forces it regardless of the
// LowerCaseTags option.
func (o Options) lowerCaseTags() bool { return o.LowerCaseTags || o.XHTML }

// resolveDoctype applies spec.md §6's rule that xhtml overrides Doctype
// with the XHTML transitional DTD identifier.
func (o Options) resolveDoctype() string {
	if o.XHTML {
		return "-//W3C//DTD XHTML 1.0 Transitional//EN"
	}
	return o.Doctype
}
