// Package model holds the data types shared between the paragraph analyzer
// and the document assembler: the carry-over [Mode], the per-line
// [LineAction], the [ListStack], heading style/anchor bookkeeping, and the
// [OpenTagStack]. These are named-field structs rather than bitset integers
// (see the design note in DESIGN.md on bit-field modes) so that callers read
// `mode.Pre` instead of masking against a module-scope constant.
package model

// Mode is the structural context carried across lines within a paragraph and
// across paragraph boundaries. Exactly one converter instance owns a Mode at
// a time (see the concurrency notes in SPEC_FULL.md §5).
type Mode struct {
	// List is true while an ordered or unordered list is open.
	List bool
	// Pre is true while a preformatted region (explicit or heuristic) is open.
	Pre bool
	// PreExplicit is true while the open preformatted region was opened by an
	// explicit <pre> marker rather than whitespace heuristics. PreExplicit
	// implies Pre.
	PreExplicit bool
	// Table is true while the current paragraph has been rendered as a table.
	// Table and List are never both true for the same paragraph.
	Table bool
}

// Clone returns a copy of m, safe to mutate independently.
func (m Mode) Clone() Mode { return m }
