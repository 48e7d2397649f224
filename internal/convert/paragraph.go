package convert

import "github.com/corvid-labs/txt2html/internal/normalize"

// splitParagraphs groups normalized lines into maximal runs of non-blank
// lines separated by one or more blank lines, the paragraph boundary
// spec.md §2's control flow defines for the document assembler.
func splitParagraphs(lines []normalize.Line) [][]normalize.Line {
	var paragraphs [][]normalize.Line
	var current []normalize.Line

	for _, l := range lines {
		if l.Blank() {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, l)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}
