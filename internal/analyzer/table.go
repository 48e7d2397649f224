package analyzer

import "strings"

type columnSpan struct {
	start, end int
}

// passTable implements spec.md §4.3 Pass 1. It returns true if the
// paragraph was recognized and rendered as a table, in which case every
// later pass is skipped for this paragraph.
func (a *Analyzer) passTable(lines []Line) bool {
	if !a.opts.Tables || a.mode.Pre {
		return false
	}
	rows := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Blank() {
			return false
		}
		rows = append(rows, l)
	}
	if len(rows) < 2 {
		return false
	}

	minLen := len(rows[0].Source.Text)
	for _, r := range rows {
		if n := len(r.Source.Text); n < minLen {
			minLen = n
		}
	}
	if minLen == 0 {
		return false
	}

	boundary := make([]bool, minLen)
	for p := range minLen {
		all := true
		for _, r := range rows {
			if r.Source.Text[p] != ' ' {
				all = false
				break
			}
		}
		boundary[p] = all
	}
	boundary = mergeSingleColumnBoundaries(boundary)

	spans := columnSpans(boundary, minLen)
	if len(spans) < 2 {
		return false
	}
	// The last column is ragged: it runs to the end of each row's own
	// text, not just to the shortest line's length.
	spans[len(spans)-1].end = -1

	aligns := make([]string, len(spans))
	for i, span := range spans {
		aligns[i] = columnAlign(rows, span)
	}

	a.mode.Table = true

	tdTag := a.caseName("td")
	trTag := a.caseName("tr")
	tableTag := a.caseName("table")

	for i := range lines {
		cells := make([]string, len(spans))
		for c, span := range spans {
			end := span.end
			if end < 0 || end > len(lines[i].Source.Text) {
				end = len(lines[i].Source.Text)
			}
			start := span.start
			if start > len(lines[i].Source.Text) {
				start = len(lines[i].Source.Text)
			}
			text := strings.TrimSpace(lines[i].Source.Text[start:end])
			cells[c] = "<" + tdTag + ` align="` + aligns[c] + `">` + escapeHTML(text) + "</" + tdTag + ">"
		}
		row := "<" + trTag + ">" + strings.Join(cells, "") + "</" + trTag + ">"
		if i == 0 {
			row = "<" + tableTag + ">" + row
		}
		if i == len(lines)-1 {
			row += "</" + tableTag + ">"
		}
		lines[i].HTML = row
		lines[i].Action.End = i == len(lines)-1
	}
	return true
}

// mergeSingleColumnBoundaries clears any boundary run shorter than two
// columns, so a coincidental single shared space between two words in
// adjacent columns doesn't split a column on its own (spec.md §4.3 Pass 1,
// §8 scenario 4's two-column man-page table).
func mergeSingleColumnBoundaries(boundary []bool) []bool {
	out := make([]bool, len(boundary))
	copy(out, boundary)
	runStart := -1
	for p := 0; p <= len(out); p++ {
		if p < len(out) && out[p] {
			if runStart < 0 {
				runStart = p
			}
			continue
		}
		if runStart >= 0 {
			if p-runStart < 2 {
				for q := runStart; q < p; q++ {
					out[q] = false
				}
			}
			runStart = -1
		}
	}
	return out
}

// columnSpans converts a per-position boundary mask into the contiguous
// non-boundary runs that form data columns.
func columnSpans(boundary []bool, length int) []columnSpan {
	var spans []columnSpan
	inSpan := false
	start := 0
	for p := 0; p < length; p++ {
		if !boundary[p] {
			if !inSpan {
				inSpan = true
				start = p
			}
			continue
		}
		if inSpan {
			spans = append(spans, columnSpan{start: start, end: p})
			inSpan = false
		}
	}
	if inSpan {
		spans = append(spans, columnSpan{start: start, end: length})
	}
	return spans
}

// columnAlign picks a column's alignment by majority vote among rows whose
// raw (untrimmed) cell text has leading and/or trailing space within the
// column span, per spec.md §4.3 Pass 1.
func columnAlign(rows []Line, span columnSpan) string {
	votes := map[string]int{}
	for _, r := range rows {
		end := span.end
		if end < 0 || end > len(r.Source.Text) {
			end = len(r.Source.Text)
		}
		start := span.start
		if start > end {
			continue
		}
		raw := r.Source.Text[start:end]
		if raw == "" {
			continue
		}
		leading := raw[0] == ' '
		trailing := raw[len(raw)-1] == ' '
		switch {
		case leading && trailing:
			votes["center"]++
		case trailing && !leading:
			votes["left"]++
		case leading && !trailing:
			votes["right"]++
		}
	}
	best, bestCount := "left", 0
	for _, align := range []string{"left", "center", "right"} {
		if votes[align] > bestCount {
			best, bestCount = align, votes[align]
		}
	}
	return best
}
