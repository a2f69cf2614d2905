// Package markdown renders located Kusto clipboard content as a markdown
// document: an aligned results table, a fenced query block, and a small
// header with cluster and deep-link metadata.
package markdown

import (
	"strings"
	"unicode/utf8"
)

// maxLabelLen bounds the visible label of an auto-linkified URL.
const maxLabelLen = 60

// minColWidth keeps the dash separator a valid markdown delimiter.
const minColWidth = 3

// Table renders rows as an aligned markdown table. Row 0 is the header;
// data cells are auto-linkified (see linkifyURL). Rows of differing length
// are padded to the widest row. The input is never mutated, so rendering
// the same rows twice yields identical output.
func Table(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	rendered := make([][]string, len(rows))
	for r, row := range rows {
		out := make([]string, maxCols)
		copy(out, row)
		if r > 0 {
			for c, cell := range out {
				if urlRE.MatchString(cell) {
					out[c] = urlRE.ReplaceAllStringFunc(cell, linkifyURL)
				}
			}
		}
		rendered[r] = out
	}

	widths := make([]int, maxCols)
	for c := range widths {
		widths[c] = minColWidth
		for r := range rendered {
			if n := utf8.RuneCountInString(rendered[r][c]); n > widths[c] {
				widths[c] = n
			}
		}
	}

	lines := make([]string, 0, len(rendered)+1)
	lines = append(lines, formatRow(rendered[0], widths))
	lines = append(lines, separatorRow(widths))
	for _, row := range rendered[1:] {
		lines = append(lines, formatRow(row, widths))
	}
	return strings.Join(lines, "\n")
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		if pad := widths[i] - utf8.RuneCountInString(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		cells[i] = cell
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func separatorRow(widths []int) string {
	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	return "| " + strings.Join(dashes, " | ") + " |"
}
