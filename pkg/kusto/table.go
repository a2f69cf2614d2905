package kusto

import (
	"strings"

	"golang.org/x/net/html"
)

// tableExtractor collects rows and cells from a table fragment. Cells and
// rows do not nest: cell content is taken as flat text, not rescanned for
// further row or cell tags.
type tableExtractor struct {
	rows   [][]string
	row    []string
	cell   strings.Builder
	inCell bool
}

// ExtractRows converts the inner content of a <table> element into rows of
// cell strings. A cell is the trimmed, entity-decoded text between <td> and
// </td>; a row is emitted at </tr> only when it holds at least one cell.
// Non-breaking spaces are normalized to regular spaces in every cell.
func ExtractRows(fragment string) [][]string {
	var e tableExtractor
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			e.startTag(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			e.endTag(string(name))
		case html.TextToken:
			if e.inCell {
				e.cell.Write(z.Text())
			}
		}
	}
	return e.rows
}

func (e *tableExtractor) startTag(name string) {
	switch name {
	case "td":
		e.inCell = true
		e.cell.Reset()
	case "tr":
		e.row = nil
	}
}

func (e *tableExtractor) endTag(name string) {
	switch name {
	case "td":
		e.inCell = false
		cell := strings.TrimSpace(e.cell.String())
		cell = strings.ReplaceAll(cell, " ", " ")
		e.row = append(e.row, cell)
	case "tr":
		if len(e.row) > 0 {
			e.rows = append(e.rows, e.row)
		}
	}
}
