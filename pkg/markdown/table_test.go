package markdown

import (
	"strings"
	"testing"
)

func TestTable_Empty(t *testing.T) {
	if got := Table(nil); got != "" {
		t.Errorf("Table(nil) = %q, want empty", got)
	}
}

func TestTable_Basic(t *testing.T) {
	rows := [][]string{
		{"State", "Count"},
		{"TEXAS", "42"},
	}
	want := strings.Join([]string{
		"| State | Count |",
		"| ----- | ----- |",
		"| TEXAS | 42    |",
	}, "\n")
	if got := Table(rows); got != want {
		t.Errorf("Table() =\n%s\nwant\n%s", got, want)
	}
}

func TestTable_MinimumColumnWidth(t *testing.T) {
	// Narrow columns are floored at 3 so the separator stays valid.
	rows := [][]string{{"a", "bb"}}
	want := strings.Join([]string{
		"| a   | bb  |",
		"| --- | --- |",
	}, "\n")
	got := Table(rows)
	if got != want {
		t.Errorf("Table() =\n%s\nwant\n%s", got, want)
	}
	// Single header row: header and separator lines only, no data lines.
	if n := len(strings.Split(got, "\n")); n != 2 {
		t.Errorf("line count = %d, want 2", n)
	}
}

func TestTable_RaggedRowsPadded(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"d"},
		{"e", "f"},
	}
	got := Table(rows)
	lines := strings.Split(got, "\n")

	// One line per input row plus the separator.
	if len(lines) != len(rows)+1 {
		t.Fatalf("line count = %d, want %d", len(lines), len(rows)+1)
	}
	// Every line has the same rendered width.
	for i, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Errorf("line %d width = %d, want %d", i+1, len(line), len(lines[0]))
		}
	}
	// Padded cells render as empty columns.
	if lines[2] != "| d   |     |     |" {
		t.Errorf("padded row = %q", lines[2])
	}
}

func TestTable_Deterministic(t *testing.T) {
	rows := [][]string{
		{"Name", "Link"},
		{"docs", "see http://example.com/a/b/c for details"},
	}
	first := Table(rows)
	second := Table(rows)
	if first != second {
		t.Errorf("repeated rendering differs:\n%s\nvs\n%s", first, second)
	}
}

func TestTable_LinkifiesDataCells(t *testing.T) {
	rows := [][]string{
		{"Name", "Link"},
		{"docs", "see http://example.com/a/b/c for details"},
	}
	got := Table(rows)
	if !strings.Contains(got, "see [b/c](http://example.com/a/b/c) for details") {
		t.Errorf("data cell not linkified:\n%s", got)
	}
}

func TestTable_HeaderNeverLinkified(t *testing.T) {
	rows := [][]string{
		{"see http://example.com/a/b/c for details"},
		{"plain"},
	}
	got := Table(rows)
	if !strings.Contains(got, "see http://example.com/a/b/c for details") {
		t.Errorf("header cell should be untouched:\n%s", got)
	}
	if strings.Contains(got, "[b/c]") {
		t.Errorf("header cell was linkified:\n%s", got)
	}
}

func TestTable_MultipleURLsInOneCell(t *testing.T) {
	rows := [][]string{
		{"Links"},
		{"http://a.example.com/x/y and http://b.example.com/u/v"},
	}
	got := Table(rows)
	if !strings.Contains(got, "[x/y](http://a.example.com/x/y)") ||
		!strings.Contains(got, "[u/v](http://b.example.com/u/v)") {
		t.Errorf("both URLs should be linkified independently:\n%s", got)
	}
}

func TestLinkifyURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "last two segments become the label",
			url:  "http://example.com/a/b/c",
			want: "[b/c](http://example.com/a/b/c)",
		},
		{
			name: "trailing slash stripped before splitting",
			url:  "http://example.com/a/b/",
			want: "[a/b](http://example.com/a/b/)",
		},
		{
			name: "bare host",
			url:  "http://example.com",
			want: "[/example.com](http://example.com)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linkifyURL(tt.url); got != tt.want {
				t.Errorf("linkifyURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestLinkifyURL_LongLabelTruncated(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", 40) + "/" + strings.Repeat("b", 40)
	got := linkifyURL(long)

	label := got[1:strings.Index(got, "]")]
	if len(label) != 60 {
		t.Errorf("label length = %d, want 60", len(label))
	}
	if !strings.HasSuffix(label, "...") {
		t.Errorf("label = %q, want ellipsis suffix", label)
	}
	if label[:57] != (strings.Repeat("a", 40) + "/" + strings.Repeat("b", 16)) {
		t.Errorf("label prefix = %q", label[:57])
	}
	if !strings.HasSuffix(got, "("+long+")") {
		t.Errorf("target should be the full URL: %q", got)
	}
}
