package kusto

import (
	"strings"

	"golang.org/x/net/html"
)

// textExtractor accumulates visible text from an HTML fragment. Paragraph
// and line-break tags act as line boundaries; <style> content is skipped.
// Skip state is single-level: the producer never nests style tags.
type textExtractor struct {
	lines []string
	cur   strings.Builder
	skip  bool
}

// ExtractText converts an HTML fragment to plain text. <p> and <br> flush
// the current line, entity references are decoded, and empty lines are
// dropped. A fragment without paragraph tags comes back as a single line.
func ExtractText(fragment string) string {
	var e textExtractor
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// EOF or malformed markup: either way we keep what we have.
			break
		}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			e.startTag(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "style" {
				e.skip = false
			}
		case html.TextToken:
			if !e.skip {
				// Text() decodes entity and character references.
				e.cur.Write(z.Text())
			}
		}
	}
	e.flush()
	return strings.Join(e.lines, "\n")
}

func (e *textExtractor) startTag(name string) {
	switch name {
	case "style":
		e.skip = true
	case "p", "br":
		e.flush()
	}
}

// flush emits the pending buffer as one line, dropping empty lines.
func (e *textExtractor) flush() {
	if e.cur.Len() > 0 {
		e.lines = append(e.lines, e.cur.String())
	}
	e.cur.Reset()
}
