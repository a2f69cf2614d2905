package kusto

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks returns (label, url) pairs for every anchor carrying an
// href in the given header-region fragment, in document order. Anchors
// without an href contribute nothing. Labels are trimmed text content;
// hrefs come back entity-decoded from the parser.
//
// The fragment may be a truncated prefix of the full document; the parser
// is tolerant of markup cut off mid-tag.
func ExtractLinks(header string) []Link {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(header))
	if err != nil {
		return nil
	}
	var links []Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		links = append(links, Link{
			Label: strings.TrimSpace(s.Text()),
			URL:   href,
		})
	})
	return links
}
