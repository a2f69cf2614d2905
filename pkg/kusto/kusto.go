// Package kusto parses the HTML clipboard payload produced by Kusto
// Explorer's copy feature. The payload embeds the executed query inside a
// <div data-type="query"> container, the result grid as the first <table>
// element, and connection/deep-link metadata as anchors preceding the query
// container. The format is controlled by a single producer and assumed flat:
// the locators take the first non-greedy match and do not handle nested
// tables or nested query containers.
package kusto

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	// queryMarker delimits the query text in the producer's output.
	queryMarker = `<div data-type="query">`

	// formatMarker is the cheap containment probe used to decide whether a
	// clipboard blob is Kusto Explorer HTML at all.
	formatMarker = `<div data-type=`
)

var (
	queryDivRE = regexp.MustCompile(`(?s)<div data-type="query">(.*?)</div>`)
	tableRE    = regexp.MustCompile(`(?s)<table[^>]*>(.*?)</table>`)
	hrefRE     = regexp.MustCompile(`href="(https?://[^"]+)"`)
)

// Link is a labeled hyperlink found in the header region of the payload.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Document holds everything located in one clipboard payload. Zero values
// mean the corresponding region was absent; absence is never an error.
type Document struct {
	// Links are all header-region anchors, deep-links and otherwise.
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`

	// ClusterURL is the first header-region URL that is not a deep-link
	// (does not carry a query= parameter).
	ClusterURL string `json:"cluster_url,omitempty" yaml:"cluster_url,omitempty"`

	// Query is the KQL source text, entity-decoded and trimmed.
	Query string `json:"query,omitempty" yaml:"query,omitempty"`

	// Rows is the result grid; row 0 is the header row.
	Rows [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// HasQueryMarker reports whether blob looks like Kusto Explorer HTML.
// Callers use it to choose between the HTML path and the plain-text
// fallback.
func HasQueryMarker(blob string) bool {
	return strings.Contains(blob, formatMarker)
}

// Parse locates the query, result table, and link metadata in a full
// clipboard blob. Each region is located independently; missing regions
// yield zero values. headerScan bounds the prefix searched for link
// metadata when the query marker is absent.
func Parse(blob string, headerScan int) Document {
	header := headerRegion(blob, headerScan)
	return Document{
		Links:      ExtractLinks(header),
		ClusterURL: clusterURL(header),
		Query:      extractQuery(blob),
		Rows:       extractTable(blob),
	}
}

// headerRegion returns the part of the blob preceding the query container.
// Link and cluster metadata always precede the query in the producer's
// format, so when the marker is missing a bounded prefix is enough.
func headerRegion(blob string, headerScan int) string {
	if idx := strings.Index(blob, queryMarker); idx >= 0 {
		return blob[:idx]
	}
	if len(blob) > headerScan {
		return blob[:headerScan]
	}
	return blob
}

// extractQuery pulls the KQL text out of the query container. Kusto
// Explorer pads the query with non-breaking spaces; those are normalized
// to regular spaces.
func extractQuery(blob string) string {
	m := queryDivRE.FindStringSubmatch(blob)
	if m == nil {
		return ""
	}
	text := ExtractText(m[1])
	text = strings.ReplaceAll(text, " ", " ")
	return strings.TrimSpace(text)
}

// extractTable pulls rows out of the first <table> element. Additional
// tables are ignored; the producer emits exactly one.
func extractTable(blob string) [][]string {
	m := tableRE.FindStringSubmatch(blob)
	if m == nil {
		return nil
	}
	return ExtractRows(m[1])
}

// clusterURL scans raw href attributes in the header region and returns
// the first URL that is not a deep-link. Deep-links embed the query via a
// query= parameter; the cluster connection URL does not.
func clusterURL(header string) string {
	for _, m := range hrefRE.FindAllStringSubmatch(header, -1) {
		u := html.UnescapeString(m[1])
		if !strings.Contains(u, "query=") {
			return u
		}
	}
	return ""
}
