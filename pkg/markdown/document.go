package markdown

import (
	"strings"

	"github.com/jmylchreest/kustomd/pkg/kusto"
)

// deepLinkMarker distinguishes deep-links (URLs that reopen a specific
// query) from the plain cluster connection URL.
const deepLinkMarker = "query="

// Build assembles the final markdown document from a located clipboard
// payload. Sections appear in fixed order: header (cluster + open-in
// links), fenced query block, results table. Absent regions contribute
// nothing, so a table-only payload produces a Results section and no
// Query heading at all. fenceLang tags the code block for downstream
// syntax highlighting.
func Build(doc kusto.Document, fenceLang string) string {
	var parts []string

	if len(doc.Links) > 0 || doc.ClusterURL != "" {
		parts = append(parts, "### Query\n")
		if doc.ClusterURL != "" {
			parts = append(parts, "> **Cluster:** "+doc.ClusterURL+"\n")
		}
		if items := deepLinks(doc.Links); len(items) > 0 {
			parts = append(parts, "> **Open in:** "+strings.Join(items, " | ")+"\n")
		}
	}

	if doc.Query != "" {
		// Bare heading only when no header section was emitted above.
		if len(doc.Links) == 0 && doc.ClusterURL == "" {
			parts = append(parts, "### Query\n")
		}
		parts = append(parts, "```"+fenceLang+"\n"+doc.Query+"\n```")
	}

	if len(doc.Rows) > 0 {
		parts = append(parts, "\n### Results\n", Table(doc.Rows))
	}

	return strings.Join(parts, "\n")
}

// deepLinks renders the links that carry a query parameter as markdown
// links. Plain links (the cluster URL anchor among them) are excluded.
func deepLinks(links []kusto.Link) []string {
	var items []string
	for _, l := range links {
		if strings.Contains(l.URL, deepLinkMarker) {
			items = append(items, "["+l.Label+"]("+l.URL+")")
		}
	}
	return items
}
