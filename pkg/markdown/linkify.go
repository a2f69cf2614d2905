package markdown

import (
	"regexp"
	"strings"
)

// urlRE matches a maximal URL-shaped run: http(s) scheme followed by
// characters that cannot close a markdown link or an HTML attribute.
var urlRE = regexp.MustCompile(`https?://[^\s\)\]>"]+`)

// linkifyURL turns a raw URL into a short clickable markdown link. The
// label is the last two /-delimited segments of the URL (trailing slash
// stripped first), truncated with an ellipsis when longer than 60 runes.
// The link target is always the full original URL.
func linkifyURL(url string) string {
	stripped := strings.TrimRight(url, "/")
	label := stripped
	if parts := strings.Split(stripped, "/"); len(parts) >= 2 {
		label = strings.Join(parts[len(parts)-2:], "/")
	}
	if runes := []rune(label); len(runes) > maxLabelLen {
		label = string(runes[:maxLabelLen-3]) + "..."
	}
	return "[" + label + "](" + url + ")"
}
