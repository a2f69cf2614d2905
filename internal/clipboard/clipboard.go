// Package clipboard abstracts system clipboard access behind small
// capability interfaces. The core pipeline consumes Source and Sink and
// never touches platform handles; those live entirely in the adapters.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Source supplies clipboard content by flavor. Absence of a flavor is
// reported with ok=false, never an error.
type Source interface {
	ReadHTML() (string, bool)
	ReadText() (string, bool)
}

// Sink receives the converted markdown.
type Sink interface {
	Write(markdown string) error
}

// System reads and writes the OS clipboard. The rich HTML flavor is only
// available on Windows (see ReadHTML in the platform files); plain text
// works everywhere.
type System struct{}

// ReadText returns the plain-text clipboard content, if any.
func (System) ReadText() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// Write replaces the clipboard content with markdown.
func (System) Write(markdown string) error {
	return clipboard.WriteAll(markdown)
}
