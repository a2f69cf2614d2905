// Package output handles result formatting and writing.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/kustomd/pkg/convert"
)

// Format represents output format types.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Writer serializes a conversion result. The markdown format writes just
// the rendered document; json and yaml write the located regions alongside
// the rendered markdown for programmatic consumption.
type Writer interface {
	// Write outputs the result.
	Write(res convert.Result) error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatMarkdown:
		return &MarkdownWriter{w: w}, nil
	case FormatJSON:
		return &JSONWriter{w: w}, nil
	case FormatYAML:
		return &YAMLWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// MarkdownWriter writes the rendered markdown document.
type MarkdownWriter struct {
	w io.Writer
}

// Write outputs the markdown followed by a trailing newline.
func (mw *MarkdownWriter) Write(res convert.Result) error {
	_, err := io.WriteString(mw.w, res.Markdown+"\n")
	return err
}
