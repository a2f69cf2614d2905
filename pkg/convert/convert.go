// Package convert orchestrates the clipboard-to-markdown pipeline: probe
// the source for Kusto Explorer HTML, locate its regions, and render
// markdown; fall back to treating plain text as tab-separated values.
package convert

import (
	"errors"
	"strings"

	"github.com/jmylchreest/kustomd/pkg/kusto"
	"github.com/jmylchreest/kustomd/pkg/markdown"
)

// Sentinel errors. Both are informational rather than fatal: the caller
// reports them and exits the pipeline without writing anything.
var (
	// ErrSourceUnavailable means neither HTML nor plain text could be
	// obtained from the source.
	ErrSourceUnavailable = errors.New("no clipboard content available")

	// ErrEmptyResult means parsing succeeded but produced no markdown.
	ErrEmptyResult = errors.New("no convertible content found")
)

// Source supplies clipboard-like content. Implementations report absence
// with ok=false and never error for a format that simply is not present.
type Source interface {
	// ReadHTML returns the rich HTML flavor of the content, if present.
	ReadHTML() (html string, ok bool)

	// ReadText returns the plain-text flavor of the content, if present.
	ReadText() (text string, ok bool)
}

// Result is one completed conversion. Document carries the located
// regions for structured output; Markdown is the rendered document.
type Result struct {
	Document kusto.Document `json:"document" yaml:"document"`
	Markdown string         `json:"markdown" yaml:"markdown"`

	// FromHTML is false when the TSV fallback produced the result.
	FromHTML bool `json:"from_html" yaml:"from_html"`
}

// Converter runs the transformation. It holds no state between runs;
// each Convert call is an independent, synchronous transformation.
type Converter struct {
	opts Options
}

// New creates a Converter, validating the options.
func New(opts Options) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Converter{opts: opts}, nil
}

// Convert reads from src and produces the markdown result. The HTML path
// is taken only when the payload carries the Kusto query marker; any
// other content goes through the TSV fallback. Missing structure inside
// recognized HTML is not an error — absent regions are simply omitted.
func (c *Converter) Convert(src Source) (Result, error) {
	if blob, ok := src.ReadHTML(); ok && kusto.HasQueryMarker(blob) {
		doc := kusto.Parse(blob, c.opts.HeaderScanBytes)
		md := markdown.Build(doc, c.opts.FenceLang)
		if md == "" {
			return Result{}, ErrEmptyResult
		}
		return Result{Document: doc, Markdown: md, FromHTML: true}, nil
	}

	text, ok := src.ReadText()
	if !ok || strings.TrimSpace(text) == "" {
		return Result{}, ErrSourceUnavailable
	}

	rows := tsvRows(text)
	md := markdown.Table(rows)
	if md == "" {
		return Result{}, ErrEmptyResult
	}
	return Result{Document: kusto.Document{Rows: rows}, Markdown: md}, nil
}

// tsvRows splits plain text into rows of tab-separated cells, skipping
// blank lines. No query, links, or cluster URL exist on this path.
func tsvRows(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	return rows
}
