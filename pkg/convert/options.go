package convert

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Options configures a Converter.
type Options struct {
	// FenceLang tags the fenced query code block. Downstream renderers
	// key syntax highlighting off this value.
	FenceLang string `validate:"required"`

	// HeaderScanBytes bounds the document prefix searched for link and
	// cluster metadata when the query marker is absent. Header metadata
	// always precedes the query in the producer's format.
	HeaderScanBytes int `validate:"min=1"`
}

// DefaultOptions returns the options matching Kusto Explorer's output.
func DefaultOptions() Options {
	return Options{
		FenceLang:       "kql",
		HeaderScanBytes: 2000,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid converter options: %w", err)
	}
	return nil
}
