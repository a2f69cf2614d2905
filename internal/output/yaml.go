package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/kustomd/pkg/convert"
)

// YAMLWriter writes the result as YAML.
type YAMLWriter struct {
	w io.Writer
}

// Write serializes the result as a YAML document.
func (yw *YAMLWriter) Write(res convert.Result) error {
	buf := bufio.NewWriter(yw.w)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return buf.Flush()
}
