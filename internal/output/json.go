package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/kustomd/pkg/convert"
)

// JSONWriter writes the result as pretty-printed JSON.
type JSONWriter struct {
	w io.Writer
}

// Write serializes the result as an indented JSON object.
func (jw *JSONWriter) Write(res convert.Result) error {
	buf := bufio.NewWriter(jw.w)
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	if _, err := buf.Write(data); err != nil {
		return err
	}
	if _, err := buf.WriteString("\n"); err != nil {
		return err
	}
	return buf.Flush()
}
