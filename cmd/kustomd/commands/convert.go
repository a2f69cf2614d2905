package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/kustomd/internal/clipboard"
	"github.com/jmylchreest/kustomd/internal/logger"
	"github.com/jmylchreest/kustomd/internal/output"
	"github.com/jmylchreest/kustomd/pkg/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert clipboard or file content to markdown",
	Long: `Convert Kusto Explorer clipboard content to markdown.

By default the system clipboard is read, the markdown is written back to
the clipboard, and the result is echoed to stdout. Use --input to convert
a file or stdin instead, and --output to write to a file or stdout.

Examples:
  # Convert the live clipboard
  kustomd convert

  # Convert a saved HTML dump
  kustomd convert --input dump.html --output out.md

  # Treat input as tab-separated plain text
  kustomd convert --input results.tsv --text --output -`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addConvertFlags(convertCmd.Flags())
}

// addConvertFlags registers the conversion flags. The same set is mounted
// on the root command so that bare `kustomd` behaves like `kustomd convert`.
func addConvertFlags(flags *pflag.FlagSet) {
	flags.StringP("input", "i", "", "read HTML from a file instead of the clipboard (- for stdin)")
	flags.Bool("text", false, "treat --input content as plain text (TSV fallback path)")
	flags.StringP("output", "o", "", "write result to a file instead of the clipboard (- for stdout)")
	flags.StringP("format", "f", "md", "output format: md, json, yaml")
	flags.String("fence-lang", "kql", "language tag for the fenced query code block")
	flags.Int("header-scan", 2000, "max bytes scanned for link metadata when the query marker is absent")
	flags.Bool("no-copy", false, "do not write the markdown back to the clipboard")
}

func runConvert(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	fenceLang, _ := flags.GetString("fence-lang")
	headerScan, _ := flags.GetInt("header-scan")
	conv, err := convert.New(convert.Options{
		FenceLang:       fenceLang,
		HeaderScanBytes: headerScan,
	})
	if err != nil {
		logError("%v", err)
		return err
	}

	src, err := buildSource(flags)
	if err != nil {
		logError("%v", err)
		return err
	}

	res, err := conv.Convert(src)
	switch {
	case errors.Is(err, convert.ErrSourceUnavailable):
		logInfo("Clipboard is empty.")
		return nil
	case errors.Is(err, convert.ErrEmptyResult):
		logInfo("No data to convert.")
		return nil
	case err != nil:
		logError("%v", err)
		return err
	}

	if res.FromHTML {
		logger.Debug("converted Kusto Explorer HTML",
			"rows", len(res.Document.Rows),
			"links", len(res.Document.Links),
			"has_query", res.Document.Query != "")
	} else {
		logger.Debug("converted plain text via TSV fallback",
			"rows", len(res.Document.Rows))
	}

	return writeResult(flags, res)
}

// buildSource picks between the system clipboard and file/stdin input.
func buildSource(flags *pflag.FlagSet) (convert.Source, error) {
	input, _ := flags.GetString("input")
	if input == "" {
		return clipboard.System{}, nil
	}

	var data []byte
	var err error
	if input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	asText, _ := flags.GetBool("text")
	if asText {
		return staticSource{text: string(data)}, nil
	}
	return staticSource{html: string(data)}, nil
}

// writeResult routes the result to a file, stdout, or the clipboard.
// Nothing is written anywhere unless a complete result was produced.
func writeResult(flags *pflag.FlagSet, res convert.Result) error {
	formatName, _ := flags.GetString("format")
	format := output.Format(formatName)

	if outPath, _ := flags.GetString("output"); outPath != "" {
		w := os.Stdout
		if outPath != "-" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}
		writer, err := output.NewWriter(w, format)
		if err != nil {
			return err
		}
		return writer.Write(res)
	}

	// Structured formats go to stdout; the clipboard always receives the
	// plain markdown.
	if format != output.FormatMarkdown {
		writer, err := output.NewWriter(os.Stdout, format)
		if err != nil {
			return err
		}
		if err := writer.Write(res); err != nil {
			return err
		}
	} else {
		fmt.Println(res.Markdown)
	}

	if noCopy, _ := flags.GetBool("no-copy"); noCopy {
		return nil
	}
	var sink clipboard.Sink = clipboard.System{}
	if err := sink.Write(res.Markdown); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	logInfo("Markdown copied to clipboard (%s chars)", humanize.Comma(int64(len(res.Markdown))))
	return nil
}

// staticSource serves pre-read content through the Source interface.
type staticSource struct {
	html string
	text string
}

func (s staticSource) ReadHTML() (string, bool) { return s.html, s.html != "" }
func (s staticSource) ReadText() (string, bool) { return s.text, s.text != "" }
