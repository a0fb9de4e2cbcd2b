package output

import (
	"fmt"
	"io"

	"github.com/phyten/qw/internal/engine"
)

// Write renders res in the given format: plain, json, ndjson, csv or markdown.
func Write(w io.Writer, format string, res *engine.Result, sel FieldSelection, o PlainOptions) error {
	switch format {
	case "", "plain":
		return WritePlain(w, res, o)
	case "json":
		return WriteJSON(w, res)
	case "ndjson":
		return WriteNDJSON(w, res.Items)
	case "csv":
		return WriteCSV(w, res.Items, sel)
	case "markdown":
		return WriteMarkdownTable(w, res.Items, sel)
	default:
		return fmt.Errorf("unsupported output: %s", format)
	}
}
