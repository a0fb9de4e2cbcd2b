package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/qw/internal/engine"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"file":     "FILE",
	"line":     "LINE",
	"location": "LOCATION",
	"text":     "TEXT",
	"start":    "START",
	"end":      "END",
}

// ResolveFields parses a comma list of columns. An empty list selects
// location,text when several sources were searched and line,text otherwise.
func ResolveFields(raw string, multiSource bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		keys := []string{"line", "text"}
		if multiSource {
			keys = []string{"location", "text"}
		}
		sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
		for _, key := range keys {
			sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldRegistry[key]})
		}
		return sel, nil
	}

	parts := strings.Split(raw, ",")
	sel := FieldSelection{Fields: make([]Field, 0, len(parts))}
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		key := strings.ToLower(name)
		header, ok := fieldRegistry[key]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		sel.Fields = append(sel.Fields, Field{Key: key, Header: header})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(it engine.Item, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = formatFieldValue(it, f.Key)
	}
	return out
}

func formatFieldValue(it engine.Item, key string) string {
	switch key {
	case "file":
		return it.File
	case "line":
		return strconv.Itoa(it.Line)
	case "location":
		return fmt.Sprintf("%s:%d", it.File, it.Line)
	case "text":
		return it.Text
	case "start":
		return strconv.Itoa(it.Start)
	case "end":
		return strconv.Itoa(it.End)
	default:
		return ""
	}
}
