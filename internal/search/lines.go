package search

import "strings"

// Line is a view into the searched text. Text is a substring of the
// original contents, so it shares the caller's buffer.
type Line struct {
	Number int    `json:"line"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Text   string `json:"text"`
}

type span struct {
	start int
	end   int
}

// lineSpans splits s on '\n'. A trailing '\r' is not part of the line and a
// final newline does not produce an empty last line.
func lineSpans(s string) []span {
	if s == "" {
		return nil
	}
	spans := make([]span, 0, strings.Count(s, "\n")+1)
	start := 0
	for start < len(s) {
		end := len(s)
		next := len(s)
		if idx := strings.IndexByte(s[start:], '\n'); idx >= 0 {
			end = start + idx
			next = end + 1
		}
		stop := end
		if stop > start && s[stop-1] == '\r' {
			stop--
		}
		spans = append(spans, span{start: start, end: stop})
		start = next
	}
	return spans
}

// SplitLines returns every line of contents as a Line view.
func SplitLines(contents string) []Line {
	spans := lineSpans(contents)
	out := make([]Line, len(spans))
	for i, sp := range spans {
		out[i] = Line{Number: i + 1, Start: sp.start, End: sp.end, Text: contents[sp.start:sp.end]}
	}
	return out
}

// CountLines returns the number of lines SplitLines would produce.
func CountLines(contents string) int {
	if contents == "" {
		return 0
	}
	n := strings.Count(contents, "\n")
	if !strings.HasSuffix(contents, "\n") {
		n++
	}
	return n
}
