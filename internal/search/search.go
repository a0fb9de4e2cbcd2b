package search

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Search returns the lines of contents that satisfy every query under mode,
// in source order and with their original casing.
func Search(queries []Query, mode Mode, contents string) []string {
	lines := Lines(queries, mode, contents)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// Lines is Search with line numbers and byte offsets kept.
func Lines(queries []Query, mode Mode, contents string) []Line {
	haystack := contents
	active := queries
	if mode == CaseInsensitive {
		haystack = strings.ToLower(contents)
		active = lowerAll(queries)
	}

	original := lineSpans(contents)
	normalized := original
	if mode == CaseInsensitive {
		normalized = lineSpans(haystack)
	}

	out := make([]Line, 0)
	for i, sp := range original {
		n := normalized[i]
		if !matchesAll(active, haystack[n.start:n.end]) {
			continue
		}
		out = append(out, Line{Number: i + 1, Start: sp.start, End: sp.end, Text: contents[sp.start:sp.end]})
	}
	return out
}

// Highlight returns the merged byte spans in line covered by any query.
// It returns nil when normalization changed the byte length of line, since
// offsets in the normalized text would not map back onto the original.
func Highlight(queries []Query, mode Mode, line string) [][2]int {
	target := line
	active := queries
	if mode == CaseInsensitive {
		target = strings.ToLower(line)
		if !sameLayout(line, target) {
			return nil
		}
		active = lowerAll(queries)
	}
	var spans [][2]int
	for _, q := range active {
		spans = append(spans, q.Indices(target)...)
	}
	return mergeSpans(spans)
}

// sameLayout reports whether every rune of a and b occupies the same bytes.
func sameLayout(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); {
		_, wa := utf8.DecodeRuneInString(a[i:])
		_, wb := utf8.DecodeRuneInString(b[i:])
		if wa != wb {
			return false
		}
		i += wa
	}
	return true
}

func matchesAll(queries []Query, line string) bool {
	for _, q := range queries {
		if !q.Matches(line) {
			return false
		}
	}
	return true
}

func lowerAll(queries []Query) []Query {
	out := make([]Query, len(queries))
	for i, q := range queries {
		out[i] = q.ToLower()
	}
	return out
}

func mergeSpans(spans [][2]int) [][2]int {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i][0] == spans[j][0] {
			return spans[i][1] < spans[j][1]
		}
		return spans[i][0] < spans[j][0]
	})
	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if sp[0] <= last[1] {
			if sp[1] > last[1] {
				last[1] = sp[1]
			}
			continue
		}
		out = append(out, sp)
	}
	return out
}
