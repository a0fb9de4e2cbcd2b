package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/qw/internal/engine"
	"github.com/phyten/qw/internal/source"
	"github.com/phyten/qw/internal/termcolor"
	"github.com/phyten/qw/internal/textutil"
)

const ellipsis = "…"

// PlainOptions controls the grep-like text renderer.
type PlainOptions struct {
	WithFilename bool
	LineNumber   bool
	Count        bool
	MaxWidth     int
	Color        bool
	Palette      termcolor.Palette
}

// DisplayName is the label printed for a source.
func DisplayName(name string) string {
	if source.IsStdin(name) {
		return "(standard input)"
	}
	return name
}

// WritePlain prints matching lines, one per line, in original casing. The
// file prefix appears when requested or when more than one source was searched.
func WritePlain(w io.Writer, res *engine.Result, o PlainOptions) error {
	bw := bufio.NewWriter(w)
	showFile := o.WithFilename || len(res.Files) > 1

	if o.Count {
		for _, f := range res.Files {
			if showFile {
				bw.WriteString(prefix(f.File, o))
			}
			bw.WriteString(strconv.Itoa(f.Matches))
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	gutter := 0
	if o.LineNumber {
		for _, it := range res.Items {
			if n := len(strconv.Itoa(it.Line)); n > gutter {
				gutter = n
			}
		}
	}

	for _, it := range res.Items {
		if showFile {
			bw.WriteString(prefix(it.File, o))
		}
		if o.LineNumber {
			num := textutil.PadLeft(strconv.Itoa(it.Line), gutter)
			bw.WriteString(termcolor.Apply(o.Palette.LineNumber, num, o.Color))
			bw.WriteString(termcolor.Apply(o.Palette.Separator, ":", o.Color))
		}
		bw.WriteString(renderText(it, o))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func prefix(file string, o PlainOptions) string {
	return termcolor.Apply(o.Palette.File, DisplayName(file), o.Color) +
		termcolor.Apply(o.Palette.Separator, ":", o.Color)
}

func renderText(it engine.Item, o PlainOptions) string {
	text := it.Text
	spans := it.Spans
	if o.MaxWidth > 0 {
		cut := textutil.TruncateByWidth(text, o.MaxWidth, ellipsis)
		if cut != text {
			kept := strings.TrimSuffix(cut, ellipsis)
			if strings.HasPrefix(text, kept) {
				spans = clipSpans(spans, len(kept))
			} else {
				spans = nil
			}
			text = cut
		}
	}
	return termcolor.Highlight(text, spans, o.Palette.Match, o.Color)
}

func clipSpans(spans [][2]int, limit int) [][2]int {
	out := make([][2]int, 0, len(spans))
	for _, sp := range spans {
		if sp[0] >= limit {
			break
		}
		if sp[1] > limit {
			sp[1] = limit
		}
		out = append(out, sp)
	}
	return out
}
