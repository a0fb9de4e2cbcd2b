package engine

import (
	"io"
	"log/slog"

	"github.com/phyten/qw/internal/search"
)

// Item is one matched line.
type Item struct {
	File  string   `json:"file"`
	Line  int      `json:"line"`
	Start int      `json:"start"`
	End   int      `json:"end"`
	Text  string   `json:"text"`
	Spans [][2]int `json:"spans,omitempty"`
}

// FileResult summarizes a single searched source.
type FileResult struct {
	File    string `json:"file"`
	Lines   int    `json:"lines"`
	Matches int    `json:"matches"`
}

// Options は実行オプション
type Options struct {
	Queries  []string
	Case     string // sensitive|insensitive|smart
	Files    []string
	MaxBytes int
	Jobs     int
	Stdin    io.Reader    `json:"-"`
	Logger   *slog.Logger `json:"-"`
}

// Result は出力
type Result struct {
	Mode      search.Mode  `json:"mode"`
	Smart     bool         `json:"smart"`
	Queries   []string     `json:"queries"`
	Items     []Item       `json:"items"`
	Files     []FileResult `json:"files"`
	Total     int          `json:"total"`
	ElapsedMS int64        `json:"elapsed_ms"`
}

// Matched reports whether any line was selected.
func (r *Result) Matched() bool {
	return r != nil && r.Total > 0
}
