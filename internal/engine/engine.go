package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/qw/internal/search"
	"github.com/phyten/qw/internal/source"
)

const maxJobs = 64

// Run は Options に従って各入力を検索し、一致した行を入力順・行順で返します。
//
// 入力はファイル引数の順に並び、複数の入力は Jobs を上限として並行に読み込まれます。
// いずれかの入力でエラーが起きた時点で残りの読み込みは取り消されます。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	queries, err := search.NewQueries(opts.Queries)
	if err != nil {
		return nil, err
	}
	mode, smart, err := ResolveMode(opts.Case, opts.Queries)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved search mode", "mode", mode, "smart", smart, "seed", SmartSeed(opts.Queries), "queries", len(queries))

	files := opts.Files
	if len(files) == 0 {
		files = []string{source.StdinName}
	}
	stdinCount := 0
	for _, f := range files {
		if source.IsStdin(f) {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, fmt.Errorf("standard input given more than once")
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}

	type outcome struct {
		summary FileResult
		items   []Item
	}
	outcomes := make([]outcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := source.Open(name, opts.Stdin, opts.MaxBytes)
			if err != nil {
				return err
			}
			lines := search.Lines(queries, mode, src.Contents)
			items := make([]Item, len(lines))
			for j, l := range lines {
				items[j] = Item{
					File:  src.Name,
					Line:  l.Number,
					Start: l.Start,
					End:   l.End,
					Text:  l.Text,
					Spans: search.Highlight(queries, mode, l.Text),
				}
			}
			total := search.CountLines(src.Contents)
			outcomes[i] = outcome{
				summary: FileResult{File: src.Name, Lines: total, Matches: len(items)},
				items:   items,
			}
			logger.Debug("searched source", "file", src.Name, "bytes", len(src.Contents), "lines", total, "matches", len(items))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Mode:    mode,
		Smart:   smart,
		Queries: append([]string{}, opts.Queries...),
		Items:   []Item{},
		Files:   make([]FileResult, 0, len(outcomes)),
	}
	for _, o := range outcomes {
		res.Files = append(res.Files, o.summary)
		res.Items = append(res.Items, o.items...)
	}
	res.Total = len(res.Items)
	res.ElapsedMS = msSince(start)
	logger.Debug("search finished", "sources", len(res.Files), "matches", res.Total, "elapsed_ms", res.ElapsedMS)
	return res, nil
}

// ResolveMode turns a case setting into a search mode. Empty and "smart"
// derive the mode from SmartSeed(queries).
func ResolveMode(value string, queries []string) (search.Mode, bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sensitive":
		return search.CaseSensitive, false, nil
	case "insensitive":
		return search.CaseInsensitive, false, nil
	case "", "smart":
		return search.Smart(SmartSeed(queries)), true, nil
	default:
		return search.CaseSensitive, false, fmt.Errorf("invalid case mode: %s", value)
	}
}

// SmartSeed is the string smart case inspects: every query concatenated in
// order, so an uppercase letter in any query makes the search sensitive.
func SmartSeed(queries []string) string {
	return strings.Join(queries, "")
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
