package engine

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/phyten/qw/internal/search"
)

const poem = "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}
	return path
}

func texts(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}

func TestRunは標準入力を検索する(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Queries: []string{"rUsT"},
		Case:    "insensitive",
		Stdin:   strings.NewReader(poem),
		Jobs:    1,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, want := texts(res.Items), []string{"Rust:", "Trust me."}; !reflect.DeepEqual(got, want) {
		t.Fatalf("items mismatch: got=%v want=%v", got, want)
	}
	if res.Items[1].Line != 4 {
		t.Fatalf("expected line 4, got %d", res.Items[1].Line)
	}
	if res.Items[0].File != "-" {
		t.Fatalf("expected stdin name '-', got %q", res.Items[0].File)
	}
	if !res.Matched() || res.Total != 2 {
		t.Fatalf("unexpected total: %d", res.Total)
	}
	if len(res.Files) != 1 || res.Files[0].Lines != 4 || res.Files[0].Matches != 2 {
		t.Fatalf("unexpected file summary: %+v", res.Files)
	}
}

func TestRunは複数ファイルを引数順に返す(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha me\nbeta\n")
	b := writeFile(t, dir, "b.txt", "gamma\nus and me\nnothing\n")
	c := writeFile(t, dir, "c.txt", "trust me\n")

	res, err := Run(context.Background(), Options{
		Queries: []string{"me"},
		Files:   []string{c, a, b},
		Jobs:    3,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	var files []string
	for _, it := range res.Items {
		files = append(files, it.File)
	}
	if want := []string{c, a, b}; !reflect.DeepEqual(files, want) {
		t.Fatalf("source order not preserved: got=%v want=%v", files, want)
	}
	if got, want := texts(res.Items), []string{"trust me", "alpha me", "us and me"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("items mismatch: got=%v want=%v", got, want)
	}
}

func TestRunは全クエリを満たす行だけを返す(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Queries: []string{"us", "me"},
		Stdin:   strings.NewReader(poem),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got, want := texts(res.Items), []string{"Trust me."}; !reflect.DeepEqual(got, want) {
		t.Fatalf("conjunction broken: got=%v want=%v", got, want)
	}
}

func TestRunはスマートケースを解決する(t *testing.T) {
	res, err := Run(context.Background(), Options{Queries: []string{"rust"}, Stdin: strings.NewReader(poem)})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Mode != search.CaseInsensitive || !res.Smart {
		t.Fatalf("expected smart insensitive, got mode=%v smart=%v", res.Mode, res.Smart)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Items))
	}

	res, err = Run(context.Background(), Options{Queries: []string{"me", "Rust"}, Case: "smart", Stdin: strings.NewReader(poem)})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Mode != search.CaseSensitive {
		t.Fatalf("uppercase in any query should make smart mode sensitive, got %v", res.Mode)
	}
	if len(res.Items) != 0 {
		t.Fatalf("expected no matches, got %v", texts(res.Items))
	}
}

func TestRunはハイライト範囲を返す(t *testing.T) {
	res, err := Run(context.Background(), Options{Queries: []string{"RUST"}, Case: "insensitive", Stdin: strings.NewReader("Trust me.")})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(res.Items))
	}
	if want := [][2]int{{1, 5}}; !reflect.DeepEqual(res.Items[0].Spans, want) {
		t.Fatalf("spans mismatch: got=%v want=%v", res.Items[0].Spans, want)
	}
}

func TestRunは空の入力で空の結果を返す(t *testing.T) {
	res, err := Run(context.Background(), Options{Queries: []string{"x"}, Stdin: strings.NewReader("")})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", res.Items)
	}
	if res.Matched() {
		t.Fatal("empty input must not report a match")
	}
}

func TestRunはエラーを握りつぶさない(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Run(context.Background(), Options{Queries: []string{"x"}, Files: []string{missing}})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}

	_, err = Run(context.Background(), Options{Queries: []string{"x"}, Files: []string{"-", "-"}, Stdin: strings.NewReader("")})
	if err == nil || !strings.Contains(err.Error(), "more than once") {
		t.Fatalf("expected duplicate stdin error, got %v", err)
	}

	_, err = Run(context.Background(), Options{Queries: []string{"x"}, Case: "loud", Stdin: strings.NewReader("")})
	if err == nil || !strings.Contains(err.Error(), "invalid case mode") {
		t.Fatalf("expected invalid case error, got %v", err)
	}
}

func TestRunはキャンセルされたコンテキストで失敗する(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := writeFile(t, t.TempDir(), "a.txt", "a\n")
	_, err := Run(ctx, Options{Queries: []string{"a"}, Files: []string{path}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestResolveMode(t *testing.T) {
	cases := []struct {
		value   string
		queries []string
		want    search.Mode
		smart   bool
		err     bool
	}{
		{"sensitive", []string{"abc"}, search.CaseSensitive, false, false},
		{"INSENSITIVE", []string{"ABC"}, search.CaseInsensitive, false, false},
		{"", []string{"abc"}, search.CaseInsensitive, true, false},
		{"smart", []string{"abc", "Def"}, search.CaseSensitive, true, false},
		{"smart", nil, search.CaseInsensitive, true, false},
		{"bogus", nil, search.CaseSensitive, false, true},
	}
	for _, tc := range cases {
		got, smart, err := ResolveMode(tc.value, tc.queries)
		if tc.err {
			if err == nil {
				t.Fatalf("ResolveMode(%q) expected error", tc.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ResolveMode(%q) unexpected error: %v", tc.value, err)
		}
		if got != tc.want || smart != tc.smart {
			t.Fatalf("ResolveMode(%q, %v) = %v,%v want %v,%v", tc.value, tc.queries, got, smart, tc.want, tc.smart)
		}
	}
}
