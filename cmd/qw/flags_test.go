package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseArgsShortAliases(t *testing.T) {
	cfg, err := parseArgs([]string{"-i", "-n", "-H", "-c", "-o", "csv", "-f", "a.txt", "-f", "b.txt", "-j", "3", "duct"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.search.Case == nil || *cfg.search.Case != "insensitive" {
		t.Fatalf("Case mismatch: %+v", cfg.search.Case)
	}
	if cfg.search.Files == nil || !reflect.DeepEqual(*cfg.search.Files, []string{"a.txt", "b.txt"}) {
		t.Fatalf("Files mismatch: %+v", cfg.search.Files)
	}
	if cfg.search.Jobs == nil || *cfg.search.Jobs != 3 {
		t.Fatalf("Jobs mismatch: %+v", cfg.search.Jobs)
	}
	if cfg.ui.Output == nil || *cfg.ui.Output != "csv" {
		t.Fatalf("Output mismatch: %+v", cfg.ui.Output)
	}
	if cfg.ui.LineNumber == nil || !*cfg.ui.LineNumber {
		t.Fatal("LineNumber should be set")
	}
	if cfg.ui.WithFilename == nil || !*cfg.ui.WithFilename {
		t.Fatal("WithFilename should be set")
	}
	if cfg.ui.Count == nil || !*cfg.ui.Count {
		t.Fatal("Count should be set")
	}
	if cfg.search.Queries == nil || !reflect.DeepEqual(*cfg.search.Queries, []string{"duct"}) {
		t.Fatalf("Queries mismatch: %+v", cfg.search.Queries)
	}
}

func TestParseArgsInterleavedFlagsAndQueries(t *testing.T) {
	cfg, err := parseArgs([]string{"safe", "--sensitive", "", "fast", "--", "-n", "--count"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	want := []string{"safe", "", "fast", "-n", "--count"}
	if cfg.search.Queries == nil || !reflect.DeepEqual(*cfg.search.Queries, want) {
		t.Fatalf("Queries mismatch: got %q want %q", derefStrings(cfg.search.Queries), want)
	}
	if cfg.search.Case == nil || *cfg.search.Case != "sensitive" {
		t.Fatalf("Case mismatch: %+v", cfg.search.Case)
	}
	if cfg.ui.LineNumber != nil || cfg.ui.Count != nil {
		t.Fatal("flags after -- must be treated as queries")
	}
}

func TestParseArgsCaseConflict(t *testing.T) {
	_, err := parseArgs([]string{"-i", "-s", "rust"})
	if !errors.Is(err, errCaseConflict) {
		t.Fatalf("expected case conflict, got %v", err)
	}
	if err.Error() != "can't search both case sensitive and case insensitive" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestParseArgsUnsetFlagsStayNil(t *testing.T) {
	cfg, err := parseArgs([]string{"rust"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.search.Case != nil || cfg.search.Files != nil || cfg.search.Jobs != nil || cfg.search.MaxBytes != nil {
		t.Fatalf("unset search flags should be nil: %+v", cfg.search)
	}
	if cfg.ui.Output != nil || cfg.ui.Color != nil || cfg.ui.MaxWidth != nil || cfg.ui.Fields != nil {
		t.Fatalf("unset ui flags should be nil: %+v", cfg.ui)
	}
	if cfg.log.Level != nil || cfg.log.File != nil {
		t.Fatalf("unset log flags should be nil: %+v", cfg.log)
	}
}

func TestParseArgsLongFlags(t *testing.T) {
	cfg, err := parseArgs([]string{
		"--case=smart", "--color", "never", "--max-width", "40", "--fields", "line,text",
		"--max-bytes=1024", "--config", "qw.toml", "--log-level", "debug", "--log-file", "qw.log", "x",
	})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if cfg.search.Case == nil || *cfg.search.Case != "smart" {
		t.Fatalf("Case mismatch: %+v", cfg.search.Case)
	}
	if cfg.ui.Color == nil || *cfg.ui.Color != "never" {
		t.Fatalf("Color mismatch: %+v", cfg.ui.Color)
	}
	if cfg.ui.MaxWidth == nil || *cfg.ui.MaxWidth != 40 {
		t.Fatalf("MaxWidth mismatch: %+v", cfg.ui.MaxWidth)
	}
	if cfg.ui.Fields == nil || *cfg.ui.Fields != "line,text" {
		t.Fatalf("Fields mismatch: %+v", cfg.ui.Fields)
	}
	if cfg.search.MaxBytes == nil || *cfg.search.MaxBytes != 1024 {
		t.Fatalf("MaxBytes mismatch: %+v", cfg.search.MaxBytes)
	}
	if cfg.configPath != "qw.toml" {
		t.Fatalf("config path mismatch: %q", cfg.configPath)
	}
	if cfg.log.Level == nil || *cfg.log.Level != "debug" || cfg.log.File == nil || *cfg.log.File != "qw.log" {
		t.Fatalf("log flags mismatch: %+v", cfg.log)
	}
}

func TestParseArgsHelpAndVersion(t *testing.T) {
	cfg, err := parseArgs([]string{"-h"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if !cfg.showHelp {
		t.Fatal("showHelp should be true")
	}
	cfg, err = parseArgs([]string{"--version"})
	if err != nil {
		t.Fatalf("parseArgs failed: %v", err)
	}
	if !cfg.showVersion {
		t.Fatal("showVersion should be true")
	}
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"--regex", "x"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if _, err := parseArgs([]string{"--max-width=-1", "x"}); err == nil {
		t.Fatal("expected error for negative max width")
	}
}

func derefStrings(v *[]string) []string {
	if v == nil {
		return nil
	}
	return *v
}
