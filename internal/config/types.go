package config

import (
	"strings"

	"github.com/phyten/qw/internal/engine"
)

type SearchConfig struct {
	Case            *string   `yaml:"case" toml:"case" json:"case"`
	CaseInsensitive *bool     `yaml:"case_insensitive" toml:"case_insensitive" json:"case_insensitive"`
	Queries         *[]string `yaml:"queries" toml:"queries" json:"queries"`
	Files           *[]string `yaml:"files" toml:"files" json:"files"`
	MaxBytes        *int      `yaml:"max_bytes" toml:"max_bytes" json:"max_bytes"`
	Jobs            *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
}

type UIConfig struct {
	Output       *string `yaml:"output" toml:"output" json:"output"`
	Color        *string `yaml:"color" toml:"color" json:"color"`
	LineNumber   *bool   `yaml:"line_number" toml:"line_number" json:"line_number"`
	WithFilename *bool   `yaml:"with_filename" toml:"with_filename" json:"with_filename"`
	Count        *bool   `yaml:"count" toml:"count" json:"count"`
	MaxWidth     *int    `yaml:"max_width" toml:"max_width" json:"max_width"`
	Fields       *string `yaml:"fields" toml:"fields" json:"fields"`
}

type LogConfig struct {
	Level *string `yaml:"level" toml:"level" json:"level"`
	File  *string `yaml:"file" toml:"file" json:"file"`
}

type Config struct {
	Search SearchConfig `yaml:"search" toml:"search" json:"search"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
	Log    LogConfig    `yaml:"log" toml:"log" json:"log"`
}

type SearchSettings struct {
	Case     string
	Queries  []string
	Files    []string
	MaxBytes int
	Jobs     int
}

type UISettings struct {
	Output       string
	Color        string
	LineNumber   bool
	WithFilename bool
	Count        bool
	MaxWidth     int
	Fields       string
}

type LogSettings struct {
	Level string
	File  string
}

func SearchSettingsFromOptions(opts engine.Options) SearchSettings {
	return SearchSettings{
		Case:     opts.Case,
		Queries:  cloneStrings(opts.Queries),
		Files:    cloneStrings(opts.Files),
		MaxBytes: opts.MaxBytes,
		Jobs:     opts.Jobs,
	}
}

func (s SearchSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Case = strings.TrimSpace(s.Case)
	opts.Queries = cloneStrings(s.Queries)
	opts.Files = cloneStrings(s.Files)
	opts.MaxBytes = s.MaxBytes
	opts.Jobs = s.Jobs
}

func DefaultUISettings() UISettings {
	return UISettings{
		Output:       "plain",
		Color:        "auto",
		LineNumber:   false,
		WithFilename: false,
		Count:        false,
		MaxWidth:     0,
		Fields:       "",
	}
}

func DefaultLogSettings() LogSettings {
	return LogSettings{Level: "warn"}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
