package opts

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/qw/internal/engine"
	"github.com/phyten/qw/internal/source"
)

const (
	maxJobs = 64
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}

	caseAliases = map[string]string{
		"":                 "smart",
		"smart":            "smart",
		"auto":             "smart",
		"sensitive":        "sensitive",
		"case-sensitive":   "sensitive",
		"s":                "sensitive",
		"insensitive":      "insensitive",
		"case-insensitive": "insensitive",
		"ignore":           "insensitive",
		"i":                "insensitive",
	}
)

// Defaults returns the shared baseline options for CLI, env and config inputs.
func Defaults() engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Queries:  nil,
		Case:     "smart",
		Files:    nil,
		MaxBytes: 0,
		Jobs:     jobs,
	}
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	c, err := NormalizeCase(o.Case)
	if err != nil {
		return err
	}
	o.Case = c

	if len(o.Queries) == 0 {
		return fmt.Errorf("please provide a query string")
	}

	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}

	if o.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must be >= 0")
	}

	o.Files = trimSlice(o.Files)
	stdin := 0
	for _, f := range o.Files {
		if source.IsStdin(f) {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("standard input (-) may only be given once")
	}
	return nil
}

// NormalizeCase canonicalizes a case setting to sensitive, insensitive or smart.
func NormalizeCase(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if canonical, ok := caseAliases[v]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("invalid --case: %s", value)
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "plain", "text":
		return "plain", nil
	case "json", "ndjson", "csv":
		return v, nil
	case "markdown", "md":
		return "markdown", nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
