package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/qw/internal/engine/opts"
)

// FromEnv reads QW_* variables. The legacy CASE_INSENSITIVE variable selects
// case-insensitive search when set to any non-empty value, unless QW_CASE
// is also set.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	if raw := strings.TrimSpace(getenv("QW_CASE")); raw != "" {
		canonical, err := engineopts.NormalizeCase(raw)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Search.Case = &canonical
		}
	} else if getenv("CASE_INSENSITIVE") != "" {
		insensitive := true
		cfg.Search.CaseInsensitive = &insensitive
	}
	// Queries are separated by newlines so commas and spaces stay literal.
	if raw := getenv("QW_QUERIES"); raw != "" {
		queries := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
		cfg.Search.Queries = &queries
	}
	setList(&cfg.Search.Files, "QW_FILES")
	setInt(&cfg.Search.MaxBytes, "QW_MAX_BYTES", 0, math.MaxInt)
	// Allow large values here and rely on NormalizeAndValidate to enforce the
	// canonical upper bound so every input path shares the same error message.
	setInt(&cfg.Search.Jobs, "QW_JOBS", 0, math.MaxInt)

	setString(&cfg.UI.Output, "QW_OUTPUT")
	setString(&cfg.UI.Color, "QW_COLOR")
	setBool(&cfg.UI.LineNumber, "QW_LINE_NUMBER")
	setBool(&cfg.UI.WithFilename, "QW_WITH_FILENAME")
	setBool(&cfg.UI.Count, "QW_COUNT")
	setInt(&cfg.UI.MaxWidth, "QW_MAX_WIDTH", 0, math.MaxInt)
	setString(&cfg.UI.Fields, "QW_FIELDS")

	setString(&cfg.Log.Level, "QW_LOG_LEVEL")
	setString(&cfg.Log.File, "QW_LOG_FILE")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
