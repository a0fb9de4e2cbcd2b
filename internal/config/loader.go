package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/qw/internal/engine/opts"
)

var searchKeyMap = map[string]string{
	"case":             "case",
	"case_mode":        "case",
	"case_insensitive": "case_insensitive",
	"ignore_case":      "case_insensitive",
	"query":            "queries",
	"queries":          "queries",
	"file":             "files",
	"files":            "files",
	"max_bytes":        "max_bytes",
	"max_file_bytes":   "max_bytes",
	"jobs":             "jobs",
}

var uiKeyMap = map[string]string{
	"output":        "output",
	"format":        "output",
	"color":         "color",
	"line_number":   "line_number",
	"line_numbers":  "line_number",
	"with_filename": "with_filename",
	"count":         "count",
	"max_width":     "max_width",
	"fields":        "fields",
}

var logKeyMap = map[string]string{
	"level": "level",
	"file":  "file",
}

// topLevelLogKeys maps flat keys onto the log section.
var topLevelLogKeys = map[string]string{
	"log_level": "level",
	"log_file":  "file",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	searchSection := make(map[string]any)
	uiSection := make(map[string]any)
	logSection := make(map[string]any)

	sections := []struct {
		name    string
		dst     map[string]any
		allowed map[string]string
	}{
		{"search", searchSection, searchKeyMap},
		{"ui", uiSection, uiKeyMap},
		{"log", logSection, logKeyMap},
	}
	for _, sec := range sections {
		block, ok := lookupKey(raw, sec.name)
		if !ok {
			continue
		}
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", sec.name, err)
		}
		if err := fillSection(sec.dst, sub, sec.allowed, sec.name); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "search", "ui", "log":
			continue
		default:
			if canonical, ok := searchKeyMap[norm]; ok {
				searchSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			if canonical, ok := topLevelLogKeys[norm]; ok {
				logSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignSearch(searchSection, &cfg.Search); err != nil {
		return cfg, fmt.Errorf("search: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	if err := assignLog(logSection, &cfg.Log); err != nil {
		return cfg, fmt.Errorf("log: %w", err)
	}
	return cfg, nil
}

func lookupKey(raw map[string]any, name string) (any, bool) {
	for key, value := range raw {
		if normalizeKey(key) == name {
			return value, true
		}
	}
	return nil, false
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignSearch(section map[string]any, dst *SearchConfig) error {
	for key, value := range section {
		switch key {
		case "case":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			canonical, err := engineopts.NormalizeCase(str)
			if err != nil {
				return err
			}
			dst.Case = &canonical
		case "case_insensitive":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.CaseInsensitive = &b
		case "queries":
			list, err := expectQueryList(value, key)
			if err != nil {
				return err
			}
			dst.Queries = &list
		case "files":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Files = &list
		case "max_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxBytes = &n
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		switch key {
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "line_number":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.LineNumber = &b
		case "with_filename":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.WithFilename = &b
		case "count":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Count = &b
		case "max_width":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxWidth = &n
		case "fields":
			str, err := expectFieldList(value, key)
			if err != nil {
				return err
			}
			dst.Fields = &str
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignLog(section map[string]any, dst *LogConfig) error {
	for key, value := range section {
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		switch key {
		case "level":
			dst.Level = &str
		case "file":
			dst.File = &str
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		parts := engineopts.SplitMulti([]string{v})
		return normalizeList(parts), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

// expectQueryList keeps every entry verbatim: whitespace and commas are
// significant inside a query, and an empty string is a valid query.
func expectQueryList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return out, nil
	case []string:
		return append([]string{}, v...), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

// expectFieldList accepts "a,b" or a list and returns the comma form.
func expectFieldList(value any, field string) (string, error) {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s), nil
	}
	list, err := expectStringList(value, field)
	if err != nil {
		return "", err
	}
	return strings.Join(list, ","), nil
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
