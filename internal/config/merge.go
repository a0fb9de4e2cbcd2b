package config

import "strings"

func strPtr(v string) *string {
	s := v
	return &s
}

// MergeSearch applies layers in order; later layers win.
func MergeSearch(base SearchSettings, layers ...SearchConfig) SearchSettings {
	out := base
	for _, layer := range layers {
		if layer.CaseInsensitive != nil {
			legacy := "sensitive"
			if *layer.CaseInsensitive {
				legacy = "insensitive"
			}
			out.Case = ResolveAndTrim(out.Case, strPtr(legacy))
		}
		out.Case = ResolveAndTrim(out.Case, layer.Case)
		out.Queries = ResolveStrings(out.Queries, layer.Queries)
		out.Files = ResolveStrings(out.Files, layer.Files)
		out.MaxBytes = ResolveInt(out.MaxBytes, layer.MaxBytes)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
	}
	if strings.TrimSpace(out.Case) == "" {
		out.Case = "smart"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.LineNumber = ResolveBool(out.LineNumber, layer.LineNumber)
		out.WithFilename = ResolveBool(out.WithFilename, layer.WithFilename)
		out.Count = ResolveBool(out.Count, layer.Count)
		out.MaxWidth = ResolveInt(out.MaxWidth, layer.MaxWidth)
		out.Fields = ResolveAndTrim(out.Fields, layer.Fields)
	}
	if out.Output == "" {
		out.Output = "plain"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	return out
}

func MergeLog(base LogSettings, layers ...LogConfig) LogSettings {
	out := base
	for _, layer := range layers {
		out.Level = ResolveAndTrim(out.Level, layer.Level)
		out.File = ResolveAndTrim(out.File, layer.File)
	}
	if out.Level == "" {
		out.Level = "warn"
	}
	return out
}
