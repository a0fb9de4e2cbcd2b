package config

import (
	"fmt"
	"strings"

	engineopts "github.com/phyten/qw/internal/engine/opts"
	"github.com/phyten/qw/internal/logging"
	"github.com/phyten/qw/internal/termcolor"
)

func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Fields = strings.TrimSpace(values.Fields)

	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	if values.MaxWidth < 0 {
		return values, fmt.Errorf("max_width must be >= 0")
	}
	return values, nil
}

func NormalizeLog(values LogSettings) (LogSettings, error) {
	level := strings.ToLower(strings.TrimSpace(values.Level))
	if level == "" {
		level = "warn"
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return values, fmt.Errorf("invalid log_level: %s", values.Level)
	}
	values.Level = level
	values.File = strings.TrimSpace(values.File)
	return values, nil
}
