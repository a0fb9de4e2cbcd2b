package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/phyten/qw/internal/config"
	"github.com/phyten/qw/internal/engine"
	engineopts "github.com/phyten/qw/internal/engine/opts"
	"github.com/phyten/qw/internal/logging"
	"github.com/phyten/qw/internal/output"
	"github.com/phyten/qw/internal/termcolor"
)

var version = "0.1.0"

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qw: ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, termcolor.EnvMap(os.Environ()))
	stop()
	os.Exit(code)
}

// run executes one search and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, env map[string]string) int {
	errLog := log.New(stderr, "qw: ", 0)
	getenv := func(key string) string { return env[key] }

	cli, err := parseArgs(args)
	if err != nil {
		errLog.Print(err)
		fmt.Fprintln(stderr, "Try 'qw --help' for more information.")
		return exitError
	}
	if cli.showHelp {
		fmt.Fprint(stdout, usageText)
		return exitMatch
	}
	if cli.showVersion {
		fmt.Fprintf(stdout, "qw %s\n", version)
		return exitMatch
	}

	settings, err := resolveSettings(cli, getenv)
	if err != nil {
		errLog.Print(err)
		return exitError
	}

	logger, closeLog, err := logging.Setup(logging.Config{
		Level:    settings.log.Level,
		FilePath: settings.log.File,
		Stderr:   stderr,
	})
	if err != nil {
		errLog.Print(err)
		return exitError
	}
	defer func() {
		_ = closeLog()
	}()
	if settings.configPath != "" {
		logger.Debug("loaded config", "path", settings.configPath, "from", settings.configFrom)
	}

	opts := engineopts.Defaults()
	settings.search.ApplyToOptions(&opts)
	opts.Stdin = stdin
	opts.Logger = logger
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		errLog.Print(err)
		return exitError
	}

	res, err := engine.Run(ctx, opts)
	if err != nil {
		logger.Error("search failed", "err", err)
		errLog.Print(err)
		return exitError
	}

	sel, err := output.ResolveFields(settings.ui.Fields, len(res.Files) > 1)
	if err != nil {
		errLog.Print(err)
		return exitError
	}
	colorMode, err := termcolor.ParseMode(settings.ui.Color)
	if err != nil {
		errLog.Print(err)
		return exitError
	}
	stdoutFile, _ := stdout.(*os.File)
	plain := output.PlainOptions{
		WithFilename: settings.ui.WithFilename,
		LineNumber:   settings.ui.LineNumber,
		Count:        settings.ui.Count,
		MaxWidth:     settings.ui.MaxWidth,
		Color:        termcolor.Resolve(colorMode, stdoutFile, env),
		Palette:      termcolor.NewPalette(termcolor.DetectScheme(env), termcolor.DetectProfile(env)),
	}
	if err := output.Write(stdout, settings.ui.Output, res, sel, plain); err != nil {
		errLog.Print(err)
		return exitError
	}

	if res.Matched() {
		return exitMatch
	}
	return exitNoMatch
}

type resolvedSettings struct {
	search     config.SearchSettings
	ui         config.UISettings
	log        config.LogSettings
	configPath string
	configFrom string
}

// resolveSettings layers defaults, the config file, the environment and
// flags, in that order.
func resolveSettings(cli cliConfig, getenv func(string) string) (resolvedSettings, error) {
	var out resolvedSettings

	explicit := cli.configPath
	if explicit == "" {
		explicit = getenv("QW_CONFIG")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return out, err
	}
	path, from, err := config.Find(cwd, explicit, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return out, err
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return out, err
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return out, err
	}

	out.configPath = path
	out.configFrom = from
	out.search = config.MergeSearch(
		config.SearchSettingsFromOptions(engineopts.Defaults()),
		fileCfg.Search, envCfg.Search, cli.search,
	)
	out.ui, err = config.NormalizeUI(config.MergeUI(config.DefaultUISettings(), fileCfg.UI, envCfg.UI, cli.ui))
	if err != nil {
		return out, err
	}
	out.log, err = config.NormalizeLog(config.MergeLog(config.DefaultLogSettings(), fileCfg.Log, envCfg.Log, cli.log))
	if err != nil {
		return out, err
	}
	return out, nil
}
