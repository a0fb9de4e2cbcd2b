package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/qw/internal/config"
)

var errCaseConflict = errors.New("can't search both case sensitive and case insensitive")

type cliConfig struct {
	search      config.SearchConfig
	ui          config.UIConfig
	log         config.LogConfig
	configPath  string
	showHelp    bool
	showVersion bool
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// parseArgs reads flags and positional queries. Flags may appear anywhere
// before "--"; everything after it is a query.
func parseArgs(args []string) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("qw", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		insensitive, sensitive bool
		files                  stringList
		lineNumber, withFile   bool
		count                  bool
		output, color, fields  string
		caseMode               string
		maxWidth, maxBytes     int
		jobs                   int
		logLevel, logFile      string
	)
	fs.BoolVar(&insensitive, "i", false, "")
	fs.BoolVar(&insensitive, "insensitive", false, "")
	fs.BoolVar(&insensitive, "ignore-case", false, "")
	fs.BoolVar(&sensitive, "s", false, "")
	fs.BoolVar(&sensitive, "sensitive", false, "")
	fs.BoolVar(&sensitive, "case-sensitive", false, "")
	fs.StringVar(&caseMode, "case", "", "")
	fs.Var(&files, "f", "")
	fs.Var(&files, "file", "")
	fs.BoolVar(&lineNumber, "n", false, "")
	fs.BoolVar(&lineNumber, "line-number", false, "")
	fs.BoolVar(&withFile, "H", false, "")
	fs.BoolVar(&withFile, "with-filename", false, "")
	fs.BoolVar(&count, "c", false, "")
	fs.BoolVar(&count, "count", false, "")
	fs.StringVar(&output, "o", "", "")
	fs.StringVar(&output, "output", "", "")
	fs.StringVar(&color, "color", "", "")
	fs.IntVar(&maxWidth, "max-width", 0, "")
	fs.StringVar(&fields, "fields", "", "")
	fs.IntVar(&maxBytes, "max-bytes", 0, "")
	fs.IntVar(&jobs, "j", 0, "")
	fs.IntVar(&jobs, "jobs", 0, "")
	fs.StringVar(&cfg.configPath, "config", "", "")
	fs.StringVar(&logLevel, "log-level", "", "")
	fs.StringVar(&logFile, "log-file", "", "")
	fs.BoolVar(&cfg.showVersion, "version", false, "")
	fs.BoolVar(&cfg.showHelp, "h", false, "")
	fs.BoolVar(&cfg.showHelp, "help", false, "")

	var queries []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				cfg.showHelp = true
				return cfg, nil
			}
			return cfg, err
		}
		remaining := fs.Args()
		if len(remaining) == 0 {
			break
		}
		// Parse drops a terminating "--"; everything after it is a query.
		idx := len(rest) - len(remaining)
		if idx > 0 && rest[idx-1] == "--" {
			queries = append(queries, remaining...)
			break
		}
		queries = append(queries, remaining[0])
		rest = remaining[1:]
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	anySet := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	caseI := anySet("i", "insensitive", "ignore-case") && insensitive
	caseS := anySet("s", "sensitive", "case-sensitive") && sensitive
	if caseI && caseS {
		return cfg, errCaseConflict
	}
	switch {
	case caseI:
		v := "insensitive"
		cfg.search.Case = &v
	case caseS:
		v := "sensitive"
		cfg.search.Case = &v
	case set["case"]:
		v := caseMode
		cfg.search.Case = &v
	}

	if len(queries) > 0 {
		q := append([]string{}, queries...)
		cfg.search.Queries = &q
	}
	if anySet("f", "file") {
		list := append([]string{}, files...)
		cfg.search.Files = &list
	}
	if set["max-bytes"] {
		cfg.search.MaxBytes = &maxBytes
	}
	if anySet("j", "jobs") {
		cfg.search.Jobs = &jobs
	}

	if anySet("n", "line-number") {
		cfg.ui.LineNumber = &lineNumber
	}
	if anySet("H", "with-filename") {
		cfg.ui.WithFilename = &withFile
	}
	if anySet("c", "count") {
		cfg.ui.Count = &count
	}
	if anySet("o", "output") {
		cfg.ui.Output = &output
	}
	if set["color"] {
		cfg.ui.Color = &color
	}
	if set["max-width"] {
		if maxWidth < 0 {
			return cfg, fmt.Errorf("--max-width must be >= 0")
		}
		cfg.ui.MaxWidth = &maxWidth
	}
	if set["fields"] {
		cfg.ui.Fields = &fields
	}
	if set["log-level"] {
		cfg.log.Level = &logLevel
	}
	if set["log-file"] {
		cfg.log.File = &logFile
	}
	return cfg, nil
}

const usageText = `Usage: qw [flags] QUERY [QUERY...]

Print the lines of the input that contain every QUERY.

Case:
  -i, --insensitive       match regardless of case
  -s, --sensitive         match case exactly
      --case MODE         smart|sensitive|insensitive (default smart:
                          insensitive unless a query has an uppercase letter)

Input:
  -f, --file PATH         file to search (repeatable, "-" is stdin; default stdin)
      --max-bytes N       refuse inputs larger than N bytes (0 = unlimited)
  -j, --jobs N            files read in parallel (1-64)

Output:
  -o, --output FORMAT     plain|json|ndjson|csv|markdown
  -n, --line-number       prefix lines with their number
  -H, --with-filename     prefix lines with the file name
  -c, --count             print the number of matching lines per file
      --color WHEN        auto|always|never
      --max-width N       truncate plain lines to N columns (0 = unlimited)
      --fields LIST       columns for csv/markdown: file,line,location,text,start,end

Other:
      --config PATH       config file (also QW_CONFIG)
      --log-level LEVEL   debug|info|warn|error
      --log-file PATH     write diagnostics to a rotating log file
      --version           print version
  -h, --help              show this help

Exit status is 0 when a line matched, 1 when none did and 2 on error.
`
