package main

import (
	"fmt"

	"github.com/docopt/docopt-go"
)

// Version information printed by the banner and --version.
const (
	versionNums = "0.0.0"
	versionDate = "2024-03-05"
)

var usage = `cairn

Usage:
  cairn [-dq] [--max-depth=N] [FILE...]
  cairn [-dq] [--max-depth=N] -c COMMAND
  cairn -h
  cairn -v

Arguments:
  FILE  Source files, evaluated in order.

Options:
  -c, --command=COMMAND  Evaluate COMMAND and exit.
  -d, --debug            Trace every evaluated atom on stderr.
  -q, --quiet            Do not print the banner.
  --max-depth=N          Function expansion depth limit, 0 for none [default: 10000].
  -h, --help             Display this help.
  -v, --version          Print cairn version.

With no FILE and no COMMAND, lines are read from stdin. If stdin is a TTY the
prompt supports line editing and history.
`

// Options holds the parsed command line.
type Options struct {
	Command  string
	Files    []string
	Debug    bool
	Quiet    bool
	MaxDepth int
}

func version() string {
	return fmt.Sprintf("Cairn version %s (%s).", versionNums, versionDate)
}

// parseOptions parses argv against the usage document.
func parseOptions(p *docopt.Parser, argv []string) (*Options, error) {
	opts, err := p.ParseArgs(usage, argv, version())
	if err != nil {
		return nil, err
	}

	var o Options
	o.Command, _ = opts.String("--command")
	o.Debug, _ = opts.Bool("--debug")
	o.Quiet, _ = opts.Bool("--quiet")
	o.Files, _ = opts["FILE"].([]string)

	o.MaxDepth, err = opts.Int("--max-depth")
	if err != nil {
		return nil, fmt.Errorf("--max-depth: %w", err)
	}
	if o.MaxDepth < 0 {
		return nil, fmt.Errorf("--max-depth: must not be negative, got %d", o.MaxDepth)
	}

	return &o, nil
}
