// Cairn - a small stack-based, concatenative command language
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/cairnLang/cairn/pkg/interpreter"
	"github.com/cairnLang/cairn/pkg/repl"
	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

func main() {
	opts, err := parseOptions(&docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		os.Exit(2)
	}
	os.Exit(run(opts))
}

// run executes one session and returns the process exit code.
func run(opts *Options) int {
	interp := interpreter.New()
	interp.Debug = opts.Debug
	interp.MaxDepth = opts.MaxDepth
	interp.Logf = log.New(os.Stderr, "", 0).Printf

	switch {
	case opts.Command != "":
		r := repl.New(interp, nil)
		if r.Execute(opts.Command) > 0 {
			return 1
		}
		return 0

	case len(opts.Files) > 0:
		return runFiles(repl.New(interp, nil), opts.Files)
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		r := repl.New(interp, repl.NewLinePrompter(os.Stdin, nil))
		return exitCode(r.Run())
	}

	if !opts.Quiet {
		fmt.Println(version())
	}
	return exitCode(runInteractive(interp))
}

func runFiles(r *repl.REPL, files []string) int {
	code := 0
	for _, filename := range files {
		n, err := r.LoadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
			return 1
		}
		if n > 0 {
			code = 1
		}
	}
	return code
}

// runInteractive reads from the terminal through liner.
func runInteractive(interp *interpreter.Interpreter) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	r := repl.New(interp, line)
	r.History = line.AppendHistory
	line.SetWordCompleter(r.Complete)

	return r.Run()
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, repl.ErrInterrupted):
		return 130
	default:
		fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		return 1
	}
}
