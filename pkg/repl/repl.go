// Package repl runs an interactive Cairn session over a line prompter.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/cairnLang/cairn/pkg/interpreter"
	"github.com/peterh/liner"
)

// ErrInterrupted is returned by Run when the user aborts the prompt.
var ErrInterrupted = errors.New("interrupted")

// Prompter reads one line of input after showing a prompt.
// It returns io.EOF when input is exhausted and liner.ErrPromptAborted on
// an interrupt, matching *liner.State.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Prompt strings
const (
	PrimaryPrompt = ">>> "
)

// REPL drives one interpreter session line by line.
type REPL struct {
	Interp *interpreter.Interpreter
	In     Prompter
	Out    io.Writer
	Err    io.Writer

	// History, if set, receives every non-blank line read
	History func(line string)
}

// New returns a REPL writing to stdout and stderr.
func New(interp *interpreter.Interpreter, in Prompter) *REPL {
	return &REPL{
		Interp: interp,
		In:     in,
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// Run reads lines until end of input, evaluating each one and dumping the
// session state after the queue has drained. It returns nil on end of input
// or :quit, and ErrInterrupted when the prompt is aborted.
func (r *REPL) Run() error {
	for {
		line, err := r.In.Prompt(PrimaryPrompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.Out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(r.Out)
			return ErrInterrupted
		default:
			return err
		}

		if strings.TrimSpace(line) != "" && r.History != nil {
			r.History(line)
		}

		if quit, handled := r.handleCommand(line); handled {
			if quit {
				return nil
			}
			continue
		}

		r.Execute(line)
	}
}

// Execute evaluates one line, reports its errors and dumps the state.
// It returns the number of errors reported.
func (r *REPL) Execute(source string) int {
	errs, err := r.Interp.EvaluateString(source)
	if err != nil {
		errs = append(errs, err)
	}
	for _, err := range errs {
		fmt.Fprintf(r.Err, "Error: %v.\n", err)
	}
	if err := r.Interp.Dump(r.Out); err != nil {
		fmt.Fprintf(r.Err, "Error: %v.\n", err)
	}
	return len(errs)
}

// handleCommand runs a ":" meta command. handled is false for ordinary
// source lines.
func (r *REPL) handleCommand(line string) (quit, handled bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ":") {
		return false, false
	}

	switch strings.ToLower(fields[0]) {
	case ":help", ":h", ":?":
		printHelp(r.Out)

	case ":quit", ":q", ":exit":
		return true, true

	case ":words", ":w":
		r.printWords()

	case ":clear", ":c":
		r.Interp.Reset()
		fmt.Fprintln(r.Out, "Stack cleared.")

	case ":debug", ":d":
		r.Interp.Debug = !r.Interp.Debug
		fmt.Fprintf(r.Out, "Debug mode: %v\n", r.Interp.Debug)

	case ":load", ":l":
		if len(fields) < 2 {
			fmt.Fprintln(r.Out, "Usage: :load <filename>")
			break
		}
		if _, err := r.LoadFile(fields[1]); err != nil {
			fmt.Fprintf(r.Err, "Error: %v.\n", err)
		}

	default:
		fmt.Fprintf(r.Err, "Error: unknown command %s.\n", fields[0])
	}
	return false, true
}

// LoadFile evaluates a whole source file as one input and dumps the state.
// It returns the number of atom errors reported.
func (r *REPL) LoadFile(filename string) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", filename, err)
	}
	return r.Execute(string(data)), nil
}

func (r *REPL) printWords() {
	fmt.Fprintf(r.Out, "Commands: %s\n", strings.Join(interpreter.CommandNames(), " "))
	if len(r.Interp.Functions) > 0 {
		fmt.Fprintln(r.Out, "Functions:")
		fmt.Fprint(r.Out, r.Interp.FunctionsString())
	}
}

// Complete completes the word under the cursor with command and function
// names, in the shape liner.WordCompleter expects.
func (r *REPL) Complete(line string, pos int) (head string, completions []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}
	head, tail = line[:pos], line[pos:]

	start := strings.LastIndexFunc(head, unicode.IsSpace) + 1
	word := strings.ToUpper(head[start:])
	head = head[:start]
	if word == "" {
		return head, nil, tail
	}

	names := append(interpreter.CommandNames(), r.Interp.FunctionNames()...)
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}

func printHelp(w io.Writer) {
	io.WriteString(w, `
Cairn Commands:
  :help, :h, :?    Show this help
  :quit, :q        Exit Cairn
  :words, :w       List commands and functions
  :clear, :c       Clear stack, queue and registers
  :debug, :d       Toggle per-atom tracing
  :load <file>     Load and execute a file

Language Basics:
  42 -7 300        Integers, clamped to 0..255 when pushed
  ADD SUB MOD      (a b -- a+b) (a b -- a-b) (a b -- a%b)
  GTE LTE          (a b -- 1|0)
  CLR              Empty the stack
  DEF NAME ... END Define a function
  // comment       Ignored to end of line

Example:
  DEF INC 1 ADD END
  5 INC INC        => 7
`)
}

// LinePrompter reads lines from a non-interactive stream such as a pipe.
// Lines may be of any length.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter returns a LinePrompter over r. If out is non-nil prompts
// are written to it.
func NewLinePrompter(r io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), out: out}
}

// Prompt returns the next line without its line ending.
func (p *LinePrompter) Prompt(prompt string) (string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, prompt)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	// A final line without a newline is returned first; io.EOF follows on
	// the next call.
	return strings.TrimRight(line, "\r\n"), nil
}
