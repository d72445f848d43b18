// Package interpreter provides the Cairn execution engine.
// It owns one session's stack, queue, registers and function table.
package interpreter

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/cairnLang/cairn/pkg/parser"
	"github.com/cairnLang/cairn/pkg/types"
)

// NumRegisters is the size of the register bank.
const NumRegisters = 8

// DefaultMaxDepth bounds function expansion unless MaxDepth is changed.
const DefaultMaxDepth = 10000

// Interpreter is one Cairn session
type Interpreter struct {
	// Stack is the main data stack
	Stack *Stack

	// Queue holds atoms waiting to be evaluated; DEF reads from it too
	Queue *Queue

	// Registers are reserved; no command reads or writes them yet
	Registers [NumRegisters]uint8

	// Functions maps user-defined names to their bodies
	Functions map[types.Symbol][]types.Atom

	// MaxDepth limits nested function expansion (0 = unlimited)
	MaxDepth int

	// Debug enables per-atom traces through Logf
	Debug bool

	// Logf receives traces (default: log.Printf)
	Logf func(format string, args ...any)

	depth int
}

// New creates a new Interpreter with an empty state
func New() *Interpreter {
	return &Interpreter{
		Stack:     NewStack(),
		Queue:     NewQueue(),
		Functions: make(map[types.Symbol][]types.Atom),
		MaxDepth:  DefaultMaxDepth,
		Logf:      log.Printf,
	}
}

// Reset clears the stack, queue and registers, keeps functions
func (i *Interpreter) Reset() {
	i.Stack.Clear()
	i.Queue.Clear()
	i.Registers = [NumRegisters]uint8{}
	i.depth = 0
}

func (i *Interpreter) tracef(format string, args ...any) {
	if i.Debug && i.Logf != nil {
		i.Logf(format, args...)
	}
}

// Define stores a function body under name, replacing any earlier body.
func (i *Interpreter) Define(name types.Symbol, body []types.Atom) {
	i.Functions[name] = append([]types.Atom{}, body...)
}

// Function looks up a user-defined function body.
func (i *Interpreter) Function(name types.Symbol) ([]types.Atom, bool) {
	body, ok := i.Functions[name]
	return body, ok
}

// FunctionNames returns the defined function names in sorted order.
func (i *Interpreter) FunctionNames() []string {
	names := make([]string, 0, len(i.Functions))
	for name := range i.Functions {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// Evaluate evaluates a single atom.
// Literals are clamped and pushed. Symbols run a built-in command, expand a
// user function, or do nothing when unknown.
func (i *Interpreter) Evaluate(a types.Atom) error {
	i.tracef("eval = %s", a)

	switch a := a.(type) {
	case types.Literal:
		i.Stack.Push(int(a))

	case types.Symbol:
		if c, ok := LookupCommand(a); ok {
			return i.apply(c)
		}
		if body, ok := i.Functions[a]; ok {
			return i.expand(body)
		}
	}

	return nil
}

// expand evaluates a function body in order, stopping at the first error.
func (i *Interpreter) expand(body []types.Atom) error {
	if i.MaxDepth > 0 && i.depth >= i.MaxDepth {
		return types.ErrRecursionLimit
	}
	i.depth++
	defer func() { i.depth-- }()

	for _, a := range body {
		if err := i.Evaluate(a); err != nil {
			return err
		}
	}
	return nil
}

// Drain evaluates queued atoms head first until the queue is empty.
// A failing atom does not stop the ones after it; every failure is returned
// as a *types.AtomError in the order it happened.
func (i *Interpreter) Drain() []error {
	var errs []error
	for !i.Queue.Empty() {
		a, _ := i.Queue.Dequeue()
		if err := i.Evaluate(a); err != nil {
			err = &types.AtomError{Atom: a, Err: err}
			i.tracef("error = %v", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// EvaluateString parses source, appends its atoms to the queue and drains it.
// The returned error is a parse failure; evaluation failures are in the slice.
func (i *Interpreter) EvaluateString(source string) ([]error, error) {
	atoms, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	i.Queue.EnqueueAll(atoms)
	i.tracef("queue = %s", i.Queue)
	return i.Drain(), nil
}

// StackString returns the stack bottom to top
func (i *Interpreter) StackString() string {
	return i.Stack.String()
}

// RegistersString returns the register bank
func (i *Interpreter) RegistersString() string {
	parts := make([]string, 0, NumRegisters)
	for _, r := range i.Registers {
		parts = append(parts, strconv.Itoa(int(r)))
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}

// FunctionsString returns one "NAME = [ body ]" line per function, sorted.
func (i *Interpreter) FunctionsString() string {
	var sb strings.Builder
	for _, name := range i.FunctionNames() {
		fmt.Fprintf(&sb, "  %s = %s\n", name, types.AtomsString(i.Functions[types.Symbol(name)]))
	}
	return sb.String()
}

// Dump writes the session state: stack, registers and, if any, functions.
func (i *Interpreter) Dump(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "stack = %s\n", i.StackString())
	fmt.Fprintf(&sb, "rgstr = %s\n", i.RegistersString())
	if len(i.Functions) > 0 {
		sb.WriteString("funcs:\n")
		sb.WriteString(i.FunctionsString())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
