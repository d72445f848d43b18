// Package interpreter - builtins.go contains the built-in command table
package interpreter

import (
	"sort"

	"github.com/cairnLang/cairn/pkg/types"
)

// Command is one built-in operation.
type Command int

// Built-in commands
const (
	CmdAdd Command = iota + 1
	CmdSub
	CmdMod
	CmdGte
	CmdLte
	CmdClr
	CmdDef
)

var commandNames = [...]string{
	CmdAdd: "ADD",
	CmdSub: "SUB",
	CmdMod: "MOD",
	CmdGte: "GTE",
	CmdLte: "LTE",
	CmdClr: "CLR",
	CmdDef: "DEF",
}

// commands is fixed at startup and never written afterwards.
var commands = func() map[types.Symbol]Command {
	m := make(map[types.Symbol]Command, len(commandNames))
	for c, name := range commandNames {
		if name != "" {
			m[types.Symbol(name)] = Command(c)
		}
	}
	return m
}()

func (c Command) String() string {
	if c > 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "<invalid command>"
}

// LookupCommand returns the built-in command named by s.
func LookupCommand(s types.Symbol) (Command, bool) {
	c, ok := commands[s]
	return c, ok
}

// CommandNames returns the built-in command names in sorted order.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for s := range commands {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return names
}

// apply runs a built-in command against the session.
func (i *Interpreter) apply(c Command) error {
	switch c {
	case CmdAdd:
		return builtinAdd(i)
	case CmdSub:
		return builtinSub(i)
	case CmdMod:
		return builtinMod(i)
	case CmdGte:
		return builtinGte(i)
	case CmdLte:
		return builtinLte(i)
	case CmdClr:
		return builtinClr(i)
	case CmdDef:
		return builtinDef(i)
	}
	return nil
}

// binary pops b then a and pushes fn(a, b). The stack is untouched when it
// holds fewer than two values.
func binary(i *Interpreter, fn func(a, b int) int) error {
	vs, err := i.Stack.PopN(2)
	if err != nil {
		return err
	}
	i.Stack.Push(fn(int(vs[0]), int(vs[1])))
	return nil
}

// ADD (a b -- a+b)
func builtinAdd(i *Interpreter) error {
	return binary(i, func(a, b int) int { return a + b })
}

// SUB (a b -- a-b)
func builtinSub(i *Interpreter) error {
	return binary(i, func(a, b int) int { return a - b })
}

// MOD (a b -- a%b)
func builtinMod(i *Interpreter) error {
	if i.Stack.Len() < 2 {
		return types.ErrStackUnderflow
	}
	if b, _ := i.Stack.Peek(); b == 0 {
		return types.ErrDivisionByZero
	}
	return binary(i, func(a, b int) int { return a % b })
}

// GTE (a b -- a>=b)
func builtinGte(i *Interpreter) error {
	return binary(i, func(a, b int) int { return types.Bool(a >= b) })
}

// LTE (a b -- a<=b)
func builtinLte(i *Interpreter) error {
	return binary(i, func(a, b int) int { return types.Bool(a <= b) })
}

// CLR (... --)
func builtinClr(i *Interpreter) error {
	i.Stack.Clear()
	return nil
}
