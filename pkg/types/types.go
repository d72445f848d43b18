// Package types defines the core atom types for Cairn.
// Every unit of evaluation is an Atom: either an integer literal or a symbol.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Byte range every stack value is saturated into.
const (
	MinValue = 0
	MaxValue = 255
)

// Atom is the interface both atom variants implement.
// The set is closed: only Literal and Symbol satisfy it.
type Atom interface {
	// String returns the source form of the atom
	String() string
	// Type returns the type name for traces and error messages
	Type() string
	atom()
}

// Literal is an integer as written in the source, not yet clamped.
type Literal int

func (l Literal) String() string { return strconv.Itoa(int(l)) }
func (l Literal) Type() string   { return "literal" }
func (Literal) atom()            {}

// Symbol is an uppercase command or function name.
type Symbol string

func (s Symbol) String() string { return string(s) }
func (s Symbol) Type() string   { return "symbol" }
func (Symbol) atom()            {}

// Terminator ends a DEF body.
const Terminator Symbol = "END"

// Clamp saturates v into [MinValue, MaxValue].
func Clamp(v int) uint8 {
	switch {
	case v < MinValue:
		return MinValue
	case v > MaxValue:
		return MaxValue
	}
	return uint8(v)
}

// Bool converts a truth value to 1 or 0.
func Bool(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AtomsString formats an atom sequence as "[ a b c ]", or "[]" when empty.
func AtomsString(atoms []Atom) string {
	if len(atoms) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(atoms))
	for _, a := range atoms {
		parts = append(parts, a.String())
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}

// ErrorCode identifies one kind of evaluation failure.
// Codes are comparable, so they work directly with errors.Is.
type ErrorCode int

// Error codes
const (
	ErrStackUnderflow ErrorCode = iota + 1
	ErrDivisionByZero
	ErrUndefinedTerminator
	ErrMissingDefinitionName
	ErrInvalidDefinitionName
	ErrRecursionLimit
)

func (c ErrorCode) Error() string { return ErrorMessage(c) }

// ErrorMessage returns a human-readable error message for an error code
func ErrorMessage(code ErrorCode) string {
	switch code {
	case ErrStackUnderflow:
		return "stack underflow"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrUndefinedTerminator:
		return "definition has no " + string(Terminator)
	case ErrMissingDefinitionName:
		return "definition has no name"
	case ErrInvalidDefinitionName:
		return "definition name is not a symbol"
	case ErrRecursionLimit:
		return "recursion limit exceeded"
	default:
		return fmt.Sprintf("unknown error %d", int(code))
	}
}

// AtomError records the top-level atom whose evaluation failed.
type AtomError struct {
	Atom Atom
	Err  error
}

func (e *AtomError) Error() string {
	return fmt.Sprintf("%s: %v", e.Atom, e.Err)
}

func (e *AtomError) Unwrap() error { return e.Err }
