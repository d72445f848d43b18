package interpreter

import (
	"strconv"
	"strings"

	"github.com/cairnLang/cairn/pkg/types"
)

// Stack is a last-in-first-out store of clamped values.
type Stack struct {
	values []uint8
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{values: make([]uint8, 0, 64)}
}

// Push clamps v into the byte range and pushes it.
func (s *Stack) Push(v int) {
	s.values = append(s.values, types.Clamp(v))
}

// PopN removes the top n values and returns them in push order, so the
// former top is last. Nothing is removed when fewer than n values exist.
func (s *Stack) PopN(n int) ([]uint8, error) {
	if len(s.values) < n {
		return nil, types.ErrStackUnderflow
	}
	top := len(s.values) - n
	vs := append([]uint8{}, s.values[top:]...)
	s.values = s.values[:top]
	return vs, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (uint8, error) {
	if len(s.values) == 0 {
		return 0, types.ErrStackUnderflow
	}
	return s.values[len(s.values)-1], nil
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.values = s.values[:0]
}

// Len returns the number of stored values.
func (s *Stack) Len() int { return len(s.values) }

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []uint8 {
	return append([]uint8{}, s.values...)
}

func (s *Stack) String() string {
	if len(s.values) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(s.values))
	for _, v := range s.values {
		parts = append(parts, strconv.Itoa(int(v)))
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}
