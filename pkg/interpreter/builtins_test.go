package interpreter

import (
	"testing"

	"github.com/cairnLang/cairn/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommand(t *testing.T) {
	for _, name := range []string{"ADD", "SUB", "MOD", "GTE", "LTE", "CLR", "DEF"} {
		c, ok := LookupCommand(types.Symbol(name))
		require.True(t, ok, name)
		assert.Equal(t, name, c.String())
	}

	_, ok := LookupCommand("MUL")
	assert.False(t, ok)
	_, ok = LookupCommand("add")
	assert.False(t, ok)

	assert.Equal(t, []string{"ADD", "CLR", "DEF", "GTE", "LTE", "MOD", "SUB"}, CommandNames())
	assert.Equal(t, "<invalid command>", Command(0).String())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		code     string
		expected []uint8
	}{
		{"2 3 ADD", []uint8{5}},
		{"200 100 ADD", []uint8{255}},
		{"10 3 SUB", []uint8{7}},
		{"3 10 SUB", []uint8{0}},
		{"17 5 MOD", []uint8{2}},
		{"5 17 MOD", []uint8{5}},
		{"1 2 3 ADD", []uint8{1, 5}},
		{"300 1 SUB", []uint8{254}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			interp := runCairn(t, tt.code)
			assert.Equal(t, tt.expected, interp.Stack.Values())
		})
	}
}

func TestComparison(t *testing.T) {
	tests := []struct {
		code     string
		expected []uint8
	}{
		{"5 3 GTE", []uint8{1}},
		{"3 5 GTE", []uint8{0}},
		{"5 5 GTE", []uint8{1}},
		{"5 3 LTE", []uint8{0}},
		{"3 5 LTE", []uint8{1}},
		{"5 5 LTE", []uint8{1}},
		{"300 255 GTE", []uint8{1}},
		{"-1 0 LTE", []uint8{1}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			interp := runCairn(t, tt.code)
			assert.Equal(t, tt.expected, interp.Stack.Values())
		})
	}
}

func TestClear(t *testing.T) {
	interp := runCairn(t, "1 2 3 CLR")
	assert.Empty(t, interp.Stack.Values())

	// clearing an empty stack is not an error
	interp = runCairn(t, "CLR CLR")
	assert.Empty(t, interp.Stack.Values())
}

func TestUnderflowLeavesStack(t *testing.T) {
	for _, name := range []string{"ADD", "SUB", "MOD", "GTE", "LTE"} {
		t.Run(name, func(t *testing.T) {
			interp, errs := runCairnErrs(t, "9 "+name)
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], types.ErrStackUnderflow)
			assert.Equal(t, []uint8{9}, interp.Stack.Values())

			interp, errs = runCairnErrs(t, name)
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], types.ErrStackUnderflow)
			assert.Empty(t, interp.Stack.Values())
		})
	}
}

func TestModByZero(t *testing.T) {
	interp, errs := runCairnErrs(t, "1 5 0 MOD")
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], types.ErrDivisionByZero)
	assert.EqualError(t, errs[0], "MOD: division by zero")
	assert.Equal(t, []uint8{1, 5, 0}, interp.Stack.Values())

	// a clamped negative divisor is zero as well
	interp, errs = runCairnErrs(t, "5 -3 MOD")
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], types.ErrDivisionByZero)
	assert.Equal(t, []uint8{5, 0}, interp.Stack.Values())
}
