package parser

import (
	"math"
	"testing"

	"github.com/cairnLang/cairn/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenise(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"empty", "", nil},
		{"blank", "  \t \n  ", nil},
		{"uppercase", "1 2 add", []string{"1", "2", "ADD"}},
		{"runs of whitespace", " 1\t\t2 \n\n add ", []string{"1", "2", "ADD"}},
		{"comment", "5 add // comment", []string{"5", "ADD"}},
		{"comment only", "// nothing here", nil},
		{"comment per line", "1 // a\n2 // b\n3", []string{"1", "2", "3"}},
		{"comment glued to word", "foo//bar baz", []string{"FOO"}},
		{"single slash", "a/b / c/", []string{"A/B", "/", "C/"}},
		{"triple slash", "x ///y\nz", []string{"X", "Z"}},
		{"slash then comment", "a/ //b", []string{"A/"}},
		{"vertical tab", "1\v2 ADD", []string{"1", "2", "ADD"}},
		{"form feed", "1\f2", []string{"1", "2"}},
		{"no-break space", "1\u00a02", []string{"1", "2"}},
		{"em space", "1\u20032", []string{"1", "2"}},
		{"next line", "1\u00852", []string{"1", "2"}},
		{"line separator", "a\u2028b", []string{"A", "B"}},
		{"unicode spaces only", "\u00a0\v\u3000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenise(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAtomise(t *testing.T) {
	tests := []struct {
		token string
		want  types.Atom
	}{
		{"0", types.Literal(0)},
		{"42", types.Literal(42)},
		{"300", types.Literal(300)},
		{"-5", types.Literal(-5)},
		{"+7", types.Literal(7)},
		{"99999999999999999999999", types.Literal(math.MaxInt)},
		{"-99999999999999999999999", types.Literal(math.MinInt)},
		{"ADD", types.Symbol("ADD")},
		{"5ABC", types.Symbol("5ABC")},
		{"-", types.Symbol("-")},
		{"1.5", types.Symbol("1.5")},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Atomise(tt.token))
		})
	}
}

func TestParse(t *testing.T) {
	atoms, err := Parse("5 ADD // comment\n3 SUB")
	require.NoError(t, err)
	assert.Equal(t, []types.Atom{
		types.Literal(5),
		types.Symbol("ADD"),
		types.Literal(3),
		types.Symbol("SUB"),
	}, atoms)

	atoms, err = Parse("def double 2 mul end")
	require.NoError(t, err)
	assert.Equal(t, []types.Atom{
		types.Symbol("DEF"),
		types.Symbol("DOUBLE"),
		types.Literal(2),
		types.Symbol("MUL"),
		types.Symbol("END"),
	}, atoms)

	atoms, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, atoms)
}
