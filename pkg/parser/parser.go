// Package parser turns Cairn source text into atoms using a Participle lexer.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cairnLang/cairn/pkg/types"
)

// Cairn lexer definition. Rule order matters: a comment has to win over a
// lone slash. Every byte is matched by some rule.
var cairnLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[` + space + `]+`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Word", Pattern: `[^` + space + `/]+`},
})

// space is the unicode.IsSpace set; RE2's \s alone misses \v, U+0085 and the
// Unicode separators.
const space = `\s\x0b\x{85}\p{Z}`

var (
	wordType  = cairnLexer.Symbols()["Word"]
	slashType = cairnLexer.Symbols()["Slash"]
)

// Tokenise returns the uppercase tokens of a source string, with line
// comments removed.
func Tokenise(source string) ([]string, error) {
	lex, err := cairnLexer.LexString("", source)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	var (
		words []string
		cur   strings.Builder
		end   = -1
	)
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToUpper(cur.String()))
			cur.Reset()
		}
	}
	for _, t := range toks {
		if t.Type != wordType && t.Type != slashType {
			flush()
			continue
		}
		// The lexer splits on "/" so that "//" can start a comment anywhere;
		// pieces with no gap between them belong to the same token.
		if t.Pos.Offset != end {
			flush()
		}
		cur.WriteString(t.Value)
		end = t.Pos.Offset + len(t.Value)
	}
	flush()
	return words, nil
}

// Atomise returns a Literal if the token is a base-10 integer, otherwise a
// Symbol.
func Atomise(token string) types.Atom {
	// On ErrRange ParseInt saturates to the int range, which clamps on push
	// just the same.
	n, err := strconv.ParseInt(token, 10, 0)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return types.Literal(n)
	}
	return types.Symbol(token)
}

// AtomiseAll atomises every token in order.
func AtomiseAll(tokens []string) []types.Atom {
	atoms := make([]types.Atom, 0, len(tokens))
	for _, t := range tokens {
		atoms = append(atoms, Atomise(t))
	}
	return atoms
}

// Parse tokenises and atomises source text.
func Parse(source string) ([]types.Atom, error) {
	tokens, err := Tokenise(source)
	if err != nil {
		return nil, err
	}
	return AtomiseAll(tokens), nil
}
