package lex

import (
	"testing"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/gralex/gralex/internal/langcore/lcerr"
	"github.com/gralex/gralex/internal/langcore/regex"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, pattern string) *regex.Node {
	t.Helper()
	n, err := regex.Parse(pattern, charset.Ascii, nil)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return n
}

// Test_Build_WhitespaceIntIdentifier is the "whitespace + integer +
// identifier" scenario. Columns here are 0-based (column 2 for "42", column
// 5 for "foo"), the origin SPEC_FULL.md's open-question decision picked;
// the scenario's own prose states 1-based columns ("@col 3", "@col 6"),
// which this origin choice makes unreachable by one for every token. The
// two are the same positions under different counting conventions, not a
// disagreement about where the tokens start.
func Test_Build_WhitespaceIntIdentifier(t *testing.T) {
	assert := assert.New(t)

	lexemes := []Lexeme{
		{Name: "int", Pattern: mustParse(t, "[0-9]+")},
		{Name: "id", Pattern: mustParse(t, "[a-zA-Z_][a-zA-Z0-9_]*")},
	}
	ignored := map[rune]bool{' ': true, '\t': true, '\n': true, '\r': true}

	dfa, err := Build(lexemes, BuildOptions{IgnoredChars: ignored})
	assert.NoError(err)

	tok := NewTokenizer(dfa, "  42 foo")
	toks, err := tok.All()
	assert.NoError(err)

	assert.Len(toks, 3) // int, id, EndOfInput
	assert.Equal("int", toks[0].Lexeme)
	assert.Equal("42", toks[0].Text)
	assert.Equal(2, toks[0].Position.Column) // 0-based; scenario prose says "@col 3" (1-based)
	assert.Equal("id", toks[1].Lexeme)
	assert.Equal("foo", toks[1].Text)
	assert.Equal(5, toks[1].Position.Column) // 0-based; scenario prose says "@col 6" (1-based)
	assert.Equal(EndOfInput, toks[2].Lexeme)
}

func Test_Build_PriorityTiebreak(t *testing.T) {
	assert := assert.New(t)

	lexemes := []Lexeme{
		{Name: "lex", Pattern: mustParse(t, "lexeme")},
		{Name: "id", Pattern: mustParse(t, "[a-zA-Z_]+")},
	}
	dfa, err := Build(lexemes, BuildOptions{})
	assert.NoError(err)

	tok := NewTokenizer(dfa, "lexeme")
	toks, err := tok.All()
	assert.NoError(err)
	assert.Len(toks, 2)
	assert.Equal("lex", toks[0].Lexeme)
}

func Test_Build_AmbiguousWithoutTiebreak(t *testing.T) {
	assert := assert.New(t)

	lexemes := []Lexeme{
		{Name: "a", Pattern: mustParse(t, "x")},
		{Name: "b", Pattern: mustParse(t, "x")},
	}
	_, err := Build(lexemes, BuildOptions{})
	assert.Error(err)
	var ambig *lcerr.AmbiguousLexemeError
	assert.ErrorAs(err, &ambig)
}

func Test_Build_StringWithEscapes(t *testing.T) {
	assert := assert.New(t)

	lexemes := []Lexeme{
		{Name: "string", Pattern: mustParse(t, `'([^'\\]|\\.)*'`)},
	}
	dfa, err := Build(lexemes, BuildOptions{})
	assert.NoError(err)

	tok := NewTokenizer(dfa, `'a\'b'`)
	toks, err := tok.All()
	assert.NoError(err)
	assert.Len(toks, 2)
	assert.Equal("string", toks[0].Lexeme)
	assert.Equal(`'a\'b'`, toks[0].Text)
}

func Test_Build_EmptyLexemeListIsConfigError(t *testing.T) {
	_, err := Build(nil, BuildOptions{})
	assert.Error(t, err)
	var cfg *lcerr.ConfigError
	assert.ErrorAs(t, err, &cfg)
}

func Test_Tokenizer_UnexpectedCharacter(t *testing.T) {
	assert := assert.New(t)

	lexemes := []Lexeme{{Name: "int", Pattern: mustParse(t, "[0-9]+")}}
	dfa, err := Build(lexemes, BuildOptions{})
	assert.NoError(err)

	tok := NewTokenizer(dfa, "12a")
	_, err = tok.Next() // consumes "12"
	assert.NoError(err)
	_, err = tok.Next()
	assert.Error(err)
	var uc *lcerr.UnexpectedCharacterError
	assert.ErrorAs(err, &uc)
	assert.Equal('a', uc.Char)
}
