package gralex

import (
	"testing"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/gralex/gralex/internal/langcore/grammar"
	"github.com/gralex/gralex/internal/langcore/lex"
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

func exprSpec(t *testing.T) Spec {
	t.Helper()

	g, err := grammar.NewBuilder("E").
		AddRule("E", grammar.NonTerm("E"), grammar.Term("+"), grammar.NonTerm("T")).
		AddRule("E", grammar.NonTerm("T")).
		AddRule("T", grammar.Term("id")).
		Build()
	if err != nil {
		t.Fatalf("build grammar: %v", err)
	}

	return Spec{
		Lexemes: []lex.Lexeme{
			{Name: "+", Pattern: mustParse(t, `\+`)},
			{Name: "id", Pattern: mustParse(t, "[a-zA-Z_][a-zA-Z0-9_]*")},
		},
		IgnoredChars: map[rune]bool{' ': true, '\t': true, '\n': true},
		Grammar:      g,
	}
}

func Test_NewBuild_ParsesExpression(t *testing.T) {
	assert := assert.New(t)

	b, err := NewBuild(exprSpec(t))
	assert.NoError(err)
	assert.NotEqual("", b.ID.String())

	tree, err := b.Parse("a + b + c")
	assert.NoError(err)
	assert.Equal("a+b+c", tree.Text())
}

func Test_NewBuild_MissingGrammarIsConfigError(t *testing.T) {
	_, err := NewBuild(Spec{})
	assert.Error(t, err)
}

func Test_Registry_KeepsBuildsSeparate(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()

	_, err := reg.Register("expr", exprSpec(t))
	assert.NoError(err)

	otherSpec := exprSpec(t)
	otherSpec.Grammar, _ = grammar.NewBuilder("T").
		AddRule("T", grammar.Term("id")).
		Build()
	otherSpec.Lexemes = []lex.Lexeme{{Name: "id", Pattern: mustParse(t, "[a-zA-Z_][a-zA-Z0-9_]*")}}
	_, err = reg.Register("bare-id", otherSpec)
	assert.NoError(err)

	names := reg.Names()
	assert.ElementsMatch([]string{"expr", "bare-id"}, names)

	exprBuild, ok := reg.Get("expr")
	assert.True(ok)
	idBuild, ok := reg.Get("bare-id")
	assert.True(ok)
	assert.NotEqual(exprBuild.ID, idBuild.ID)

	tree, err := reg.Parse("bare-id", "foo")
	assert.NoError(err)
	assert.Equal("foo", tree.Text())

	_, err = reg.Parse("nonexistent", "foo")
	assert.Error(err)
}
