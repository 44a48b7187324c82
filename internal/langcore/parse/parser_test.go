package parse

import (
	"testing"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/gralex/gralex/internal/langcore/cst"
	"github.com/gralex/gralex/internal/langcore/grammar"
	"github.com/gralex/gralex/internal/langcore/lcerr"
	"github.com/gralex/gralex/internal/langcore/lex"
	"github.com/gralex/gralex/internal/langcore/lr1"
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

// buildExprParser wires an "id + id" lexer/grammar/table together, the same
// classic expression grammar lr1.Build is tested against.
func buildExprParser(t *testing.T) *Parser {
	t.Helper()

	lexemes := []lex.Lexeme{
		{Name: "+", Pattern: mustParse(t, `\+`)},
		{Name: "id", Pattern: mustParse(t, "[a-zA-Z_][a-zA-Z0-9_]*")},
		{Name: "comment", Pattern: mustParse(t, `#[^\n]*`)},
	}
	ignored := map[rune]bool{' ': true, '\t': true, '\n': true, '\r': true}
	dfa, err := lex.Build(lexemes, lex.BuildOptions{IgnoredChars: ignored})
	if err != nil {
		t.Fatalf("build dfa: %v", err)
	}

	g, err := grammar.NewBuilder("E").
		AddRule("E", grammar.NonTerm("E"), grammar.Term("+"), grammar.NonTerm("T")).
		AddRule("E", grammar.NonTerm("T")).
		AddRule("T", grammar.Term("id")).
		Build()
	if err != nil {
		t.Fatalf("build grammar: %v", err)
	}

	tbl, err := lr1.Build(g.Augment())
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	return New(tbl, dfa)
}

func Test_Parse_SimpleExpression(t *testing.T) {
	assert := assert.New(t)

	p := buildExprParser(t)
	tree, err := p.Parse("a + b + c")
	assert.NoError(err)
	assert.Equal("a+b+c", tree.Text())
	root, ok := tree.Root()
	assert.True(ok)
	assert.Equal("E", root.Symbol)

	leaves := tree.Leaves()
	assert.Len(leaves, 5)
	assert.Equal("id", tree.Node(leaves[0]).Symbol)
	assert.Equal("+", tree.Node(leaves[1]).Symbol)
}

// Test_Parse_LeftRecursiveStartSetsRootOnce guards against identifying the
// root reduction by symbol name alone: E recurs on itself (E -> E + T), so a
// naive "rule.Head.Name == start" check fires on every E reduction, not just
// the last one, leaving earlier E nodes mistagged as Root despite having a
// parent.
func Test_Parse_LeftRecursiveStartSetsRootOnce(t *testing.T) {
	assert := assert.New(t)

	p := buildExprParser(t)
	tree, err := p.Parse("a + b + c")
	assert.NoError(err)

	roots := tree.CollectNodes(func(n *cst.Node) bool { return n.Kind == cst.Root })
	assert.Len(roots, 1)

	root, ok := tree.Root()
	assert.True(ok)
	_, hasParent := tree.Parent(tree.RootIndex())
	assert.False(hasParent)
	assert.Equal("E", root.Symbol)
}

func Test_Parse_SkipsIgnoredComments(t *testing.T) {
	assert := assert.New(t)

	p := buildExprParser(t)
	tree, err := p.Parse("a # a trailing remark\n+ b")
	assert.NoError(err)
	assert.Equal("a+b", tree.Text())
}

func Test_Parse_CustomIgnoredTokensIsRespected(t *testing.T) {
	assert := assert.New(t)

	p := buildExprParser(t)
	p.SetIgnoredTokens() // no tokens ignored; "comment" lexemes now fail to parse

	_, err := p.Parse("a # oops")
	assert.Error(err)
	var perr *lcerr.ParseError
	assert.ErrorAs(err, &perr)
}

func Test_Parse_NoActionIsParseError(t *testing.T) {
	assert := assert.New(t)

	p := buildExprParser(t)
	_, err := p.Parse("a +")
	assert.Error(err)
	var perr *lcerr.ParseError
	assert.ErrorAs(err, &perr)
}

func Test_Parse_TraceIsInvokedWhenRegistered(t *testing.T) {
	assert := assert.New(t)

	p := buildExprParser(t)
	var lines []string
	p.OnTrace = func(s string) { lines = append(lines, s) }

	_, err := p.Parse("a + b")
	assert.NoError(err)
	assert.NotEmpty(lines)
}
