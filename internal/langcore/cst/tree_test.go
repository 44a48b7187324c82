package cst

import (
	"testing"

	"github.com/gralex/gralex/internal/langcore/lex"
	"github.com/stretchr/testify/assert"
)

func tok(name, text string) lex.Token {
	return lex.Token{Lexeme: name, Text: text}
}

func Test_Tree_BuildsExpressionShape(t *testing.T) {
	assert := assert.New(t)

	tree := New()

	a := tree.AddLeaf(tok("id", "a"))
	tRoot1 := tree.AddInternal("T", 2, []int{a})
	eRoot1 := tree.AddInternal("E", 1, []int{tRoot1})

	plus := tree.AddLeaf(tok("+", "+"))
	b := tree.AddLeaf(tok("id", "b"))
	tRoot2 := tree.AddInternal("T", 2, []int{b})

	root := tree.AddRoot("E", 0, []int{eRoot1, plus, tRoot2})

	assert.Equal(root, tree.RootIndex())
	rootNode, ok := tree.Root()
	assert.True(ok)
	assert.Equal(Root, rootNode.Kind)
	assert.Equal("E", rootNode.Symbol)
	assert.Equal("a+b", tree.Text())

	leaves := tree.Leaves()
	assert.Len(leaves, 3)
	assert.Equal(a, leaves[0])
	assert.Equal(plus, leaves[1])
	assert.Equal(b, leaves[2])
}

func Test_Tree_ParentAndAscend(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	leaf := tree.AddLeaf(tok("id", "a"))
	mid := tree.AddInternal("T", 0, []int{leaf})
	root := tree.AddRoot("E", 1, []int{mid})

	_, ok := tree.Parent(root)
	assert.False(ok)

	p, ok := tree.Parent(leaf)
	assert.True(ok)
	assert.Equal(mid, p)

	path := tree.AscendToRoot(leaf)
	assert.Equal([]int{leaf, mid, root}, path)
}

func Test_Tree_CollectNodes(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	a := tree.AddLeaf(tok("id", "a"))
	b := tree.AddLeaf(tok("id", "b"))
	tree.AddRoot("E", 0, []int{a, b})

	idLeaves := tree.CollectNodes(func(n *Node) bool {
		return n.Kind == Leaf && n.Symbol == "id"
	})
	assert.Len(idLeaves, 2)
}

func Test_Tree_AsToken(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	leaf := tree.AddLeaf(tok("id", "a"))
	tree.AddRoot("E", 0, []int{leaf})

	leafTok, ok := tree.Node(leaf).AsToken()
	assert.True(ok)
	assert.Equal("a", leafTok.Text)

	rootNode, ok := tree.Root()
	assert.True(ok)
	_, ok = rootNode.AsToken()
	assert.False(ok)
}

func Test_Tree_NoRootIsDiagnosable(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	_, ok := tree.Root()
	assert.False(ok)
	assert.Nil(tree.Leaves())
	assert.Nil(tree.CollectNodes(func(n *Node) bool { return true }))
	assert.Equal("", tree.Text())
	assert.Equal("<empty tree>", tree.String())
}

func Test_Tree_String(t *testing.T) {
	assert := assert.New(t)

	tree := New()
	a := tree.AddLeaf(tok("id", "a"))
	tree.AddRoot("E", 0, []int{a})

	s := tree.String()
	assert.Contains(s, "E")
	assert.Contains(s, `"a"`)
}
