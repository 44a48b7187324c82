// Package cst implements §4.G: the concrete syntax tree produced by a
// parse. Per the "CST arena/index model" design note, nodes live in a flat
// slice owned by the Tree and reference each other by index rather than by
// pointer — a pointer-and-Children-slice parse tree shape cannot express a
// safe parent back-reference (a child holding a pointer to its own parent is
// a reference cycle a garbage collector merely tolerates, not a deliberate
// structure); an arena index is a plain int, trivially copyable and safe to
// store in both directions.
package cst

import (
	"fmt"
	"strings"

	"github.com/gralex/gralex/internal/langcore/lex"
)

// Kind tags the variant of a Node: Root (the sole parentless node),
// Internal (any other reduction), or Leaf (a consumed token).
type Kind int

const (
	Root Kind = iota
	Internal
	Leaf
)

func (k Kind) String() string {
	switch k {
	case Root:
		return "Root"
	case Internal:
		return "Internal"
	case Leaf:
		return "Leaf"
	default:
		return "?"
	}
}

// NoParent marks a node with no parent (only the Root has this).
const NoParent = -1

// Node is one arena entry. For Root/Internal, Symbol is the production's
// head name, Rule is its index in the grammar's rule list, and Children
// holds child indices in source order. For Leaf, Symbol is the lexeme name
// and Token carries the consumed text and position. Properties is a
// free-form map available to callers that want to attach derived data (e.g.
// an attribute-grammar evaluator) without the arena itself needing to know
// about it.
type Node struct {
	Kind       Kind
	Symbol     string
	Rule       int
	Token      lex.Token
	Children   []int
	Parent     int
	Properties map[string]any
}

// Tree is the arena: every node reachable from Root, addressed by index.
type Tree struct {
	nodes []Node
	root  int
}

// New returns an empty Tree. Root is set once AddRoot is called.
func New() *Tree {
	return &Tree{root: NoParent}
}

func (t *Tree) append(n Node) int {
	n.Parent = NoParent
	idx := len(t.nodes)
	t.nodes = append(t.nodes, n)
	return idx
}

// AddLeaf appends a Leaf node for tok and returns its index.
func (t *Tree) AddLeaf(tok lex.Token) int {
	return t.append(Node{Kind: Leaf, Symbol: tok.Lexeme, Rule: -1, Token: tok})
}

// AddInternal appends an Internal node for a reduction of rule headed by
// head, over the given children (already-built indices, in source order),
// and returns its index. Every child's Parent is set to the new index.
func (t *Tree) AddInternal(head string, rule int, children []int) int {
	idx := t.append(Node{Kind: Internal, Symbol: head, Rule: rule, Children: children})
	t.linkChildren(idx, children)
	return idx
}

// AddRoot appends the Root node (the topmost reduction of the start symbol,
// the last one before Accept) and records it as the tree's root. A Tree has exactly one root, created
// once per parse.
func (t *Tree) AddRoot(head string, rule int, children []int) int {
	idx := t.append(Node{Kind: Root, Symbol: head, Rule: rule, Children: children})
	t.linkChildren(idx, children)
	t.root = idx
	return idx
}

func (t *Tree) linkChildren(parent int, children []int) {
	for _, c := range children {
		t.nodes[c].Parent = parent
	}
}

// Root returns the tree's root node and true, or (nil, false) if AddRoot has
// never been called (an empty Tree is not a valid parse result - a caller
// seeing false here should treat it as a diagnosable build failure, not
// index blindly).
func (t *Tree) Root() (*Node, bool) {
	if t.root == NoParent {
		return nil, false
	}
	return &t.nodes[t.root], true
}

// RootIndex returns the root's arena index.
func (t *Tree) RootIndex() int { return t.root }

// Node returns the node at idx.
func (t *Tree) Node(idx int) *Node {
	return &t.nodes[idx]
}

// NumNodes returns the total number of nodes in the arena.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Parent returns the parent of idx, or (0, false) if idx is the root.
func (t *Tree) Parent(idx int) (int, bool) {
	p := t.nodes[idx].Parent
	if p == NoParent {
		return 0, false
	}
	return p, true
}

// AscendToRoot returns the path of indices from idx up to and including the
// root.
func (t *Tree) AscendToRoot(idx int) []int {
	path := []int{idx}
	for {
		p, ok := t.Parent(idx)
		if !ok {
			return path
		}
		path = append(path, p)
		idx = p
	}
}

// Leaves returns every Leaf node index reachable from root, in source
// (left-to-right) order. Returns nil if no root has been set yet.
func (t *Tree) Leaves() []int {
	if t.root == NoParent {
		return nil
	}
	var out []int
	t.walk(t.root, func(idx int) {
		if t.nodes[idx].Kind == Leaf {
			out = append(out, idx)
		}
	})
	return out
}

// CollectNodes returns every node index reachable from root for which pred
// returns true, in a pre-order (parent before children) walk. Returns nil if
// no root has been set yet.
func (t *Tree) CollectNodes(pred func(*Node) bool) []int {
	if t.root == NoParent {
		return nil
	}
	var out []int
	t.walk(t.root, func(idx int) {
		if pred(&t.nodes[idx]) {
			out = append(out, idx)
		}
	})
	return out
}

func (t *Tree) walk(idx int, visit func(int)) {
	visit(idx)
	for _, c := range t.nodes[idx].Children {
		t.walk(c, visit)
	}
}

// Text concatenates the Token.Text of every leaf under root, in source
// order. §8's "CST fidelity" property: this equals the non-ignored
// substring of the original input.
func (t *Tree) Text() string {
	var sb strings.Builder
	for _, idx := range t.Leaves() {
		sb.WriteString(t.nodes[idx].Token.Text)
	}
	return sb.String()
}

// AsToken returns n's token and true if n is a Leaf, else the zero token and
// false.
func (n *Node) AsToken() (lex.Token, bool) {
	if n.Kind != Leaf {
		return lex.Token{}, false
	}
	return n.Token, true
}

func (t *Tree) String() string {
	if t.root == NoParent {
		return "<empty tree>"
	}
	var sb strings.Builder
	t.render(&sb, t.root, "", "")
	return sb.String()
}

func (t *Tree) render(sb *strings.Builder, idx int, firstPrefix, contPrefix string) {
	n := t.nodes[idx]
	sb.WriteString(firstPrefix)
	if n.Kind == Leaf {
		fmt.Fprintf(sb, "(%s %q)", n.Symbol, n.Token.Text)
	} else {
		fmt.Fprintf(sb, "( %s )", n.Symbol)
	}
	for i, c := range n.Children {
		sb.WriteRune('\n')
		if i+1 < len(n.Children) {
			t.render(sb, c, contPrefix+"  |-: ", contPrefix+"  |   ")
		} else {
			t.render(sb, c, contPrefix+`  \-: `, contPrefix+"      ")
		}
	}
}
