// Package regex implements the regex AST and Brzozowski derivative engine of
// §4.A: a tagged-union node type, a nullable predicate that is a pure
// function of structure, derivation, and simplification. It is modeled as a
// single struct carrying a Kind tag with per-kind fields rather than an
// interface hierarchy, per the "polymorphic symbols and nodes" design note —
// capability lives in the tag, dispatch is a type switch on Kind.
package regex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gralex/gralex/internal/langcore/charset"
)

// Kind tags the variant of a Node.
type Kind int

const (
	Epsilon Kind = iota
	EmptySet
	Literal
	CharClass
	AnyChar
	Union
	Concat
	Star
)

func (k Kind) String() string {
	switch k {
	case Epsilon:
		return "Epsilon"
	case EmptySet:
		return "EmptySet"
	case Literal:
		return "Literal"
	case CharClass:
		return "CharClass"
	case AnyChar:
		return "AnyChar"
	case Union:
		return "Union"
	case Concat:
		return "Concat"
	case Star:
		return "Star"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ClassRange is a single inclusive range within a CharClass; a literal member
// is represented as Lo == Hi.
type ClassRange struct {
	Lo, Hi rune
}

func (r ClassRange) contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

func (r ClassRange) String() string {
	if r.Lo == r.Hi {
		return string(r.Lo)
	}
	return fmt.Sprintf("%c-%c", r.Lo, r.Hi)
}

// Node is a regex AST node. Exactly one set of fields is meaningful for any
// given Kind:
//
//	Epsilon, EmptySet  - no fields
//	Literal            - Char
//	CharClass          - Charset, Negated, Members
//	AnyChar            - Charset
//	Union, Concat      - Left, Right
//	Star               - Left
type Node struct {
	Kind    Kind
	Char    rune
	Charset charset.Charset
	Negated bool
	Members []ClassRange
	Left    *Node
	Right   *Node
}

// Eps returns the node matching only the empty string.
func Eps() *Node { return &Node{Kind: Epsilon} }

// Empty returns the node matching no string at all.
func Empty() *Node { return &Node{Kind: EmptySet} }

// Lit returns the node matching exactly the single character c.
func Lit(c rune) *Node { return &Node{Kind: Literal, Char: c} }

// Class returns a character class over the given charset, inverted if
// negated is true, accepting any character in members (subject to
// negation).
func Class(cs charset.Charset, negated bool, members ...ClassRange) *Node {
	return &Node{Kind: CharClass, Charset: cs, Negated: negated, Members: members}
}

// Any returns the node matching any single character of cs.
func Any(cs charset.Charset) *Node {
	return &Node{Kind: AnyChar, Charset: cs}
}

// Alt returns the union l | r.
func Alt(l, r *Node) *Node { return &Node{Kind: Union, Left: l, Right: r} }

// AltAll folds Alt over zero or more nodes, left to right. Zero nodes
// returns Empty() (the identity of union).
func AltAll(ns ...*Node) *Node {
	if len(ns) == 0 {
		return Empty()
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		acc = Alt(acc, n)
	}
	return acc
}

// Cat returns the concatenation l·r.
func Cat(l, r *Node) *Node { return &Node{Kind: Concat, Left: l, Right: r} }

// CatAll folds Cat over zero or more nodes, left to right. Zero nodes
// returns Eps() (the identity of concatenation).
func CatAll(ns ...*Node) *Node {
	if len(ns) == 0 {
		return Eps()
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		acc = Cat(acc, n)
	}
	return acc
}

// Rep returns the Kleene star n*.
func Rep(n *Node) *Node { return &Node{Kind: Star, Left: n} }

// Nullable is a pure function of structure (§3): it does not consult
// any external alphabet or charset, only the node's own shape.
func Nullable(n *Node) bool {
	switch n.Kind {
	case Epsilon:
		return true
	case EmptySet, Literal, CharClass, AnyChar:
		return false
	case Union:
		return Nullable(n.Left) || Nullable(n.Right)
	case Concat:
		return Nullable(n.Left) && Nullable(n.Right)
	case Star:
		return true
	default:
		panic(fmt.Sprintf("regex: unhandled kind %v in Nullable", n.Kind))
	}
}

// resolvedContains accounts for CharClass negation against its bound
// charset, per §4.A: "ε if c ∈ resolved-charset (accounting for
// negation), else ∅".
func (n *Node) resolvedContains(c rune) bool {
	in := false
	for _, m := range n.Members {
		if m.contains(c) {
			in = true
			break
		}
	}
	if n.Negated {
		return n.Charset.Contains(c) && !in
	}
	return in
}

// Equal is syntactic (structural) equality, used by Simplify's "x ∪ x ⇒ x"
// and "x == x" rewrites, which are deliberately restricted to syntactic
// equality rather than semantic/nullable equivalence (see SPEC_FULL.md open
// question on simplification aggressiveness).
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case Epsilon, EmptySet:
		return true
	case Literal:
		return n.Char == o.Char
	case AnyChar:
		return n.Charset == o.Charset
	case CharClass:
		if n.Charset != o.Charset || n.Negated != o.Negated || len(n.Members) != len(o.Members) {
			return false
		}
		for i := range n.Members {
			if n.Members[i] != o.Members[i] {
				return false
			}
		}
		return true
	case Union, Concat:
		return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
	case Star:
		return n.Left.Equal(o.Left)
	default:
		return false
	}
}

// String renders n using a small Lisp-ish notation, useful for test failure
// messages and derivation traces; it is not a parseable surface syntax.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case Epsilon:
		return "ε"
	case EmptySet:
		return "∅"
	case Literal:
		return fmt.Sprintf("%q", n.Char)
	case AnyChar:
		return fmt.Sprintf(".[%s]", n.Charset)
	case CharClass:
		var sb strings.Builder
		sb.WriteRune('[')
		if n.Negated {
			sb.WriteRune('^')
		}
		members := make([]string, len(n.Members))
		for i, m := range n.Members {
			members[i] = m.String()
		}
		sort.Strings(members)
		sb.WriteString(strings.Join(members, ""))
		sb.WriteRune(']')
		return sb.String()
	case Union:
		return fmt.Sprintf("(%s|%s)", n.Left, n.Right)
	case Concat:
		return fmt.Sprintf("(%s·%s)", n.Left, n.Right)
	case Star:
		return fmt.Sprintf("(%s)*", n.Left)
	default:
		return "<invalid>"
	}
}
