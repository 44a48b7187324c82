package regex

// Simplify applies the idempotent rewrite rules of §4.A:
//
//	∅ ∪ x ⇒ x         x ∪ ∅ ⇒ x         x ∪ x ⇒ x   (syntactic equality only)
//	∅·x ⇒ ∅           x·∅ ⇒ ∅           ε·x ⇒ x     x·ε ⇒ x
//	∅* ⇒ ε            ε* ⇒ ε            (x*)* ⇒ x*
//
// It deliberately does NOT drop a Union branch just because one side is ε
// and the other merely nullable (e.g. `a | a b*` keeps both alternatives) —
// doing so would silently remove accepting branches.
// tr may be nil.
func Simplify(n *Node, tr *Tracer) *Node {
	if n == nil {
		return nil
	}

	var result *Node
	switch n.Kind {
	case Epsilon, EmptySet, Literal, CharClass, AnyChar:
		result = n

	case Union:
		l := Simplify(n.Left, tr)
		r := Simplify(n.Right, tr)
		switch {
		case l.Kind == EmptySet:
			result = r
		case r.Kind == EmptySet:
			result = l
		case l.Equal(r):
			result = l
		default:
			result = Alt(l, r)
		}

	case Concat:
		l := Simplify(n.Left, tr)
		r := Simplify(n.Right, tr)
		switch {
		case l.Kind == EmptySet || r.Kind == EmptySet:
			result = Empty()
		case l.Kind == Epsilon:
			result = r
		case r.Kind == Epsilon:
			result = l
		default:
			result = Cat(l, r)
		}

	case Star:
		inner := Simplify(n.Left, tr)
		switch {
		case inner.Kind == EmptySet:
			result = Eps()
		case inner.Kind == Epsilon:
			result = Eps()
		case inner.Kind == Star:
			// (x*)* ⇒ x*
			result = inner
		default:
			result = Rep(inner)
		}

	default:
		panic("regex: unhandled kind in Simplify")
	}

	tr.recordSimplify(n, result)
	return result
}
