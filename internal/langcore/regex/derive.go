package regex

// Derive computes the Brzozowski derivative of n with respect to c: the
// regex matching exactly the strings w such that c·w ∈ L(n). The result is
// passed through Simplify before being returned, per §4.A ("After each
// derive the engine applies simplify"), so callers never need to simplify
// themselves.
//
// tr may be nil; when non-nil every derive and the simplify pass it triggers
// are recorded to it.
func Derive(n *Node, c rune, tr *Tracer) *Node {
	raw := deriveRaw(n, c, tr)
	result := Simplify(raw, tr)
	tr.recordDerive(n, c, result)
	return result
}

func deriveRaw(n *Node, c rune, tr *Tracer) *Node {
	switch n.Kind {
	case Epsilon, EmptySet:
		// δ_c(ε) = ∅, δ_c(∅) = ∅
		return Empty()
	case Literal:
		if n.Char == c {
			return Eps()
		}
		return Empty()
	case CharClass:
		if n.resolvedContains(c) {
			return Eps()
		}
		return Empty()
	case AnyChar:
		if n.Charset.Contains(c) {
			return Eps()
		}
		return Empty()
	case Union:
		// δ_c(L ∪ R) = δ_c(L) ∪ δ_c(R)
		return Alt(Derive(n.Left, c, tr), Derive(n.Right, c, tr))
	case Concat:
		// δ_c(L·R) = δ_c(L)·R if L not nullable,
		//            else (δ_c(L)·R) ∪ δ_c(R)
		left := Cat(Derive(n.Left, c, tr), n.Right)
		if !Nullable(n.Left) {
			return left
		}
		return Alt(left, Derive(n.Right, c, tr))
	case Star:
		// δ_c(L*) = δ_c(L)·L*, collapsed to ∅ when δ_c(L) = ∅
		dl := Derive(n.Left, c, tr)
		if dl.Kind == EmptySet {
			return Empty()
		}
		return Cat(dl, n)
	default:
		panic("regex: unhandled kind in Derive")
	}
}

// DeriveString threads Derive across every rune of s in order, returning the
// final node. A nil intermediate tracer is not supported per-step; pass tr
// through if per-character traces are wanted.
func DeriveString(n *Node, s string, tr *Tracer) *Node {
	cur := n
	for _, c := range s {
		cur = Derive(cur, c, tr)
	}
	return cur
}

// Matches reports whether s is in the language of n. This is the reference
// semantics used by the soundness tests in §8 ("Derivative soundness",
// "Simplification preserves language"): match by repeated derivation and a
// final nullable check.
func Matches(n *Node, s string) bool {
	return Nullable(DeriveString(n, s, nil))
}
