package lr1

import "github.com/gralex/gralex/internal/langcore/grammar"

// set is a worklist-maintained collection of items keyed by (rule, dot),
// merging lookaheads on collision per §3.
type set struct {
	byKey map[string]*item
	order []string
}

func newSet() *set {
	return &set{byKey: map[string]*item{}}
}

// ensure adds it, or unions its lookahead into the existing entry sharing
// its key. Returns true if anything changed (a new item, or new lookahead
// terminals merged into an existing one) — callers use this to decide
// whether to (re)schedule the item for further closure/goto processing.
func (s *set) ensure(it item) bool {
	existing, ok := s.byKey[it.key()]
	if !ok {
		cpy := item{rule: it.rule, dot: it.dot, lookahead: copyLookahead(it.lookahead)}
		s.byKey[it.key()] = &cpy
		s.order = append(s.order, it.key())
		return true
	}
	changed := false
	for t := range it.lookahead {
		if !existing.lookahead[t] {
			existing.lookahead[t] = true
			changed = true
		}
	}
	return changed
}

func (s *set) items() []item {
	out := make([]item, len(s.order))
	for i, k := range s.order {
		out[i] = *s.byKey[k]
	}
	return out
}

func copyLookahead(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for t := range m {
		out[t] = true
	}
	return out
}

// closure computes the closed item set reachable from seed, per §4.E:
// repeatedly, for every item `A → α . B β , L` with B a non-terminal, add
// `B → . γ , FIRST(βL)` for every production B → γ.
func closure(g *grammar.Grammar, firstSets map[string]map[string]bool, seed []item) ItemSet {
	s := newSet()
	var worklist []string
	for _, it := range seed {
		if s.ensure(it) {
			worklist = append(worklist, it.key())
		}
	}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		it := *s.byKey[key]

		sym, ok := it.atDot(g)
		if !ok || sym.Kind != grammar.NonTerminal {
			continue
		}
		beta := it.beyondDot(g)
		lookahead := grammar.FirstOfSequence(firstSets, beta, it.lookahead)

		for ruleIdx, r := range g.Rules {
			if r.Head.Kind != grammar.NonTerminal || r.Head.Name != sym.Name {
				continue
			}
			newIt := newItem(g, ruleIdx, lookahead)
			if s.ensure(newIt) {
				worklist = append(worklist, newIt.key())
			}
		}
	}

	return s.items()
}

// gotoKernel computes the (unclosed) kernel reached from items on symbol,
// per §4.E: `{ A → αX . β , L | A → α . Xβ , L ∈ items }`.
func gotoKernel(g *grammar.Grammar, items ItemSet, sym grammar.Symbol) []item {
	s := newSet()
	for _, it := range items {
		atDot, ok := it.atDot(g)
		if !ok || !atDot.Equal(sym) {
			continue
		}
		s.ensure(item{rule: it.rule, dot: it.dot + 1, lookahead: it.lookahead})
	}
	return s.items()
}
