package grammar

// FirstSets computes FIRST(X) for every non-terminal X in g as a fixed
// point over the rule set (handles left recursion safely; a naive recursion
// over rule bodies loops forever on a left-recursive grammar, so that
// simpler approach is not reused directly here — see DESIGN.md). The empty
// string "" is used as the member denoting
// epsilon (X is nullable).
func FirstSets(g *Grammar) map[string]map[string]bool {
	sets := map[string]map[string]bool{}
	for _, nt := range g.NonTerminals() {
		sets[nt] = map[string]bool{}
	}

	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules {
			if r.Head.Kind != NonTerminal {
				continue
			}
			dst := sets[r.Head.Name]
			before := len(dst)
			addFirstOfBody(sets, r.Body, dst)
			if len(dst) != before {
				changed = true
			}
		}
	}
	return sets
}

func addFirstOfBody(sets map[string]map[string]bool, body Sentence, dst map[string]bool) {
	for _, sym := range body {
		switch sym.Kind {
		case Terminal:
			dst[sym.Name] = true
			return
		case EOISym:
			dst[EOIName] = true
			return
		case EpsilonSym:
			dst[""] = true
			return
		case NonTerminal:
			nullable := false
			for t := range sets[sym.Name] {
				if t == "" {
					nullable = true
					continue
				}
				dst[t] = true
			}
			if !nullable {
				return
			}
		default:
			return
		}
	}
	dst[""] = true
}

// FirstOfSequence computes FIRST(seq · tail) per §4.E's closure rule:
// "scan symbols of βL left to right; for each terminal add it and stop; for
// each non-terminal add its FIRST set; if it is nullable ... continue to the
// next symbol; if all symbols consumed, add L." sets is the precomputed
// FIRST table from FirstSets; tail is the lookahead set L (already resolved
// terminal/EOI names, no epsilon member).
func FirstOfSequence(sets map[string]map[string]bool, seq Sentence, tail map[string]bool) map[string]bool {
	result := map[string]bool{}
	for _, sym := range seq {
		switch sym.Kind {
		case Terminal:
			result[sym.Name] = true
			return result
		case EOISym:
			result[EOIName] = true
			return result
		case EpsilonSym:
			continue
		case NonTerminal:
			nullable := false
			for t := range sets[sym.Name] {
				if t == "" {
					nullable = true
					continue
				}
				result[t] = true
			}
			if !nullable {
				return result
			}
		default:
			return result
		}
	}
	for t := range tail {
		result[t] = true
	}
	return result
}
