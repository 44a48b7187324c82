package grammar

import (
	"sort"

	"github.com/gralex/gralex/internal/langcore/lcerr"
)

// AugmentedStart is the reserved head introduced by Augment, §4.D:
// "the grammar is augmented by introducing <augmented_start> ->
// StartSymbol so the LR(1) construction has a canonical termination
// production."
const AugmentedStart = "<augmented_start>"

// Grammar is an immutable (start, rules) pair plus its derived terminal and
// non-terminal sets, §3. Grammar values are built once via Builder and
// never mutated afterward, per the "builder vs. mutable structure" design
// note.
type Grammar struct {
	Start string
	Rules []Production

	nonTerminals map[string]bool
	terminals    map[string]bool
}

// NonTerminals returns every non-terminal name appearing as a rule head or
// within a rule body, sorted.
func (g *Grammar) NonTerminals() []string {
	return sortedKeys(g.nonTerminals)
}

// Terminals returns every terminal name appearing in a rule body, sorted.
func (g *Grammar) Terminals() []string {
	return sortedKeys(g.terminals)
}

// RulesFor returns every production headed by nonTerminal, in declaration
// order.
func (g *Grammar) RulesFor(nonTerminal string) []Production {
	var out []Production
	for _, r := range g.Rules {
		if r.Head.Kind == NonTerminal && r.Head.Name == nonTerminal {
			out = append(out, r)
		}
	}
	return out
}

// IsAugmented reports whether Augment has already been applied.
func (g *Grammar) IsAugmented() bool {
	return g.Start == AugmentedStart
}

// Augment returns a new Grammar with a fresh rule `<augmented_start> ->
// Start` prepended and Start repointed at AugmentedStart, per §4.D. It
// is a no-op (returning g unchanged) if g is already augmented.
func (g *Grammar) Augment() *Grammar {
	if g.IsAugmented() {
		return g
	}
	aug := Production{Head: NonTerm(AugmentedStart), Body: Sentence{NonTerm(g.Start)}}
	rules := make([]Production, 0, len(g.Rules)+1)
	rules = append(rules, aug)
	rules = append(rules, g.Rules...)

	return build(AugmentedStart, rules)
}

func build(start string, rules []Production) *Grammar {
	g := &Grammar{
		Start:        start,
		Rules:        rules,
		nonTerminals: map[string]bool{start: true},
		terminals:    map[string]bool{},
	}
	for _, r := range rules {
		if r.Head.Kind == NonTerminal {
			g.nonTerminals[r.Head.Name] = true
		}
		for _, sym := range r.Body {
			switch sym.Kind {
			case NonTerminal:
				g.nonTerminals[sym.Name] = true
			case Terminal:
				g.terminals[sym.Name] = true
			}
		}
	}
	return g
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate checks structural invariants §4.D requires post-expansion:
// no rule body contains a macro, every rule body has length ≥ 1, and epsilon
// appears only as the sole body symbol. It also reports a reference to a
// non-terminal with no productions.
func (g *Grammar) Validate() error {
	defined := map[string]bool{}
	for _, r := range g.Rules {
		if r.Head.Kind == NonTerminal {
			defined[r.Head.Name] = true
		}
	}
	for _, r := range g.Rules {
		if len(r.Body) == 0 {
			return &lcerr.GrammarError{Reason: "rule body must not be empty", Symbol: r.Head.Name}
		}
		if r.Body.HasMacro() {
			return &lcerr.GrammarError{Reason: "rule body still contains a macro after expansion", Symbol: r.Head.Name}
		}
		for i, sym := range r.Body {
			if sym.Kind == EpsilonSym && len(r.Body) != 1 {
				return &lcerr.GrammarError{Reason: "epsilon must be the sole symbol of its rule body", Symbol: r.Head.Name}
			}
			if sym.Kind == NonTerminal && !defined[sym.Name] {
				return &lcerr.GrammarError{Reason: "non-terminal has no productions", Symbol: sym.Name}
			}
			_ = i
		}
	}
	return nil
}
