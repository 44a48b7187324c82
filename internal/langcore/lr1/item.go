// Package lr1 implements §4.E: canonical LR(1) item-set construction
// and parse-table generation. It is grounded on the conventional
// LR0Item/LR1Item shape (production + dot position + lookahead), but
// departs from the textbook rendition deliberately: a one-LR1Item-per-
// lookahead-terminal encoding needs a separate core/full-item distinction to
// paper over that explosion when comparing states, where §3 instead
// requires "items sharing production and position are merged by unioning
// lookahead-sets" — so here an Item carries a lookahead *set* directly and
// no separate core/full-item distinction is needed.
package lr1

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gralex/gralex/internal/langcore/grammar"
)

// item is one LR(1) item: a rule index into the grammar's augmented,
// macro-free rule list, a dot position, and a lookahead set. Epsilon-rule
// items are normalized to dot == len(body) immediately upon creation (spec
// §4.E: "epsilon rules ... are recognized by body = [ε] and treated as
// length-0 reductions"), so dot-at-end is the single uniform signal for
// "this item reduces" throughout the package.
type item struct {
	rule      int
	dot       int
	lookahead map[string]bool
}

func newItem(g *grammar.Grammar, rule int, lookahead map[string]bool) item {
	dot := 0
	if g.Rules[rule].Body.IsEpsilon() {
		dot = 1
	}
	return item{rule: rule, dot: dot, lookahead: lookahead}
}

// atDot returns the symbol immediately after the dot, or false if the dot
// is at the end of the body (a completed item).
func (it item) atDot(g *grammar.Grammar) (grammar.Symbol, bool) {
	body := g.Rules[it.rule].Body
	if it.dot >= len(body) {
		return grammar.Symbol{}, false
	}
	return body[it.dot], true
}

// beyondDot returns the symbols of the body strictly after the one under
// the dot (β in "A → α . X β").
func (it item) beyondDot(g *grammar.Grammar) grammar.Sentence {
	body := g.Rules[it.rule].Body
	if it.dot+1 >= len(body) {
		return nil
	}
	return body[it.dot+1:]
}

func (it item) key() string {
	return fmt.Sprintf("%d.%d", it.rule, it.dot)
}

func (it item) String() string {
	return fmt.Sprintf("%s [%s]", it.key(), strings.Join(sortedLookahead(it.lookahead), "/"))
}

func sortedLookahead(la map[string]bool) []string {
	out := make([]string, 0, len(la))
	for t := range la {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ItemSet is a closed set of items, in the order they were discovered.
type ItemSet []item

// signature is the kernel-identity string §3 describes: "production
// identity + dot position + sorted lookaheads, joined across kernel items."
func signature(items []item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%d.%d:%s", it.rule, it.dot, strings.Join(sortedLookahead(it.lookahead), ","))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func symbolKey(sym grammar.Symbol) string {
	switch sym.Kind {
	case grammar.Terminal, grammar.NonTerminal:
		return sym.Name
	case grammar.EOISym:
		return grammar.EOIName
	default:
		return sym.String()
	}
}
