// Package automaton provides the generic deterministic-state-graph
// container shared by the lexeme DFA (§4.B) and the LR(1)
// viable-prefix automaton (§4.E). It is adapted from a single-type-parameter
// generic DFA container, generalized here with a second type parameter for
// the transition label: the lexeme DFA transitions on runes, the LR(1)
// automaton transitions on grammar symbol names, where a string-only
// transition encoding would otherwise need to stringify characters —
// carrying a real label type instead avoids that indirection.
//
// Thompson NFA construction has no caller here: §4.B builds DFA states
// directly from Brzozowski derivative tuples, never materializing an NFA, so
// the generic NFA/epsilon-closure machinery a McNaughton-Yamada-Thompson
// construction would need has nothing left to do and was not ported (see
// DESIGN.md).
package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// State is one node of a DFA: an opaque small-integer ID, an attached value
// of type E (e.g. a lexeme-derivative tuple, or an LR(1) item set), whether
// it is an accepting state, and its outgoing transitions keyed by label K.
type State[K comparable, E any] struct {
	ID        int
	Value     E
	Accepting bool
	Trans     map[K]int
}

// DFA is a deterministic state graph: labels of type K, values of type E.
// States are addressed by small integer id, per §4.B's "state ids are
// small integers (≤ 32,767)" bound — NumStates enforces that cap via the
// builder, not this container, since the cap is a build-time policy rather
// than an inherent limit of the graph itself.
type DFA[K comparable, E any] struct {
	Start int

	states   []*State[K, E]
	sigIndex map[string]int
}

// New returns an empty DFA with no states.
func New[K comparable, E any]() *DFA[K, E] {
	return &DFA[K, E]{sigIndex: map[string]int{}}
}

// AddState adds a new state uniquely identified by sig (the caller computes
// signature equality for its value type E — e.g. the ordered tuple string
// for a lexeme DFA state, or the kernel signature for an LR(1) state) and
// returns its id. If sig has already been added, the existing id is
// returned and value/accepting are ignored (matching the conventional
// processed-set dedup pattern used by DFA/LR1 builders).
func (d *DFA[K, E]) AddState(sig string, value E, accepting bool) (id int, isNew bool) {
	if existing, ok := d.sigIndex[sig]; ok {
		return existing, false
	}
	id = len(d.states)
	d.states = append(d.states, &State[K, E]{
		ID:        id,
		Value:     value,
		Accepting: accepting,
		Trans:     map[K]int{},
	})
	d.sigIndex[sig] = id
	return id, true
}

// Lookup returns the id previously assigned to sig, if any.
func (d *DFA[K, E]) Lookup(sig string) (int, bool) {
	id, ok := d.sigIndex[sig]
	return id, ok
}

// AddTransition records that from state `from`, label k leads to state `to`.
func (d *DFA[K, E]) AddTransition(from int, k K, to int) {
	d.states[from].Trans[k] = to
}

// Next returns the state reached from `from` via label k, if any transition
// exists. A missing entry means "no transition" (§4.B alphabet
// closure): the caller must not default it to any particular state.
func (d *DFA[K, E]) Next(from int, k K) (int, bool) {
	to, ok := d.states[from].Trans[k]
	return to, ok
}

// State returns the state with the given id.
func (d *DFA[K, E]) State(id int) *State[K, E] {
	return d.states[id]
}

// NumStates returns the total number of states currently in the graph.
func (d *DFA[K, E]) NumStates() int {
	return len(d.states)
}

// States returns every state id in ascending (creation) order.
func (d *DFA[K, E]) States() []int {
	ids := make([]int, len(d.states))
	for i := range d.states {
		ids[i] = i
	}
	return ids
}

// String renders the DFA as a table of states and their transitions, sorted
// by id, in the spirit of a parse table's bordered-grid dump (there built
// with rosed; here kept dependency-free since the id/value pairing is
// already small and linear — the rosed-based grid renderer lives on the
// higher-level lr1.Table wrapper, which knows how to label K and E
// meaningfully).
func (d *DFA[K, E]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "START: %d\n", d.Start)
	for _, id := range d.States() {
		s := d.states[id]
		acc := ""
		if s.Accepting {
			acc = " (accepting)"
		}
		fmt.Fprintf(&sb, "  %d%s: %v\n", id, acc, s.Value)

		var labels []string
		byLabel := map[string]int{}
		for k, to := range s.Trans {
			ks := fmt.Sprintf("%v", k)
			labels = append(labels, ks)
			byLabel[ks] = to
		}
		sort.Strings(labels)
		for _, l := range labels {
			fmt.Fprintf(&sb, "      =(%s)=> %d\n", l, byLabel[l])
		}
	}
	return sb.String()
}
