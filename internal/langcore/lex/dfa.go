package lex

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gralex/gralex/internal/langcore/automaton"
	"github.com/gralex/gralex/internal/langcore/lcerr"
	"github.com/gralex/gralex/internal/langcore/regex"
)

// MaxStates bounds the number of DFA states a single build may produce, per
// §4.B. It exists to turn a runaway derivative explosion into a
// reported error instead of an unbounded build.
const MaxStates = 32767

// deriv pairs a lexeme name with its current derivative node. A DFA state's
// value is the ordered tuple of these pairs that survive (non-∅) at that
// point in the derivation, in declaration order.
type deriv struct {
	name string
	node *regex.Node
}

// DFA is the built multi-lexeme automaton: a generic automaton.DFA keyed by
// rune, carrying the surviving derivative tuple at each state plus (for
// accepting states) the winning lexeme name.
type DFA struct {
	g            *automaton.DFA[rune, []deriv]
	accepts      map[int]string
	Alphabet     map[rune]bool
	IgnoredChars map[rune]bool
}

// BuildOptions controls DFA construction.
type BuildOptions struct {
	// IgnoredChars loop back to the initial state from the initial state
	// only (§4.B).
	IgnoredChars map[rune]bool

	// AllowPriorityTiebreak, when true, resolves a state where more than one
	// lexeme's derivative is simultaneously ε by picking the
	// earliest-declared lexeme rather than raising AmbiguousLexemeError.
	AllowPriorityTiebreak bool

	// Tracer, if non-nil, records every derivation performed while building.
	Tracer *regex.Tracer
}

// Build runs simultaneous Brzozowski derivation over lexemes (kept in
// declaration order) to construct a single DFA recognizing all of them at
// once, per §4.B. The returned DFA's states are keyed by rune
// transitions; AcceptedLexeme reports, for an accepting state, which lexeme
// won.
func Build(lexemes []Lexeme, opts BuildOptions) (*DFA, error) {
	if len(lexemes) == 0 {
		return nil, &lcerr.ConfigError{Reason: "lex: at least one lexeme is required to build a DFA"}
	}

	patterns := make([]*regex.Node, len(lexemes))
	for i, lx := range lexemes {
		patterns[i] = lx.Pattern
	}
	sigma := CollectAlphabet(patterns)
	for c := range opts.IgnoredChars {
		sigma[c] = true
	}

	g := automaton.New[rune, []deriv]()
	initial := make([]deriv, len(lexemes))
	for i, lx := range lexemes {
		initial[i] = deriv{name: lx.Name, node: lx.Pattern}
	}

	accepts := map[int]string{}
	startSig := tupleSignature(initial)
	startID, _ := g.AddState(startSig, initial, false)
	g.Start = startID
	if name, ok := winningLexeme(initial); ok {
		g.State(startID).Accepting = true
		accepts[startID] = name
	}

	queue := []int{startID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curTuple := g.State(cur).Value

		for c := range sigma {
			if cur == startID && opts.IgnoredChars[c] {
				g.AddTransition(cur, c, startID)
				continue
			}

			next := deriveTuple(curTuple, c, opts.Tracer)
			if len(next) == 0 {
				continue
			}
			sig := tupleSignature(next)
			id, isNew := g.AddState(sig, next, false)
			if isNew {
				if g.NumStates() > MaxStates {
					return nil, &lcerr.DfaBuildError{Reason: fmt.Sprintf("lex: state count exceeded %d", MaxStates)}
				}
				name, ambiguous, err := resolveAccept(next, opts.AllowPriorityTiebreak)
				if err != nil {
					if ae, ok := err.(*lcerr.AmbiguousLexemeError); ok {
						ae.StateID = id
					}
					return nil, err
				}
				_ = ambiguous
				if name != "" {
					g.State(id).Accepting = true
					accepts[id] = name
				}
				queue = append(queue, id)
			}
			g.AddTransition(cur, c, id)
		}
	}

	return &DFA{g: g, accepts: accepts, Alphabet: sigma, IgnoredChars: opts.IgnoredChars}, nil
}

// deriveTuple derives every surviving entry of tuple by c, dropping any that
// collapse to ∅ (§4.B step 3).
func deriveTuple(tuple []deriv, c rune, tr *regex.Tracer) []deriv {
	next := make([]deriv, 0, len(tuple))
	for _, d := range tuple {
		dd := regex.Derive(d.node, c, tr)
		if dd.Kind == regex.EmptySet {
			continue
		}
		next = append(next, deriv{name: d.name, node: dd})
	}
	return next
}

// winningLexeme reports the accepting lexeme name for tuple, if any, without
// erroring on simultaneous-accept ambiguity (used only for the initial
// state, which §4.B never treats as accepting in well-formed grammars
// since no lexeme matches the empty string by convention; kept general
// regardless).
func winningLexeme(tuple []deriv) (string, bool) {
	for _, d := range tuple {
		if d.node.Kind == regex.Epsilon {
			return d.name, true
		}
	}
	return "", false
}

// resolveAccept decides whether a state is accepting and for which lexeme. A
// lexeme has matched at this state when its derivative is nullable (admits
// the empty string, e.g. ε or the x* left after consuming part of x+); among
// matched lexemes the earliest-declared one wins. When two or more
// derivatives are exactly ε (the lexemes match the same text and can go no
// further), the state is ambiguous: with allowTiebreak false that is
// reported as AmbiguousLexemeError, otherwise declaration order decides as
// usual. It returns ("", false, nil) for a non-accepting state.
func resolveAccept(tuple []deriv, allowTiebreak bool) (name string, ambiguous bool, err error) {
	first := -1
	var epsIdx []int
	for i, d := range tuple {
		if first < 0 && regex.Nullable(d.node) {
			first = i
		}
		if d.node.Kind == regex.Epsilon {
			epsIdx = append(epsIdx, i)
		}
	}
	if len(epsIdx) > 1 && !allowTiebreak {
		return "", true, &lcerr.AmbiguousLexemeError{
			LexemeA: tuple[epsIdx[0]].name,
			LexemeB: tuple[epsIdx[1]].name,
		}
	}
	if first < 0 {
		return "", false, nil
	}
	// declaration order is preserved in tuple, so the first nullable entry is
	// the earliest-declared matched lexeme.
	return tuple[first].name, len(epsIdx) > 1, nil
}

// tupleSignature renders tuple as a stable string key for automaton.DFA's
// state-dedup map, combining each surviving lexeme's name with its
// derivative's structural rendering.
func tupleSignature(tuple []deriv) string {
	parts := make([]string, len(tuple))
	for i, d := range tuple {
		parts[i] = d.name + ":" + d.node.String()
	}
	return strings.Join(parts, "\x1f")
}

// AcceptedLexeme reports the winning lexeme name at state id, if it is
// accepting.
func (d *DFA) AcceptedLexeme(id int) (string, bool) {
	name, ok := d.accepts[id]
	return name, ok
}

// Next returns the state reached from `from` on rune c, if any.
func (d *DFA) Next(from int, c rune) (int, bool) {
	return d.g.Next(from, c)
}

// Start returns the DFA's initial state id.
func (d *DFA) Start() int {
	return d.g.Start
}

// NumStates returns the number of states in the built automaton.
func (d *DFA) NumStates() int {
	return d.g.NumStates()
}

// Transitions returns a copy of state id's outgoing rune transitions, for
// callers (persist.SnapshotDFA) that need to walk the whole table rather than
// query single runes.
func (d *DFA) Transitions(id int) map[rune]int {
	src := d.g.State(id).Trans
	out := make(map[rune]int, len(src))
	for r, to := range src {
		out[r] = to
	}
	return out
}

// IsAccepting reports whether state id is an accepting state.
func (d *DFA) IsAccepting(id int) bool {
	return d.g.State(id).Accepting
}

// Rebuild reconstructs a DFA directly from a previously-serialized
// transition table (persist.DecodeDFA), bypassing derivation entirely. States
// are addressed 0..numStates-1; trans[id] holds id's outgoing rune
// transitions, and accepts[id] names the lexeme a state accepts, if any.
// The derivative tuples that justified each state during the original Build
// are not retained in a cached table — they are build-time-only scaffolding
// (§4.B), never inspected after construction — so each state's Value is
// left as the empty tuple here.
func Rebuild(start, numStates int, trans map[int]map[rune]int, accepts map[int]string, alphabet, ignoredChars map[rune]bool) *DFA {
	g := automaton.New[rune, []deriv]()
	for id := 0; id < numStates; id++ {
		sig := fmt.Sprintf("state:%d", id)
		g.AddState(sig, nil, accepts[id] != "")
	}
	g.Start = start
	for id, outs := range trans {
		for r, to := range outs {
			g.AddTransition(id, r, to)
		}
	}

	return &DFA{g: g, accepts: accepts, Alphabet: alphabet, IgnoredChars: ignoredChars}
}

// String renders the DFA for debugging, listing states in id order with
// their accept labels.
func (d *DFA) String() string {
	var sb strings.Builder
	ids := d.g.States()
	sort.Ints(ids)
	for _, id := range ids {
		label := ""
		if name, ok := d.accepts[id]; ok {
			label = fmt.Sprintf(" accept=%s", name)
		}
		fmt.Fprintf(&sb, "%d%s\n", id, label)
	}
	return sb.String()
}
