package lr1

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/gralex/gralex/internal/langcore/automaton"
	"github.com/gralex/gralex/internal/langcore/grammar"
	"github.com/gralex/gralex/internal/langcore/lcerr"
)

// ActionKind tags an encoded ACTION/GOTO table entry, §4.E: "Action
// variants: Shift(stateId), Reduce(ruleIndex), Goto(stateId), Accept."
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Goto
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "Shift"
	case Reduce:
		return "Reduce"
	case Goto:
		return "Goto"
	case Accept:
		return "Accept"
	default:
		return "?"
	}
}

// Action is one encoded table cell. Target is a state id for Shift/Goto, a
// rule index for Reduce, and unused for Accept.
type Action struct {
	Kind   ActionKind
	Target int
}

func (a Action) String() string {
	if a.Kind == Accept {
		return "Accept"
	}
	return fmt.Sprintf("%s(%d)", a.Kind, a.Target)
}

func (a Action) equal(o Action) bool {
	return a.Kind == o.Kind && a.Target == o.Target
}

// Table is the built LR(1) automaton plus its derived ACTION/GOTO cells,
// §4.E. Grammar is the augmented, macro-expanded grammar the rule
// indices in Reduce actions refer to.
type Table struct {
	Grammar *grammar.Grammar

	g        *automaton.DFA[string, ItemSet]
	actions  map[int]map[string]Action
}

// Initial returns the starting state id.
func (t *Table) Initial() int { return t.g.Start }

// Action looks up ACTION/GOTO[state, symbol].
func (t *Table) Action(state int, symbol string) (Action, bool) {
	row, ok := t.actions[state]
	if !ok {
		return Action{}, false
	}
	a, ok := row[symbol]
	return a, ok
}

// NumStates returns the number of LR(1) states built.
func (t *Table) NumStates() int { return t.g.NumStates() }

// ItemSet returns the closed item set at state id, for debugging/tracing.
func (t *Table) ItemSet(state int) ItemSet { return t.g.State(state).Value }

// String renders the ACTION/GOTO table as a bordered grid, one row per
// state, terminal columns (including EOI) followed by non-terminal goto
// columns. Grounded on a conventional LR table dump, built with the same
// header+"|"+header shape via rosed.InsertTableOpts.
func (t *Table) String() string {
	terms := append(append([]string{}, t.Grammar.Terminals()...), grammar.EOIName)
	nonterms := t.Grammar.NonTerminals()

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonterms {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}
	for _, id := range t.g.States() {
		row := []string{fmt.Sprintf("%d", id), "|"}
		for _, term := range terms {
			cell := ""
			if a, ok := t.Action(id, term); ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonterms {
			cell := ""
			if a, ok := t.Action(id, nt); ok {
				cell = a.String()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// Build constructs the canonical LR(1) automaton and its ACTION/GOTO table
// for g, which must already be macro-expanded and augmented (Grammar.Augment
// applied, Validate passing). Per §4.E: closure via FIRST-set
// computation, goto, kernel-signature-based state dedup, and conflict
// detection raising GrammarConflictError.
func Build(g *grammar.Grammar) (*Table, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.IsAugmented() {
		return nil, &lcerr.GrammarError{Reason: "lr1.Build requires an augmented grammar"}
	}

	startRules := g.RulesFor(g.Start)
	if len(startRules) != 1 {
		return nil, &lcerr.GrammarError{Reason: "augmented start must have exactly one production", Symbol: g.Start}
	}
	startRuleIdx := -1
	for i, r := range g.Rules {
		if r.Equal(startRules[0]) {
			startRuleIdx = i
			break
		}
	}

	firstSets := grammar.FirstSets(g)

	automatonG := automaton.New[string, ItemSet]()
	initialKernel := []item{newItem(g, startRuleIdx, map[string]bool{grammar.EOIName: true})}
	initialClosed := closure(g, firstSets, initialKernel)

	startID, _ := automatonG.AddState(signature(initialKernel), initialClosed, false)
	automatonG.Start = startID

	queue := []int{startID}
	kernels := map[int][]item{startID: initialKernel}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		closed := automatonG.State(cur).Value

		symbolsAfterDot := map[string]grammar.Symbol{}
		for _, it := range closed {
			sym, ok := it.atDot(g)
			if !ok {
				continue
			}
			symbolsAfterDot[symbolKey(sym)] = sym
		}

		for key, sym := range symbolsAfterDot {
			kernel := gotoKernel(g, closed, sym)
			if len(kernel) == 0 {
				continue
			}
			sig := signature(kernel)
			targetID, exists := automatonG.Lookup(sig)
			if !exists {
				closedTarget := closure(g, firstSets, kernel)
				targetID, _ = automatonG.AddState(sig, closedTarget, false)
				kernels[targetID] = kernel
				queue = append(queue, targetID)
			}
			automatonG.AddTransition(cur, key, targetID)
		}
	}

	actions := map[int]map[string]Action{}
	for _, id := range automatonG.States() {
		actions[id] = map[string]Action{}
		for _, it := range automatonG.State(id).Value {
			rule := g.Rules[it.rule]

			if sym, ok := it.atDot(g); ok {
				next, ok := automatonG.Next(id, symbolKey(sym))
				if !ok {
					continue
				}
				var a Action
				switch sym.Kind {
				case grammar.Terminal:
					a = Action{Kind: Shift, Target: next}
				case grammar.NonTerminal:
					a = Action{Kind: Goto, Target: next}
				default:
					continue
				}
				if err := setAction(actions, id, symbolKey(sym), a); err != nil {
					return nil, err
				}
				continue
			}

			// dot at end: reduce, or accept for the augmented start rule.
			if rule.Head.Name == g.Start {
				for t := range it.lookahead {
					if err := setAction(actions, id, t, Action{Kind: Accept}); err != nil {
						return nil, err
					}
				}
				continue
			}
			for t := range it.lookahead {
				if err := setAction(actions, id, t, Action{Kind: Reduce, Target: it.rule}); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Table{Grammar: g, g: automatonG, actions: actions}, nil
}

// Rebuild reconstructs a Table directly from a previously-serialized
// actions table (persist.DecodeLR1Table), bypassing closure/goto construction
// entirely. g must be the same (already augmented) grammar the actions were
// built against — rule indices in Reduce actions are only meaningful
// relative to it. The item sets that justified each state during the
// original Build are not retained in a cached table (they are closure-
// construction scaffolding, never inspected after the table exists), so
// ItemSet(id) returns nil for a rebuilt Table.
func Rebuild(g *grammar.Grammar, initial, numStates int, actions map[int]map[string]Action) *Table {
	automatonG := automaton.New[string, ItemSet]()
	for id := 0; id < numStates; id++ {
		automatonG.AddState(fmt.Sprintf("state:%d", id), nil, false)
	}
	automatonG.Start = initial

	return &Table{Grammar: g, g: automatonG, actions: actions}
}

func setAction(actions map[int]map[string]Action, state int, symbol string, a Action) error {
	row := actions[state]
	if existing, ok := row[symbol]; ok {
		if !existing.equal(a) {
			return &lcerr.GrammarConflictError{
				State:   fmt.Sprintf("%d", state),
				Symbol:  symbol,
				ActionA: existing.String(),
				ActionB: a.String(),
			}
		}
		return nil
	}
	row[symbol] = a
	return nil
}
