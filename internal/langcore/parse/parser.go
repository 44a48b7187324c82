// Package parse implements §4.F: the shift/reduce/goto/accept driver
// that consumes a token stream against an LR(1) table and builds a CST. It
// is grounded on the classic table-driven LR parse loop (Algorithm 4.44 from
// the dragon book) and a trace-callback idiom for observing its shift/reduce
// decisions, adapted to build a single arena-indexed cst.Tree instead of a
// pointer-linked parse tree, and to carry one unified node stack instead of
// separate token/subtree-root stacks since every shifted token and every
// reduced production already has a cst arena index as soon as it exists.
package parse

import (
	"fmt"

	"github.com/gralex/gralex/internal/langcore/cst"
	"github.com/gralex/gralex/internal/langcore/grammar"
	"github.com/gralex/gralex/internal/langcore/lcerr"
	"github.com/gralex/gralex/internal/langcore/lex"
	"github.com/gralex/gralex/internal/langcore/lr1"
	"github.com/gralex/gralex/internal/util"
)

// DefaultIgnoredTokens is the parser's default ignored token set, spec
// §4.F: "Default ignored set = {"comment"}."
func DefaultIgnoredTokens() map[string]bool {
	return map[string]bool{"comment": true}
}

// Parser drives table over a lex.DFA's token stream, producing a cst.Tree.
type Parser struct {
	table         *lr1.Table
	dfa           *lex.DFA
	ignoredTokens map[string]bool

	// OnTrace, if set, is called with a human-readable line for every
	// state peek/push/pop, action taken, and token consumed - the same
	// trace-listener idiom as regex.Tracer and lex.Tokenizer.OnTransition,
	// not a logging library.
	OnTrace func(string)
}

// New returns a Parser over table and dfa with the default ignored token
// set.
func New(table *lr1.Table, dfa *lex.DFA) *Parser {
	return &Parser{table: table, dfa: dfa, ignoredTokens: DefaultIgnoredTokens()}
}

// SetIgnoredTokens replaces the ignored token set entirely.
func (p *Parser) SetIgnoredTokens(names ...string) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	p.ignoredTokens = set
}

func (p *Parser) trace(format string, args ...interface{}) {
	if p.OnTrace != nil {
		p.OnTrace(fmt.Sprintf(format, args...))
	}
}

// Parse tokenizes and parses source, returning the built CST on success.
func (p *Parser) Parse(source string) (*cst.Tree, error) {
	tokenizer := lex.NewTokenizer(p.dfa, source)

	next := func() (lex.Token, error) {
		for {
			t, err := tokenizer.Next()
			if err != nil {
				return lex.Token{}, err
			}
			if p.ignoredTokens[t.Lexeme] {
				continue
			}
			return t, nil
		}
	}

	symbolOf := func(t lex.Token) string {
		if t.Lexeme == lex.EndOfInput {
			return grammar.EOIName
		}
		return t.Lexeme
	}

	stateStack := util.Stack[int]{Of: []int{p.table.Initial()}}
	nodeStack := util.Stack[int]{Of: []int{}}
	tree := cst.New()

	lookahead, err := next()
	if err != nil {
		return nil, err
	}
	p.trace("lookahead: %s %q", lookahead.Lexeme, lookahead.Text)

	for {
		s := stateStack.Peek()
		sym := symbolOf(lookahead)

		action, ok := p.table.Action(s, sym)
		if !ok {
			return nil, &lcerr.ParseError{
				State:     fmt.Sprintf("%d", s),
				Lookahead: sym,
				Pos:       lookahead.Position,
			}
		}
		p.trace("state %d, lookahead %s: %s", s, sym, action)

		switch action.Kind {
		case lr1.Shift:
			idx := tree.AddLeaf(lookahead)
			nodeStack.Push(idx)
			stateStack.Push(action.Target)

			lookahead, err = next()
			if err != nil {
				return nil, err
			}
			p.trace("lookahead: %s %q", lookahead.Lexeme, lookahead.Text)

		case lr1.Reduce:
			rule := p.table.Grammar.Rules[action.Target]

			var children []int
			if !rule.Body.IsEpsilon() {
				n := len(rule.Body)
				children = make([]int, n)
				for i := n - 1; i >= 0; i-- {
					children[i] = nodeStack.Pop()
					stateStack.Pop()
				}
			}

			top := stateStack.Peek()
			gotoAction, ok := p.table.Action(top, rule.Head.Name)
			if !ok || gotoAction.Kind != lr1.Goto {
				return nil, &lcerr.ParseError{
					State:     fmt.Sprintf("%d", top),
					Lookahead: rule.Head.Name,
					Pos:       lookahead.Position,
				}
			}
			stateStack.Push(gotoAction.Target)

			// The augmented rule (<augmented_start> -> Start) is never
			// itself reduced - its dot-at-end item is always an Accept,
			// never a Reduce (lr1.Build). So the reduction that produces
			// the real parse root is identified not by symbol name (the
			// original start symbol may recur, e.g. left-recursive E -> E
			// + T, reducing it more than once) but by what happens right
			// after this GOTO: if the resulting state accepts the current
			// lookahead, this reduction was the last one before Accept,
			// i.e. the topmost production of the real start symbol.
			var idx int
			if peek, ok := p.table.Action(gotoAction.Target, sym); ok && peek.Kind == lr1.Accept {
				idx = tree.AddRoot(rule.Head.Name, action.Target, children)
			} else {
				idx = tree.AddInternal(rule.Head.Name, action.Target, children)
			}
			nodeStack.Push(idx)

		case lr1.Accept:
			return tree, nil

		default:
			return nil, &lcerr.ParseError{State: fmt.Sprintf("%d", s), Lookahead: sym, Pos: lookahead.Position}
		}
	}
}
