package lex

import "github.com/gralex/gralex/internal/langcore/lcerr"

// Tokenizer drives a built DFA over a rune source, producing one Token per
// call to Next, per §4.C. It is grounded on a lazy, rune-at-a-time scan and
// line/column bookkeeping idiom, replaced here with the derivative DFA's
// longest-match rule instead of an ordered-regexp-list matching scheme.
//
// A Tokenizer is not a process-wide singleton: callers construct one per
// input via NewTokenizer and hold it for the lifetime of that parse, per
// SPEC_FULL.md's anti-singleton-registry guidance.
type Tokenizer struct {
	dfa   *DFA
	runes []rune

	pos  int // next unread rune index
	line int // one-based
	col  int // zero-based

	// OnTransition, if set, is called for every DFA transition taken while
	// scanning a token: (fromState, char, toState). Nil-safe; this is the
	// project's trace-listener idiom (see regex.Tracer), not a logging
	// library.
	OnTransition func(from int, c rune, to int)
}

// NewTokenizer returns a Tokenizer scanning source with dfa, starting at
// line 1, column 0.
func NewTokenizer(dfa *DFA, source string) *Tokenizer {
	return &Tokenizer{dfa: dfa, runes: []rune(source), line: 1, col: 0}
}

// lineBreaks is the set of runes §4.C counts as a line break: line feed,
// carriage return, and the Unicode line/paragraph separators.
var lineBreaks = map[rune]bool{'\n': true, '\r': true, '\u2028': true, '\u2029': true}

func (t *Tokenizer) advanceOne() {
	c := t.runes[t.pos]
	t.pos++
	if lineBreaks[c] {
		t.line++
		t.col = 0
	} else {
		t.col++
	}
}

func (t *Tokenizer) position() lcerr.Position {
	return lcerr.Position{Start: t.pos, End: t.pos, Line: t.line, Column: t.col}
}

// skipIgnored consumes ignored characters from the current (always-start)
// position, per §4.B: ignored characters loop at the initial state and
// never begin a token.
func (t *Tokenizer) skipIgnored() {
	for t.pos < len(t.runes) && t.dfa.IgnoredChars[t.runes[t.pos]] {
		t.advanceOne()
	}
}

// Next returns the next token, or the EndOfInput sentinel token once the
// source is exhausted. Matching is longest-match: the scan keeps following
// DFA transitions until none exists, remembering the longest prefix at which
// the DFA was in an accepting state; when the scan dead-ends, it reports
// that last accepting prefix rather than the raw final position (§4.C:
// "fire only when no further transition exists").
func (t *Tokenizer) Next() (Token, error) {
	t.skipIgnored()
	if t.pos >= len(t.runes) {
		return Token{Lexeme: EndOfInput, Position: t.position()}, nil
	}

	start := t.position()
	state := t.dfa.Start()
	j := t.pos

	lastAcceptLen := -1
	var lastAcceptName string

	for j < len(t.runes) {
		c := t.runes[j]
		next, ok := t.dfa.Next(state, c)
		if !ok {
			break
		}
		if t.OnTransition != nil {
			t.OnTransition(state, c, next)
		}
		state = next
		j++
		if name, ok := t.dfa.AcceptedLexeme(state); ok {
			lastAcceptLen = j - t.pos
			lastAcceptName = name
		}
	}

	if lastAcceptLen < 0 {
		if j == t.pos {
			return Token{}, &lcerr.UnexpectedCharacterError{Pos: start, Char: t.runes[t.pos]}
		}
		if j >= len(t.runes) {
			return Token{}, &lcerr.UnexpectedEndOfInputError{Pos: start}
		}
		return Token{}, &lcerr.UnexpectedCharacterError{Pos: start, Char: t.runes[j]}
	}

	text := string(t.runes[t.pos : t.pos+lastAcceptLen])
	for k := 0; k < lastAcceptLen; k++ {
		t.advanceOne()
	}
	end := t.position()

	return Token{
		Lexeme: lastAcceptName,
		Text:   text,
		Position: lcerr.Position{
			Start:  start.Start,
			End:    end.Start,
			Line:   start.Line,
			Column: start.Column,
		},
	}, nil
}

// All lexes every token from the source up to and including the EndOfInput
// sentinel, returning an error on the first lexing failure. It exists for
// tests and small callers; the streaming Next is the primary interface.
func (t *Tokenizer) All() ([]Token, error) {
	var out []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Lexeme == EndOfInput {
			return out, nil
		}
	}
}
