// Package lcerr defines the error taxonomy shared by every build- and
// run-time phase of gralex (ConfigError, RegexParseError, DfaBuildError,
// GrammarError, MacroExpansionError, GrammarConflictError,
// UnexpectedCharacter/UnexpectedEndOfInput, ParseError).
//
// Each type here is a plain struct implementing error. Callers build them as
// struct literals, filling in the position and context fields; there are no
// constructor functions.
package lcerr

import "fmt"

// Position locates a failure in source text. Start/End/Column are zero-based
// character offsets; Line is one-based (see SPEC_FULL.md open-question
// decision on line/column origin).
type Position struct {
	Start  int
	End    int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

// ConfigError reports a problem with the static configuration handed to a
// builder before any derivation or state exploration begins: an empty
// lexeme list, a reference to an undefined fragment, or an attribute block
// naming a lexeme that doesn't exist.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Reason)
}

// RegexParseError reports a malformed pattern string: unbalanced groups, an
// invalid escape, or a character-class range whose start is not less than
// its end.
type RegexParseError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *RegexParseError) Error() string {
	return fmt.Sprintf("regex parse error in %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

// DfaBuildError reports that multi-lexeme DFA construction could not
// complete because the state count exceeded the 32,767 build-time cap. An
// ambiguous lexeme is reported as AmbiguousLexemeError instead.
type DfaBuildError struct {
	Reason string
}

func (e *DfaBuildError) Error() string {
	return fmt.Sprintf("DFA build error: %s", e.Reason)
}

// AmbiguousLexemeError is the DFA build failure reported when two
// lexemes reduce to epsilon simultaneously in the same state and the
// declaration-order tie-break has been turned off for the build.
type AmbiguousLexemeError struct {
	StateID  int
	LexemeA  string
	LexemeB  string
}

func (e *AmbiguousLexemeError) Error() string {
	return fmt.Sprintf("ambiguous lexeme in state %d: %q and %q both accept and neither was given priority", e.StateID, e.LexemeA, e.LexemeB)
}

// GrammarError reports an unreachable non-terminal or a reference to an
// undefined symbol discovered while validating a Grammar.
type GrammarError struct {
	Reason string
	Symbol string
}

func (e *GrammarError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("grammar error: %s", e.Reason)
	}
	return fmt.Sprintf("grammar error: %s: %q", e.Reason, e.Symbol)
}

// MacroExpansionError reports that the primed-name generator exhausted its
// counter without finding a free auxiliary non-terminal name. Spec calls
// this "theoretical"; it exists so the expander has a defined failure mode
// rather than looping forever or silently colliding names.
type MacroExpansionError struct {
	Head string
}

func (e *MacroExpansionError) Error() string {
	return fmt.Sprintf("macro expansion error: could not allocate a fresh auxiliary non-terminal for %q", e.Head)
}

// GrammarConflictError reports an LR(1) shift/reduce or reduce/reduce
// conflict found during table construction.
type GrammarConflictError struct {
	State     string
	Symbol    string
	ActionA   string
	ActionB   string
}

func (e *GrammarConflictError) Error() string {
	return fmt.Sprintf("grammar is not LR(1): state %s has both %s and %s on %q", e.State, e.ActionA, e.ActionB, e.Symbol)
}

// UnexpectedCharacterError is a tokenizer runtime failure: the DFA had no
// transition out of the current state on the character at pos, and the
// current state was not accepting.
type UnexpectedCharacterError struct {
	Pos  Position
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at %s", e.Char, e.Pos)
}

// UnexpectedEndOfInputError is a tokenizer runtime failure: input ended
// mid-token with no transition available and the current state was not
// accepting.
type UnexpectedEndOfInputError struct {
	Pos Position
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input at %s", e.Pos)
}

// ParseError reports that the LR parser found no ACTION table entry for the
// current (state, lookahead) pair.
type ParseError struct {
	State     string
	Lookahead string
	Pos       Position
	Trace     string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at %s: no action for %q in state %s", e.Pos, e.Lookahead, e.State)
	if e.Trace != "" {
		msg += "\n" + e.Trace
	}
	return msg
}
