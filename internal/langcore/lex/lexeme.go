// Package lex implements §4.B (multi-lexeme DFA construction via
// simultaneous Brzozowski derivation) and §4.C (the tokenizer runtime that
// drives that DFA). It is grounded on a conventional lexer package's shape
// (lexeme/token/action naming) but replaces regexp-based matching with
// the derivative engine of internal/langcore/regex.
package lex

import "github.com/gralex/gralex/internal/langcore/regex"

// Lexeme is a named pattern, §3: "Lexeme = (name, pattern)". A lexeme
// is accepting at a DFA state iff the state carries a nullable derivative
// for that lexeme (see resolveAccept).
type Lexeme struct {
	Name    string
	Pattern *regex.Node
}
