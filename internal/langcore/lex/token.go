package lex

import "github.com/gralex/gralex/internal/langcore/lcerr"

// Token is a single lexed unit of source text, §3: "Token = (lexeme
// name, text, position)". Position.Start/End/Column are zero-based,
// Position.Line is one-based, matching the conventional 1-indexed
// Line()/LinePos() editor convention extended to the zero-based offsets the
// parser driver needs for CST spans (see SPEC_FULL.md open-question decision).
type Token struct {
	Lexeme   string
	Text     string
	Position lcerr.Position
}

// EndOfInput is the lexeme name of the sentinel token Next returns once the
// input is exhausted. It is never produced by a user-declared lexeme (lexeme
// names are validated against this at build time by the caller, mirroring
// the conventional end-of-text sentinel token used by hand-rolled lexers).
// The null character is the sentinel §6's token stream contract mandates.
const EndOfInput = "\x00"
