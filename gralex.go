// Package gralex is the entry-point facade over the langcore build
// pipeline: regex parsing, multi-lexeme DFA construction, EBNF macro
// expansion, LR(1) table generation, and the parse driver that ties a
// built lexer and table together into a CST-producing Parser. It mirrors
// the shape of a frontend facade's NewLexer/NewParser constructors,
// generalized from "one hardcoded grammar" to "any number of named,
// independently built grammars held by a Registry" per the
// "global/singleton tokenizers" design note: no package-level cache,
// only an explicit Registry the caller owns.
package gralex

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/gralex/gralex/internal/langcore/cst"
	"github.com/gralex/gralex/internal/langcore/grammar"
	"github.com/gralex/gralex/internal/langcore/lcerr"
	"github.com/gralex/gralex/internal/langcore/lex"
	"github.com/gralex/gralex/internal/langcore/lr1"
	"github.com/gralex/gralex/internal/langcore/parse"
	"github.com/gralex/gralex/internal/langcore/regex"
)

// Spec is the immutable input to a Build: the lexeme declarations (in
// priority/declaration order) plus the EBNF grammar they feed, still
// carrying macro symbols — Build expands and augments it.
type Spec struct {
	Lexemes               []lex.Lexeme
	IgnoredChars          map[rune]bool
	Grammar               *grammar.Grammar
	AllowPriorityTiebreak bool
	IgnoredTokens         []string
	Tracer                *regex.Tracer
}

// Build is one fully-constructed lexer+parser pair: a lexeme DFA, the
// macro-expanded and augmented grammar it was checked against, and the
// LR(1) table derived from that grammar. ID tags the build so that two
// grammars loaded into the same Registry never share debug traces or
// cache files (grounded on using uuid for a stable opaque handle to a
// session/entity, here a build artifact instead).
type Build struct {
	ID      uuid.UUID
	DFA     *lex.DFA
	Grammar *grammar.Grammar
	Table   *lr1.Table
}

// NewBuild runs the full pipeline over spec: DFA construction (§4.B),
// macro expansion and augmentation (§4.D), and LR(1) table generation
// (§4.E). The returned Build is immutable and safe to share across
// concurrent parses (lex.DFA and lr1.Table are read-only after Build
// returns; each Parse call gets its own lex.Tokenizer and parse.Parser
// state).
func NewBuild(spec Spec) (*Build, error) {
	if spec.Grammar == nil {
		return nil, &lcerr.ConfigError{Reason: "gralex: a grammar is required to build a parser"}
	}

	dfa, err := lex.Build(spec.Lexemes, lex.BuildOptions{
		IgnoredChars:          spec.IgnoredChars,
		AllowPriorityTiebreak: spec.AllowPriorityTiebreak,
		Tracer:                spec.Tracer,
	})
	if err != nil {
		return nil, fmt.Errorf("gralex: building lexeme DFA: %w", err)
	}

	expanded, err := grammar.Expand(spec.Grammar)
	if err != nil {
		return nil, fmt.Errorf("gralex: expanding grammar macros: %w", err)
	}
	augmented := expanded.Augment()

	table, err := lr1.Build(augmented)
	if err != nil {
		return nil, fmt.Errorf("gralex: building LR(1) table: %w", err)
	}

	return &Build{ID: uuid.New(), DFA: dfa, Grammar: augmented, Table: table}, nil
}

// NewParser returns a fresh parse.Parser over b. If ignoredTokens are given
// they replace the ignored token set; otherwise parse.DefaultIgnoredTokens
// applies. Spec.IgnoredTokens is not kept in the Build and is not consulted
// here or by Parse.
func (b *Build) NewParser(ignoredTokens ...string) *parse.Parser {
	p := parse.New(b.Table, b.DFA)
	if len(ignoredTokens) > 0 {
		p.SetIgnoredTokens(ignoredTokens...)
	}
	return p
}

// Parse is a convenience wrapper: build a fresh parser over b and run it
// against source in one call.
func (b *Build) Parse(source string) (*cst.Tree, error) {
	return b.NewParser().Parse(source)
}

// Registry holds named Builds, so a process hosting several grammars at
// once keeps them apart explicitly rather than through a shared
// package-level cache (§9's "global/singleton tokenizers" note).
type Registry struct {
	mu     sync.RWMutex
	builds map[string]*Build
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{builds: map[string]*Build{}}
}

// Register runs NewBuild(spec) and stores the result under name,
// replacing any prior build registered under that name.
func (r *Registry) Register(name string, spec Spec) (*Build, error) {
	b, err := NewBuild(spec)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builds[name] = b
	return b, nil
}

// Get returns the Build registered under name, if any.
func (r *Registry) Get(name string) (*Build, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builds[name]
	return b, ok
}

// Names returns every currently-registered build name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builds))
	for n := range r.builds {
		names = append(names, n)
	}
	return names
}

// Parse looks up name and parses source against it, failing with a
// ConfigError if no build is registered under that name.
func (r *Registry) Parse(name, source string) (*cst.Tree, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &lcerr.ConfigError{Reason: fmt.Sprintf("gralex: no build registered under name %q", name)}
	}
	return b.Parse(source)
}
