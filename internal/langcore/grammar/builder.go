package grammar

import "github.com/gralex/gralex/internal/langcore/lcerr"

// Builder accumulates rules before the grammar is frozen into a Grammar, per
// the "builder vs. mutable structure" design note: the frozen value exposes
// no mutators, only Builder does.
type Builder struct {
	start string
	rules []Production
}

// NewBuilder returns a Builder whose eventual grammar starts at start.
func NewBuilder(start string) *Builder {
	return &Builder{start: start}
}

// AddRule appends one production `head -> body` in declaration order. body
// may contain macro symbols; Expand resolves them in the Grammar that Build
// returns.
func (b *Builder) AddRule(head string, body ...Symbol) *Builder {
	b.rules = append(b.rules, Production{Head: NonTerm(head), Body: Sentence(body)})
	return b
}

// AddEpsilonRule appends `head -> ε`.
func (b *Builder) AddEpsilonRule(head string) *Builder {
	return b.AddRule(head, Eps())
}

// Build freezes the builder into a Grammar, without expanding macros or
// augmenting. Returns a ConfigError if start was never given a rule.
func (b *Builder) Build() (*Grammar, error) {
	found := false
	for _, r := range b.rules {
		if r.Head.Name == b.start {
			found = true
			break
		}
	}
	if !found {
		return nil, &lcerr.ConfigError{Reason: "grammar: start symbol " + b.start + " has no rule"}
	}
	return build(b.start, b.rules), nil
}
