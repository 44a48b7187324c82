package regex

// DerivationStep records one application of Derive, for debugging. It is not
// part of the semantic contract (§4.A).
type DerivationStep struct {
	Source *Node
	Char   rune
	Result *Node
}

// SimplificationStep records one application of Simplify.
type SimplificationStep struct {
	Source *Node
	Result *Node
}

// Tracer accumulates DerivationStep and SimplificationStep entries when
// passed to Derive or Simplify. A nil *Tracer disables recording entirely
// with no allocation, matching the opt-in trace-listener idiom used
// elsewhere in this module (lex.Tokenizer.OnTransition, parse debug mode).
type Tracer struct {
	Derivations     []DerivationStep
	Simplifications []SimplificationStep
}

func (t *Tracer) recordDerive(src *Node, c rune, result *Node) {
	if t == nil {
		return
	}
	t.Derivations = append(t.Derivations, DerivationStep{Source: src, Char: c, Result: result})
}

func (t *Tracer) recordSimplify(src, result *Node) {
	if t == nil {
		return
	}
	t.Simplifications = append(t.Simplifications, SimplificationStep{Source: src, Result: result})
}
