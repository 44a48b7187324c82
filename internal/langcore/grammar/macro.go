package grammar

import (
	"fmt"

	"github.com/gralex/gralex/internal/langcore/lcerr"
)

// maxExpansionAttempts bounds the fresh-name search and the overall
// expansion work queue, turning a pathological or cyclic macro definition
// into a reported error instead of an infinite loop.
const maxExpansionAttempts = 100000

// Expand rewrites every macro symbol in g's rule bodies into pure BNF, spec
// §4.D. For each macro M found in a rule `A → α M β`, a fresh non-terminal
// is introduced (named `head_suffix_N` with a monotonic counter N, per
// SPEC_FULL.md's redesign of the source's prime-suffix scheme — see
// DESIGN.md) and M is replaced by it; the macro's own alternatives become
// the fresh non-terminal's productions, which are themselves re-queued for
// expansion (so nested macros such as `{ [a] }` are fully resolved).
//
// Expansion iterates to a fixed point: the returned Grammar's Validate()
// will find no remaining macro symbols.
func Expand(g *Grammar) (*Grammar, error) {
	taken := map[string]bool{}
	for _, r := range g.Rules {
		taken[r.Head.Name] = true
	}

	queue := make([]Production, len(g.Rules))
	copy(queue, g.Rules)

	var result []Production
	counter := 0
	attempts := 0

	for len(queue) > 0 {
		attempts++
		if attempts > maxExpansionAttempts {
			return nil, &lcerr.MacroExpansionError{Head: g.Start}
		}

		r := queue[0]
		queue = queue[1:]

		idx, ok := firstMacroIndex(r.Body)
		if !ok {
			result = append(result, r)
			continue
		}
		m := r.Body[idx]

		freshName, err := genFreshName(r.Head.Name, taken, &counter)
		if err != nil {
			return nil, err
		}
		taken[freshName] = true

		rewritten := make(Sentence, len(r.Body))
		copy(rewritten, r.Body)
		rewritten[idx] = NonTerm(freshName)
		queue = append(queue, Production{Head: r.Head, Body: rewritten})

		switch m.Variant {
		case Group:
			queue = append(queue, Production{Head: NonTerm(freshName), Body: m.Alternatives[0]})

		case Option:
			queue = append(queue, Production{Head: NonTerm(freshName), Body: m.Alternatives[0]})
			queue = append(queue, Production{Head: NonTerm(freshName), Body: Sentence{Eps()}})

		case ZeroOrMore:
			rec := appendSentence(m.Alternatives[0], NonTerm(freshName))
			queue = append(queue, Production{Head: NonTerm(freshName), Body: rec})
			queue = append(queue, Production{Head: NonTerm(freshName), Body: Sentence{Eps()}})

		case OneOrMore:
			freshName2, err := genFreshName(r.Head.Name, taken, &counter)
			if err != nil {
				return nil, err
			}
			taken[freshName2] = true

			b1 := appendSentence(m.Alternatives[0], NonTerm(freshName2))
			queue = append(queue, Production{Head: NonTerm(freshName), Body: b1})

			b2 := appendSentence(m.Alternatives[0], NonTerm(freshName2))
			queue = append(queue, Production{Head: NonTerm(freshName2), Body: b2})
			queue = append(queue, Production{Head: NonTerm(freshName2), Body: Sentence{Eps()}})

		case Alternative:
			for _, alt := range m.Alternatives {
				queue = append(queue, Production{Head: NonTerm(freshName), Body: alt})
			}

		default:
			return nil, &lcerr.GrammarError{Reason: "unhandled macro variant", Symbol: m.Variant.String()}
		}
	}

	return build(g.Start, result), nil
}

func firstMacroIndex(s Sentence) (int, bool) {
	for i, sym := range s {
		if sym.IsMacro() {
			return i, true
		}
	}
	return 0, false
}

func appendSentence(base Sentence, extra Symbol) Sentence {
	out := make(Sentence, 0, len(base)+1)
	out = append(out, base...)
	out = append(out, extra)
	return out
}

func genFreshName(base string, taken map[string]bool, counter *int) (string, error) {
	for i := 0; i < maxExpansionAttempts; i++ {
		*counter++
		name := fmt.Sprintf("%s_suffix_%d", base, *counter)
		if !taken[name] {
			return name, nil
		}
	}
	return "", &lcerr.MacroExpansionError{Head: base}
}
