package lex

import "github.com/gralex/gralex/internal/langcore/regex"

// CollectAlphabet walks every pattern and returns the set of characters it
// mentions: every literal, every character-class member, and, for AnyChar
// and negated classes, every character of the charset the node is bound to.
// The charset has to be enumerated for those two kinds because the DFA only
// has transitions on characters in Σ: a character outside Σ can never be
// consumed, even by `.` or `[^...]`.
func CollectAlphabet(patterns []*regex.Node) map[rune]bool {
	sigma := map[rune]bool{}
	for _, p := range patterns {
		collectAlphabet(p, sigma)
	}
	return sigma
}

func collectAlphabet(n *regex.Node, sigma map[rune]bool) {
	if n == nil {
		return
	}
	switch n.Kind {
	case regex.Literal:
		sigma[n.Char] = true
	case regex.CharClass, regex.AnyChar:
		if n.Kind == regex.AnyChar || n.Negated {
			for r := rune(0); r <= 0xFFFF; r++ {
				if n.Charset.Contains(r) {
					sigma[r] = true
				}
			}
		}
		for _, m := range n.Members {
			for r := m.Lo; r <= m.Hi; r++ {
				sigma[r] = true
				if r == m.Hi {
					break
				}
			}
		}
	case regex.Union, regex.Concat:
		collectAlphabet(n.Left, sigma)
		collectAlphabet(n.Right, sigma)
	case regex.Star:
		collectAlphabet(n.Left, sigma)
	}
}
