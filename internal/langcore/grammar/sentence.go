package grammar

import "strings"

// Sentence is a finite ordered sequence of symbols, §3. Invariant: if
// any symbol is Epsilon, the sentence has length exactly 1 — checked by
// Grammar.Validate, not by this type itself.
type Sentence []Symbol

// Equal reports element-wise equality.
func (s Sentence) Equal(o Sentence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// HasMacro reports whether any symbol in s is a macro placeholder.
func (s Sentence) HasMacro() bool {
	for _, sym := range s {
		if sym.IsMacro() {
			return true
		}
	}
	return false
}

// IsEpsilon reports whether s is the single-symbol epsilon sentence.
func (s Sentence) IsEpsilon() bool {
	return len(s) == 1 && s[0].Kind == EpsilonSym
}

func (s Sentence) String() string {
	parts := make([]string, len(s))
	for i, sym := range s {
		parts[i] = sym.String()
	}
	return strings.Join(parts, " ")
}
