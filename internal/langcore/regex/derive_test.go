package regex

import (
	"testing"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/stretchr/testify/assert"
)

// Test_Matches_Soundness pins "Derivative soundness" (§8): for every
// pattern and every string tested, Matches via repeated derivation agrees
// with the pattern's intended language.
func Test_Matches_Soundness(t *testing.T) {
	testCases := []struct {
		name    string
		node    *Node
		accepts []string
		rejects []string
	}{
		{
			name:    "literal",
			node:    Lit('a'),
			accepts: []string{"a"},
			rejects: []string{"", "b", "aa"},
		},
		{
			name:    "star",
			node:    Rep(Lit('a')),
			accepts: []string{"", "a", "aaaa"},
			rejects: []string{"b", "ab"},
		},
		{
			name:    "concat",
			node:    Cat(Lit('a'), Lit('b')),
			accepts: []string{"ab"},
			rejects: []string{"", "a", "b", "abc"},
		},
		{
			name:    "union",
			node:    Alt(Lit('a'), Lit('b')),
			accepts: []string{"a", "b"},
			rejects: []string{"", "c", "ab"},
		},
		{
			name: "digits-plus",
			node: Cat(Class(charset.Ascii, false, ClassRange{Lo: '0', Hi: '9'}),
				Rep(Class(charset.Ascii, false, ClassRange{Lo: '0', Hi: '9'}))),
			accepts: []string{"0", "42", "100200"},
			rejects: []string{"", "a", "4a"},
		},
		{
			name:    "negated class",
			node:    Class(charset.Ascii, true, ClassRange{Lo: 'a', Hi: 'a'}),
			accepts: []string{"b"},
			rejects: []string{"a"},
		},
		{
			name:    "a | a b*  keeps both alternatives after simplification",
			node:    Alt(Lit('a'), Cat(Lit('a'), Rep(Lit('b')))),
			accepts: []string{"a", "ab", "abbb"},
			rejects: []string{"", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range tc.accepts {
				assert.Truef(t, Matches(tc.node, s), "expected %q to match %s", s, tc.node)
			}
			for _, s := range tc.rejects {
				assert.Falsef(t, Matches(tc.node, s), "expected %q NOT to match %s", s, tc.node)
			}
		})
	}
}

// Test_Derive_ContractEquivalence pins "matches(derive(r,c), w) ⇔ matches(r, c·w)".
func Test_Derive_ContractEquivalence(t *testing.T) {
	n := Cat(Lit('a'), Rep(Lit('b')))
	d := Derive(n, 'a', nil)
	assert.True(t, Matches(d, "bb"))
	assert.True(t, Matches(n, "abb"))
	assert.False(t, Matches(d, "a"))
	assert.False(t, Matches(n, "aa"))
}

func Test_Tracer_RecordsSteps(t *testing.T) {
	tr := &Tracer{}
	n := Cat(Lit('a'), Lit('b'))
	Derive(n, 'a', tr)
	assert.NotEmpty(t, tr.Derivations)
}
