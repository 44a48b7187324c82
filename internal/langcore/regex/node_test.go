package regex

import (
	"testing"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/stretchr/testify/assert"
)

func Test_Nullable(t *testing.T) {
	testCases := []struct {
		name   string
		node   *Node
		expect bool
	}{
		{name: "epsilon", node: Eps(), expect: true},
		{name: "empty set", node: Empty(), expect: false},
		{name: "literal", node: Lit('a'), expect: false},
		{name: "class", node: Class(charset.Ascii, false, ClassRange{Lo: 'a', Hi: 'z'}), expect: false},
		{name: "any", node: Any(charset.Ascii), expect: false},
		{name: "union of two non-nullable", node: Alt(Lit('a'), Lit('b')), expect: false},
		{name: "union with nullable branch", node: Alt(Eps(), Lit('b')), expect: true},
		{name: "concat of two non-nullable", node: Cat(Lit('a'), Lit('b')), expect: false},
		{name: "concat with one non-nullable", node: Cat(Eps(), Lit('b')), expect: false},
		{name: "concat both nullable", node: Cat(Eps(), Eps()), expect: true},
		{name: "star", node: Rep(Lit('a')), expect: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Nullable(tc.node))
		})
	}
}

func Test_Node_Equal(t *testing.T) {
	assert := assert.New(t)

	assert.True(Lit('a').Equal(Lit('a')))
	assert.False(Lit('a').Equal(Lit('b')))
	assert.True(Eps().Equal(Eps()))
	assert.True(Empty().Equal(Empty()))
	assert.False(Eps().Equal(Empty()))
	assert.True(Alt(Lit('a'), Lit('b')).Equal(Alt(Lit('a'), Lit('b'))))
	assert.False(Alt(Lit('a'), Lit('b')).Equal(Alt(Lit('b'), Lit('a'))))
	assert.True(Rep(Lit('a')).Equal(Rep(Lit('a'))))

	c1 := Class(charset.Ascii, false, ClassRange{Lo: 'a', Hi: 'z'})
	c2 := Class(charset.Ascii, false, ClassRange{Lo: 'a', Hi: 'z'})
	c3 := Class(charset.Ascii, true, ClassRange{Lo: 'a', Hi: 'z'})
	assert.True(c1.Equal(c2))
	assert.False(c1.Equal(c3))
}
