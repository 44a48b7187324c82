package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DFA_AddStateDedup(t *testing.T) {
	assert := assert.New(t)

	d := New[rune, string]()
	id1, isNew1 := d.AddState("sigA", "A", false)
	id2, isNew2 := d.AddState("sigA", "A-again", false)

	assert.True(isNew1)
	assert.False(isNew2)
	assert.Equal(id1, id2)
	assert.Equal(1, d.NumStates())
}

func Test_DFA_TransitionsAndNext(t *testing.T) {
	assert := assert.New(t)

	d := New[rune, string]()
	start, _ := d.AddState("start", "start", false)
	end, _ := d.AddState("end", "end", true)
	d.Start = start
	d.AddTransition(start, 'a', end)

	next, ok := d.Next(start, 'a')
	assert.True(ok)
	assert.Equal(end, next)

	_, ok = d.Next(start, 'b')
	assert.False(ok)

	assert.True(d.State(end).Accepting)
}
