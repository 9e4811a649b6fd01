package lr1

import (
	"testing"

	"github.com/dekarrin/lrlazy/grammar"
	"github.com/stretchr/testify/assert"
)

// TestRegistry_CanonicalizesEqualItemSets exercises the invariant GOTO
// relies on: two independently-built item slices with the same logical
// contents (but built as distinct slices/orders) must canonicalize to the
// very same *State pointer.
func TestRegistry_CanonicalizesEqualItemSets(t *testing.T) {
	e := grammar.NewNonTerminal("E")
	a := grammar.NewTerminal("a")
	prod := grammar.NewProduction(e, a)

	item1 := NewItem(prod, 1, grammar.EOF)
	item2 := NewItem(prod, 1, grammar.EOF)

	reg := newRegistry()
	s1 := reg.canonicalize([]Item{item1})
	s2 := reg.canonicalize([]Item{item2})

	assert.Same(t, s1, s2)
	assert.Len(t, reg.states(), 1)
}

func TestRegistry_DistinctItemSetsGetDistinctStates(t *testing.T) {
	e := grammar.NewNonTerminal("E")
	a := grammar.NewTerminal("a")
	b := grammar.NewTerminal("b")
	prod := grammar.NewProduction(e, a, b)

	reg := newRegistry()
	s1 := reg.canonicalize([]Item{NewItem(prod, 0, grammar.EOF)})
	s2 := reg.canonicalize([]Item{NewItem(prod, 1, grammar.EOF)})

	assert.NotSame(t, s1, s2)
	assert.Len(t, reg.states(), 2)
}

func TestEngine_GotoIsMemoizedAndCanonical(t *testing.T) {
	e := grammar.NewNonTerminal("E")
	num := grammar.NewTerminal("num")
	prod := grammar.NewProduction(e, num)
	g, err := grammar.NewGrammar(e, prod)
	assert.NoError(t, err)

	eng, err := NewEngine(g, grammar.NewPrecedenceMap())
	assert.NoError(t, err)

	s1, ok1 := eng.Goto(eng.Initial(), num)
	assert.True(t, ok1)
	s2, ok2 := eng.Goto(eng.Initial(), num)
	assert.True(t, ok2)
	assert.Same(t, s1, s2)

	_, ok3 := eng.Goto(eng.Initial(), grammar.NewTerminal("nonexistent"))
	assert.False(t, ok3)
}
