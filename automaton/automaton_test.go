package automaton_test

import (
	"testing"

	"github.com/dekarrin/lrlazy/automaton"
	"github.com/dekarrin/lrlazy/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arithGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	e := grammar.NewNonTerminal("E")
	plus := grammar.NewTerminal("+")
	num := grammar.NewTerminal("num")

	pPlus := grammar.NewProduction(e, e, plus, e)
	pNum := grammar.NewProduction(e, num)

	g, err := grammar.NewGrammar(e, pPlus, pNum)
	require.NoError(t, err)
	return g
}

func TestNewLR0Automaton_ExploresReachableStates(t *testing.T) {
	g := arithGrammar(t)
	auto, startProd := automaton.NewLR0Automaton(g)

	require.NotNil(t, auto.Start)
	assert.NotEmpty(t, auto.States())

	// the start state must contain the seed item for the augmented start
	// production with the dot at position 0.
	found := false
	for _, it := range auto.Start.Items() {
		if it.Production.Equal(startProd) && it.Dot == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAutomaton_GotoIsCanonical(t *testing.T) {
	g := arithGrammar(t)
	auto, _ := automaton.NewLR0Automaton(g)

	num := grammar.NewTerminal("num")
	s1, ok1 := auto.Goto(auto.Start, num)
	require.True(t, ok1)
	s2, ok2 := auto.Goto(auto.Start, num)
	require.True(t, ok2)
	assert.Same(t, s1, s2)
}

func TestAutomaton_NoTransitionOnUnusedSymbol(t *testing.T) {
	g := arithGrammar(t)
	auto, _ := automaton.NewLR0Automaton(g)

	_, ok := auto.Goto(auto.Start, grammar.NewTerminal("nonexistent"))
	assert.False(t, ok)
}

func TestAutomaton_String(t *testing.T) {
	g := arithGrammar(t)
	auto, _ := automaton.NewLR0Automaton(g)
	s := auto.String()
	assert.Contains(t, s, "START:")
}
