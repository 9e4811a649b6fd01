package lalr_test

import (
	"testing"

	"github.com/dekarrin/lrlazy/grammar"
	"github.com/dekarrin/lrlazy/lalr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_UnambiguousGrammarReportsNoConflicts(t *testing.T) {
	e := grammar.NewNonTerminal("E")
	num := grammar.NewTerminal("num")
	pNum := grammar.NewProduction(e, num)

	g, err := grammar.NewGrammar(e, pNum)
	require.NoError(t, err)

	sink := &lalr.CollectingSink{}
	err = lalr.Verify(g, grammar.NewPrecedenceMap(), sink)
	require.NoError(t, err)
	assert.Empty(t, sink.Conflicts)
}

func TestVerify_DanglingElseReportsShiftReduceConflict(t *testing.T) {
	stmt := grammar.NewNonTerminal("Stmt")
	ifTok := grammar.NewTerminal("if")
	exprTok := grammar.NewTerminal("expr")
	thenTok := grammar.NewTerminal("then")
	elseTok := grammar.NewTerminal("else")
	otherTok := grammar.NewTerminal("other")

	pIf := grammar.NewProduction(stmt, ifTok, exprTok, thenTok, stmt)
	pIfElse := grammar.NewProduction(stmt, ifTok, exprTok, thenTok, stmt, elseTok, stmt)
	pOther := grammar.NewProduction(stmt, otherTok)

	g, err := grammar.NewGrammar(stmt, pIf, pIfElse, pOther)
	require.NoError(t, err)

	sink := &lalr.CollectingSink{}
	err = lalr.Verify(g, grammar.NewPrecedenceMap(), sink)
	require.NoError(t, err)
	require.NotEmpty(t, sink.Conflicts)

	found := false
	for _, c := range sink.Conflicts {
		if c.Kind == lalr.ShiftReduce && c.Lookahead.Name() == "else" {
			found = true
			assert.Equal(t, "shift", c.Resolution)
			assert.Equal(t, lalr.LALR1, c.Mode)
		}
	}
	assert.True(t, found, "expected a reported shift/reduce conflict on 'else'")
}

func TestVerify_ReduceReduceConflictIsReported(t *testing.T) {
	// A grammar where two distinct productions can both reduce on the same
	// lookahead: S -> A | B, A -> x, B -> x.
	s := grammar.NewNonTerminal("S")
	a := grammar.NewNonTerminal("A")
	b := grammar.NewNonTerminal("B")
	x := grammar.NewTerminal("x")

	pA := grammar.NewProduction(s, a)
	pB := grammar.NewProduction(s, b)
	pAx := grammar.NewProduction(a, x)
	pBx := grammar.NewProduction(b, x)

	g, err := grammar.NewGrammar(s, pA, pB, pAx, pBx)
	require.NoError(t, err)

	sink := &lalr.CollectingSink{}
	err = lalr.Verify(g, grammar.NewPrecedenceMap(), sink)
	require.NoError(t, err)

	found := false
	for _, c := range sink.Conflicts {
		if c.Kind == lalr.ReduceReduce {
			found = true
		}
	}
	assert.True(t, found, "expected a reported reduce/reduce conflict")
}
