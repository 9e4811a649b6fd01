package main

import "github.com/dekarrin/lrlazy/grammar"

// sampleGrammar returns the built-in demo grammar: a classic ambiguous
// arithmetic expression grammar (E -> E + E | E * E | E ^ E | ( E ) | num),
// plus its default precedence table. It is deliberately ambiguous on paper
// (three binary productions all headed by E, all able to shift or reduce
// into one another) so that running `verify` against it, with no
// precedence overrides applied, finds real conflicts for the override file
// to resolve.
func sampleGrammar() (grammar.Grammar, grammar.PrecedenceMap) {
	e := grammar.NewNonTerminal("E")

	plus := grammar.NewTerminal("+")
	star := grammar.NewTerminal("*")
	caret := grammar.NewTerminal("^")
	lparen := grammar.NewTerminal("(")
	rparen := grammar.NewTerminal(")")
	num := grammar.NewTerminal("num")

	pPlus := grammar.NewProduction(e, e, plus, e)
	pStar := grammar.NewProduction(e, e, star, e)
	pCaret := grammar.NewProduction(e, e, caret, e)
	pParen := grammar.NewProduction(e, lparen, e, rparen)
	pNum := grammar.NewProduction(e, num)

	g, err := grammar.NewGrammar(e, pPlus, pStar, pCaret, pParen, pNum)
	if err != nil {
		// the sample grammar is fixed at compile time and always valid.
		panic(err)
	}

	plusPrec, _ := grammar.NewPrecedence(1, grammar.LeftAssoc)
	starPrec, _ := grammar.NewPrecedence(2, grammar.LeftAssoc)
	caretPrec, _ := grammar.NewPrecedence(3, grammar.RightAssoc)

	prec := grammar.NewPrecedenceMap().
		WithTerminal(plus, plusPrec).
		WithTerminal(star, starPrec).
		WithTerminal(caret, caretPrec)

	return g, prec
}
