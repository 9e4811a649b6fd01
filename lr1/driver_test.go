package lr1_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/dekarrin/lrlazy/grammar"
	"github.com/dekarrin/lrlazy/lr1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceStream is a TokenStream over a fixed slice of tokens, returning EOF
// forever once exhausted.
type sliceStream struct {
	toks []grammar.Token
	pos  int
}

func tokensOf(toks ...grammar.Token) *sliceStream {
	return &sliceStream{toks: toks}
}

func (s *sliceStream) Next() grammar.Token {
	if s.pos >= len(s.toks) {
		return grammar.NewToken(grammar.EOF, "")
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok
}

// funcEvaluator adapts two plain functions to the Evaluator interface, so
// each test can supply only the behavior it cares about.
type funcEvaluator struct {
	term func(grammar.Token) (interface{}, error)
	prod func(grammar.Production, []interface{}) (interface{}, error)
}

func (f funcEvaluator) EvaluateTerminal(tok grammar.Token) (interface{}, error) {
	return f.term(tok)
}

func (f funcEvaluator) EvaluateProduction(prod grammar.Production, values []interface{}) (interface{}, error) {
	return f.prod(prod, values)
}

func TestDriver_NumLiteral(t *testing.T) {
	e := grammar.NewNonTerminal("E")
	num := grammar.NewTerminal("num")
	pNum := grammar.NewProduction(e, num)

	g, err := grammar.NewGrammar(e, pNum)
	require.NoError(t, err)

	d, err := lr1.NewDriver(g, grammar.NewPrecedenceMap())
	require.NoError(t, err)

	ev := funcEvaluator{
		term: func(tok grammar.Token) (interface{}, error) {
			return strconv.Atoi(tok.Value())
		},
		prod: func(prod grammar.Production, values []interface{}) (interface{}, error) {
			return values[0], nil
		},
	}

	result, err := d.Parse(tokensOf(grammar.NewToken(num, "42")), ev)
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

// arithDriver builds +, *, ^ over num with + and * left-associative and ^
// right-associative, and * binding tighter than +, which binds tighter
// than ^ is deliberately NOT the case here — ^ is given the highest level
// to test right-associativity cleanly, * the middle level, + the lowest.
func arithDriver(t *testing.T) (*lr1.Driver, grammar.Production, grammar.Production, grammar.Production, grammar.Production) {
	t.Helper()
	e := grammar.NewNonTerminal("E")
	plus := grammar.NewTerminal("+")
	star := grammar.NewTerminal("*")
	caret := grammar.NewTerminal("^")
	num := grammar.NewTerminal("num")

	pPlus := grammar.NewProduction(e, e, plus, e)
	pStar := grammar.NewProduction(e, e, star, e)
	pCaret := grammar.NewProduction(e, e, caret, e)
	pNum := grammar.NewProduction(e, num)

	g, err := grammar.NewGrammar(e, pPlus, pStar, pCaret, pNum)
	require.NoError(t, err)

	plusPrec, _ := grammar.NewPrecedence(1, grammar.LeftAssoc)
	starPrec, _ := grammar.NewPrecedence(2, grammar.LeftAssoc)
	caretPrec, _ := grammar.NewPrecedence(3, grammar.RightAssoc)

	prec := grammar.NewPrecedenceMap().
		WithTerminal(plus, plusPrec).
		WithTerminal(star, starPrec).
		WithTerminal(caret, caretPrec)

	d, err := lr1.NewDriver(g, prec)
	require.NoError(t, err)

	return d, pPlus, pStar, pCaret, pNum
}

// arithEvaluator builds a fully-parenthesized string rendering of the parse,
// so associativity and precedence decisions are directly observable in the
// result shape.
func arithEvaluator(pPlus, pStar, pCaret, pNum grammar.Production) lr1.Evaluator {
	return funcEvaluator{
		term: func(tok grammar.Token) (interface{}, error) {
			if tok.Terminal().Name() == "num" {
				return tok.Value(), nil
			}
			return nil, nil
		},
		prod: func(prod grammar.Production, values []interface{}) (interface{}, error) {
			switch {
			case prod.Equal(pNum):
				return values[0], nil
			case prod.Equal(pPlus):
				return fmt.Sprintf("(%v+%v)", values[0], values[2]), nil
			case prod.Equal(pStar):
				return fmt.Sprintf("(%v*%v)", values[0], values[2]), nil
			case prod.Equal(pCaret):
				return fmt.Sprintf("(%v^%v)", values[0], values[2]), nil
			}
			// the augmented start production S' -> E reduces here too; pass
			// its single value through unchanged.
			return values[0], nil
		},
	}
}

func numTok(v string) grammar.Token { return grammar.NewToken(grammar.NewTerminal("num"), v) }
func opTok(s string) grammar.Token  { return grammar.NewToken(grammar.NewTerminal(s), s) }

func TestDriver_LeftAssociativePlus(t *testing.T) {
	d, pPlus, pStar, pCaret, pNum := arithDriver(t)
	ev := arithEvaluator(pPlus, pStar, pCaret, pNum)

	// 1 + 2 + 3 should associate as (1+2)+3.
	toks := tokensOf(numTok("1"), opTok("+"), numTok("2"), opTok("+"), numTok("3"))
	result, err := d.Parse(toks, ev)
	require.NoError(t, err)
	assert.Equal(t, "((1+2)+3)", result)
}

func TestDriver_PlusTimesPrecedence(t *testing.T) {
	d, pPlus, pStar, pCaret, pNum := arithDriver(t)
	ev := arithEvaluator(pPlus, pStar, pCaret, pNum)

	// 1 + 2 * 3 should associate as 1+(2*3), * binds tighter.
	toks := tokensOf(numTok("1"), opTok("+"), numTok("2"), opTok("*"), numTok("3"))
	result, err := d.Parse(toks, ev)
	require.NoError(t, err)
	assert.Equal(t, "(1+(2*3))", result)
}

func TestDriver_RightAssociativeCaret(t *testing.T) {
	d, pPlus, pStar, pCaret, pNum := arithDriver(t)
	ev := arithEvaluator(pPlus, pStar, pCaret, pNum)

	// 2 ^ 3 ^ 2 should associate as 2^(3^2).
	toks := tokensOf(numTok("2"), opTok("^"), numTok("3"), opTok("^"), numTok("2"))
	result, err := d.Parse(toks, ev)
	require.NoError(t, err)
	assert.Equal(t, "(2^(3^2))", result)
}

func TestDriver_SyntaxErrorReportsExpected(t *testing.T) {
	d, _, _, _, _ := arithDriver(t)
	ev := funcEvaluator{
		term: func(tok grammar.Token) (interface{}, error) { return tok.Value(), nil },
		prod: func(prod grammar.Production, values []interface{}) (interface{}, error) { return nil, nil },
	}

	// a bare '+' can never start an expression.
	toks := tokensOf(opTok("+"))
	_, err := d.Parse(toks, ev)
	require.Error(t, err)
	// only num can start an expression, so it is the sole expected terminal.
	assert.Contains(t, err.Error(), "expected num")
}

// danglingElseGrammar builds the classic ambiguous if/then/else grammar and
// returns its driver plus the three productions, to verify the policy's
// default-to-shift rule resolves "else" by binding to the nearest
// unmatched "if", matching the teacher's own yacc-style precedence
// defaults.
func danglingElseGrammar(t *testing.T) (*lr1.Driver, grammar.Production, grammar.Production, grammar.Production) {
	t.Helper()
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

	d, err := lr1.NewDriver(g, grammar.NewPrecedenceMap())
	require.NoError(t, err)

	return d, pIf, pIfElse, pOther
}

func TestDriver_DanglingElseBindsToNearestIf(t *testing.T) {
	d, pIf, pIfElse, pOther := danglingElseGrammar(t)

	ev := funcEvaluator{
		term: func(tok grammar.Token) (interface{}, error) { return nil, nil },
		prod: func(prod grammar.Production, values []interface{}) (interface{}, error) {
			switch {
			case prod.Equal(pOther):
				return "other", nil
			case prod.Equal(pIf):
				return fmt.Sprintf("if(%v)", values[3]), nil
			case prod.Equal(pIfElse):
				return fmt.Sprintf("ifelse(%v,%v)", values[3], values[5]), nil
			}
			// the augmented start production S' -> Stmt reduces here too;
			// pass its single value through unchanged.
			return values[0], nil
		},
	}

	term := func(name string) grammar.Token { return grammar.NewToken(grammar.NewTerminal(name), name) }

	// if expr then if expr then other else other
	toks := tokensOf(
		term("if"), term("expr"), term("then"),
		term("if"), term("expr"), term("then"), term("other"),
		term("else"), term("other"),
	)

	result, err := d.Parse(toks, ev)
	require.NoError(t, err)
	assert.Equal(t, "if(ifelse(other,other))", result)
}

func TestDriver_ParseEvents(t *testing.T) {
	e := grammar.NewNonTerminal("E")
	num := grammar.NewTerminal("num")
	pNum := grammar.NewProduction(e, num)
	g, err := grammar.NewGrammar(e, pNum)
	require.NoError(t, err)

	d, err := lr1.NewDriver(g, grammar.NewPrecedenceMap())
	require.NoError(t, err)

	var shifted []string
	var reduced []string
	listener := recordingListener{
		onShift:  func(tok grammar.Token) { shifted = append(shifted, tok.String()) },
		onReduce: func(prod grammar.Production) { reduced = append(reduced, prod.String()) },
	}

	err = d.ParseEvents(tokensOf(numTok("7")), listener)
	require.NoError(t, err)
	assert.Len(t, shifted, 1)
	assert.Len(t, reduced, 2) // E -> num, then the augmented start
}

type recordingListener struct {
	onShift  func(grammar.Token)
	onReduce func(grammar.Production)
}

func (l recordingListener) OnShift(tok grammar.Token)     { l.onShift(tok) }
func (l recordingListener) OnReduce(prod grammar.Production) { l.onReduce(prod) }
