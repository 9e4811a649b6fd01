package lr1

import (
	"github.com/dekarrin/lrlazy/grammar"
)

// transitionKey and actionKey are the memoization keys for the per-engine
// GOTO and ACTION caches.
type transitionKey struct {
	from int
	sym  symbolIdentity
}

type actionKey struct {
	state      int
	lookahead  string
}

type symbolIdentity struct {
	terminal bool
	name     string
}

func identityOf(s grammar.Symbol) symbolIdentity {
	return symbolIdentity{terminal: s.IsTerminal(), name: s.Name()}
}

// Engine is the lazy LR(1) engine: it holds the grammar being parsed (in
// augmented form), the completed precedence map, the precomputed FIRST
// sets, and the three caches described in the spec's concurrency model
// (canonical-state registry, transition table, action table). All three
// caches grow monotonically over the lifetime of the Engine and are safe to
// reuse across parses only if the caller serializes access to a single
// Engine — see Driver, which owns exactly one Engine per parser instance.
type Engine struct {
	grammar    grammar.Grammar // augmented
	original   grammar.Grammar
	startProd  grammar.Production
	precedence grammar.PrecedenceMap // completed
	first      grammar.FirstSets

	reg         *registry
	transitions map[transitionKey]*State
	actions     map[actionKey]resolvedAction

	initial *State
}

// NewEngine constructs the lazy engine for g under precedence map prec. It
// performs the one-time construction steps from the spec's driver
// initialization: completing the precedence map, building the augmented
// start production, and seeding the initial state as the closure of
// {[S' -> . S, EOF]}.
func NewEngine(g grammar.Grammar, prec grammar.PrecedenceMap) (*Engine, error) {
	augmented, startProd := g.Augmented()
	completed := prec.Completed(augmented)
	first := grammar.ComputeFirst(augmented)

	e := &Engine{
		grammar:     augmented,
		original:    g,
		startProd:   startProd,
		precedence:  completed,
		first:       first,
		reg:         newRegistry(),
		transitions: map[transitionKey]*State{},
		actions:     map[actionKey]resolvedAction{},
	}

	seed := []Item{NewItem(startProd, 0, grammar.EOF)}
	e.initial = e.reg.canonicalize(closure(e.grammar, e.first, seed))

	return e, nil
}

// Grammar returns the original (non-augmented) grammar the engine was built
// from.
func (e *Engine) Grammar() grammar.Grammar { return e.original }

// Initial returns the engine's initial state.
func (e *Engine) Initial() *State { return e.initial }

// StartProduction returns the synthetic augmented-start production S' -> S;
// reducing it is what the driver treats as acceptance.
func (e *Engine) StartProduction() grammar.Production { return e.startProd }

// Goto computes, or returns the memoized result of, shifting symbol x from
// state s. It returns (nil, false) if no item in s has x immediately right
// of the dot — the spec's "undefined" GOTO case.
//
// Per the canonicalization invariant, two calls that would produce the same
// resulting item set always return the identical *State pointer.
func (e *Engine) Goto(s *State, x grammar.Symbol) (*State, bool) {
	tk := transitionKey{from: s.id, sym: identityOf(x)}
	if cached, ok := e.transitions[tk]; ok {
		if cached == nil {
			return nil, false
		}
		return cached, true
	}

	var kernel []Item
	for _, item := range s.items {
		next := item.NextSymbol()
		if next != nil && grammar.SymbolEqual(next, x) {
			kernel = append(kernel, item.Advance())
		}
	}

	if len(kernel) == 0 {
		e.transitions[tk] = nil
		return nil, false
	}

	closed := closure(e.grammar, e.first, kernel)
	result := e.reg.canonicalize(closed)
	e.transitions[tk] = result
	return result, true
}

// States returns every state the engine has canonicalized so far, in the
// order they were first created. It is a diagnostic surface (tracing, the
// cmd/lrlazy CLI); the lazy engine makes no promise about which states will
// exist at any given time other than "at least those reachable from the
// tokens consumed so far."
func (e *Engine) States() []*State {
	return e.reg.states()
}
