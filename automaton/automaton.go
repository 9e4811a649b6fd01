package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/lrlazy/grammar"
)

type transitionKey struct {
	from int
	term bool
	name string
}

// Automaton is the fully-materialized LR(0) characteristic machine for an
// (augmented) grammar: every reachable state and every transition between
// them, built breadth-first at construction time. Unlike lr1.Engine — which
// only ever builds the states a given parse actually visits — Automaton is
// meant for exhaustive offline analysis (package lalr's conflict
// verification, and String() dumps for diagnostics), so it always explores
// the whole reachable state space up front.
type Automaton struct {
	Grammar   grammar.Grammar // augmented
	Start     *State
	reg       *registry
	transitions map[transitionKey]*State
	order     []transitionKey
}

// NewLR0Automaton builds the LR(0) automaton for g's augmented grammar,
// returning it alongside the synthetic start production (reducing it is
// acceptance, exactly as in lr1.Engine.StartProduction).
func NewLR0Automaton(g grammar.Grammar) (*Automaton, grammar.Production) {
	augmented, startProd := g.Augmented()

	a := &Automaton{
		Grammar:     augmented,
		reg:         newRegistry(),
		transitions: map[transitionKey]*State{},
	}

	seed := []Item{NewItem(startProd, 0)}
	a.Start = a.reg.canonicalize(closure(augmented, seed))

	a.explore()

	return a, startProd
}

// explore performs a breadth-first traversal from Start, computing GOTO for
// every distinct symbol that appears immediately after a dot in any visited
// state, until no new states or transitions are discovered.
func (a *Automaton) explore() {
	visited := map[int]bool{}
	queue := []*State{a.Start}
	visited[a.Start.id] = true

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		for _, sym := range outgoingSymbols(s) {
			target, ok := a.gotoUncached(s, sym)
			if !ok {
				continue
			}
			tk := transitionKey{from: s.id, term: sym.IsTerminal(), name: sym.Name()}
			if _, already := a.transitions[tk]; !already {
				a.transitions[tk] = target
				a.order = append(a.order, tk)
			}
			if !visited[target.id] {
				visited[target.id] = true
				queue = append(queue, target)
			}
		}
	}
}

// outgoingSymbols returns, in a stable order, every distinct symbol
// immediately right of the dot across all of s's items.
func outgoingSymbols(s *State) []grammar.Symbol {
	seen := map[string]grammar.Symbol{}
	var keys []string
	for _, it := range s.items {
		sym := it.NextSymbol()
		if sym == nil {
			continue
		}
		k := fmt.Sprintf("%v|%s", sym.IsTerminal(), sym.Name())
		if _, ok := seen[k]; !ok {
			seen[k] = sym
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]grammar.Symbol, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}

func (a *Automaton) gotoUncached(s *State, x grammar.Symbol) (*State, bool) {
	var kernel []Item
	for _, item := range s.items {
		next := item.NextSymbol()
		if next != nil && grammar.SymbolEqual(next, x) {
			kernel = append(kernel, item.Advance())
		}
	}
	if len(kernel) == 0 {
		return nil, false
	}
	closed := closure(a.Grammar, kernel)
	return a.reg.canonicalize(closed), true
}

// Goto returns the (already-computed) transition from s on x, if one
// exists in the fully-explored automaton.
func (a *Automaton) Goto(s *State, x grammar.Symbol) (*State, bool) {
	tk := transitionKey{from: s.id, term: x.IsTerminal(), name: x.Name()}
	target, ok := a.transitions[tk]
	return target, ok
}

// States returns every state in the automaton, ordered by ID.
func (a *Automaton) States() []*State {
	return a.reg.states()
}

// String renders the automaton's states and transitions in the teacher's
// own DFA.String() style: one line per state, with its outgoing moves.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<START: %d, STATES:", a.Start.id)

	states := a.States()
	for i, s := range states {
		sb.WriteString("\n\t")
		fmt.Fprintf(&sb, "(%d %s [", s.id, s.String())

		var moves []string
		for _, tk := range a.order {
			if tk.from != s.id {
				continue
			}
			moves = append(moves, fmt.Sprintf("=(%s)=> %d", tk.name, a.transitions[tk].id))
		}
		sb.WriteString(strings.Join(moves, ", "))
		sb.WriteString("])")

		if i+1 < len(states) {
			sb.WriteRune(',')
		}
	}
	sb.WriteString("\n>")
	return sb.String()
}
