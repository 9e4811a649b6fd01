package lalr

import (
	"fmt"

	"github.com/dekarrin/lrlazy/automaton"
	"github.com/dekarrin/lrlazy/grammar"
)

// Verify builds the LR(0) automaton for g (via automaton.NewLR0Automaton),
// computes FIRST/FOLLOW over the same augmented grammar, and for every
// state derives candidate actions exactly as the distilled spec describes:
// a completed item [A -> gamma ., _] contributes a reduce candidate for
// every terminal in FOLLOW(A), and every item with a terminal immediately
// right of the dot contributes (via the automaton's GOTO) a shift. Every
// (state, lookahead) pair admitting more than one candidate action is
// resolved with grammar.ResolveConflict — the same function lr1.Engine.Action
// uses at runtime, so the verifier can never disagree with the driver about
// what a grammar actually does — and is also reported to sink, since a
// resolved conflict is still a conflict a grammar author should know about.
//
// Verify returns a non-nil error only for a structural failure (the
// augmented grammar, precedence map, or FIRST/FOLLOW computation could not
// be built); conflicts themselves are never reported as errors, only to
// sink.
func Verify(g grammar.Grammar, prec grammar.PrecedenceMap, sink Sink) error {
	auto, _ := automaton.NewLR0Automaton(g)

	completed := prec.Completed(auto.Grammar)
	first := grammar.ComputeFirst(auto.Grammar)
	follow := grammar.ComputeFollow(auto.Grammar, first)

	lookaheads := append([]grammar.Terminal(nil), auto.Grammar.Terminals()...)
	lookaheads = append(lookaheads, grammar.EOF)

	for _, s := range auto.States() {
		for _, t := range lookaheads {
			reduceCandidates := reduceCandidatesFor(s, t, follow)
			reduceCandidates = grammar.SortByDeclarationOrder(auto.Grammar, reduceCandidates)
			_, hasShift := auto.Goto(s, t)

			total := len(reduceCandidates)
			if hasShift {
				total++
			}
			if total < 2 {
				continue
			}

			kind, winner := grammar.ResolveConflict(completed, hasShift, reduceCandidates, t)

			c := Conflict{
				Mode:       LALR1,
				StateID:    s.ID(),
				State:      s.String(),
				Lookahead:  t,
				Candidates: reduceCandidates,
				ShiftWas:   hasShift,
			}
			if len(reduceCandidates) >= 2 {
				c.Kind = ReduceReduce
			} else {
				c.Kind = ShiftReduce
			}

			switch kind {
			case grammar.ConflictShift:
				c.Resolution = "shift"
			default:
				c.Resolution = fmt.Sprintf("reduce %s", winner.String())
			}

			sink.Conflict(c)
		}
	}

	return nil
}

func reduceCandidatesFor(s *automaton.State, t grammar.Terminal, follow grammar.FollowSets) []grammar.Production {
	var out []grammar.Production
	for _, item := range s.Items() {
		if !item.Completed() {
			continue
		}
		if follow.Of(item.Production.Head).Has(t) {
			out = append(out, item.Production)
		}
	}
	return out
}
