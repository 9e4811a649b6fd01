package grammar

// ConflictKind is the resolved action kind returned by ResolveConflict.
type ConflictKind int

const (
	// NoAction means neither a reduce candidate nor a shift target exists.
	NoAction ConflictKind = iota
	ConflictShift
	ConflictReduce
)

// ResolveConflict applies the full §4.4 policy to a single (state,
// lookahead) pair, given every reduce candidate found there (completed
// items whose lookahead equals the terminal in question) and whether a
// shift is also available. It is factored out of the runtime action
// resolver (lr1.Engine.Action) so the offline verifier (package lalr) can
// reuse the exact same decision procedure and never disagree with the
// driver about what a grammar does at runtime.
//
// winner is the zero Production when kind is NoAction.
func ResolveConflict(prec PrecedenceMap, hasShift bool, reduceCandidates []Production, lookahead Terminal) (kind ConflictKind, winner Production) {
	switch {
	case len(reduceCandidates) == 0 && !hasShift:
		return NoAction, Production{}

	case len(reduceCandidates) == 0:
		return ConflictShift, Production{}

	case !hasShift:
		return ConflictReduce, ResolveReduceReduce(prec, reduceCandidates)

	default:
		best := ResolveReduceReduce(prec, reduceCandidates)

		reducePrec, reduceExplicit := prec.Production(best)
		lookaheadPrec, lookaheadExplicit := prec.Terminal(lookahead)

		if PreferShift(best, reduceExplicit, reducePrec, lookahead, lookaheadPrec, lookaheadExplicit) {
			return ConflictShift, Production{}
		}
		return ConflictReduce, best
	}
}

// ResolveReduceReduce picks the production to reduce when two or more
// completed items with the same lookahead compete in the same state. The
// candidate with the highest precedence level wins; ties (including ties
// where neither has an explicit Precedence beyond the fallback) are broken
// by the order the candidates are given in. Callers must pass candidates
// already ordered by grammar declaration order — a State's item set is
// ordered by canonical sort key (see lr1/state.go, automaton/state.go), not
// by declaration order, so both lr1.Engine.resolveAction and lalr.Verify
// (on the output of reduceCandidatesFor) run candidates through
// grammar.SortByDeclarationOrder before calling this. No associativity is
// consulted, per the spec's §4.4 policy; this is marked in the spec's Open
// Questions as the one place the source under-specifies behavior.
func ResolveReduceReduce(prec PrecedenceMap, candidates []Production) Production {
	best := candidates[0]
	bestPrec, _ := prec.Production(best)
	for _, cand := range candidates[1:] {
		candPrec, _ := prec.Production(cand)
		if candPrec.Level > bestPrec.Level {
			best = cand
			bestPrec = candPrec
		}
	}
	return best
}

// PreferShift reports whether a shift/reduce conflict between reduceProd
// (the winning reduce candidate, already resolved via ResolveReduceReduce
// if more than one was available) and lookahead should resolve in favor of
// shifting, per the policy in §4.4:
//
//   - if either side lacks an explicit precedence entry, prefer shift
//     (classic yacc default);
//   - else compare levels, preferring the higher;
//   - on a tie, left associativity reduces, right associativity shifts.
//
// ResolveConflict passes the presence flags it reads from the Completed
// map, where every production of the grammar has an entry (explicit or
// derived by fallback), so reduceHasExplicit is true for those productions
// and the "absent" rule only fires when lookahead has no entry.
func PreferShift(reduceProd Production, reduceHasExplicit bool, reducePrec Precedence, lookahead Terminal, lookaheadPrec Precedence, lookaheadHasExplicit bool) bool {
	if !reduceHasExplicit || !lookaheadHasExplicit {
		return true
	}
	if reducePrec.Level > lookaheadPrec.Level {
		return false
	}
	if reducePrec.Level < lookaheadPrec.Level {
		return true
	}
	return reducePrec.Assoc == RightAssoc
}
