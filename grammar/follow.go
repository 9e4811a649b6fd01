package grammar

// FollowSets is the computed FOLLOW(A) mapping for every non-terminal of a
// Grammar. It is used only by the offline LALR verifier (lalr package); the
// lazy runtime driver never needs FOLLOW because LR(1) lookaheads are
// carried on the items themselves.
type FollowSets struct {
	of map[symbolKey]TerminalSet
}

// Of returns FOLLOW(nt).
func (f FollowSets) Of(nt NonTerminal) TerminalSet {
	if set, ok := f.of[keyOf(nt)]; ok {
		return set
	}
	return newTerminalSet()
}

// ComputeFollow computes FOLLOW(A) for every non-terminal of g:
//
//   - FOLLOW(start) always contains EOF.
//   - For every production A -> alpha B beta, FIRST(beta) \ {epsilon} is
//     added to FOLLOW(B).
//   - If beta is nullable (including empty), FOLLOW(A) is added to
//     FOLLOW(B).
//
// Iterated to a fixed point.
func ComputeFollow(g Grammar, first FirstSets) FollowSets {
	follow := FollowSets{of: map[symbolKey]TerminalSet{}}

	for _, nt := range g.NonTerminals() {
		follow.of[keyOf(nt)] = newTerminalSet()
	}
	startSet := follow.of[keyOf(g.Start())]
	startSet.Add(EOF)
	follow.of[keyOf(g.Start())] = startSet

	changed := true
	for changed {
		changed = false
		for _, prod := range g.Productions() {
			for i, sym := range prod.Body {
				if sym.IsTerminal() {
					continue
				}
				b := sym.(NonTerminal)
				beta := prod.Body[i+1:]

				betaFirst := first.OfSequence(beta)
				bSet := follow.of[keyOf(b)]
				before := len(bSet)
				bSet.AddAll(betaFirst.WithoutEpsilon())

				if betaFirst.HasEpsilon() {
					bSet.AddAll(follow.of[keyOf(prod.Head)])
				}

				follow.of[keyOf(b)] = bSet
				if len(bSet) != before {
					changed = true
				}
			}
		}
	}

	return follow
}
