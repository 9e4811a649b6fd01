package lr1

import "github.com/dekarrin/lrlazy/grammar"

// closure computes the LR(1) closure of a seed item set against g, using
// first for the lookahead-propagation rule:
//
//	if [A -> alpha . B beta, a] is in the closure and B -> gamma is a
//	production, then for every terminal c in firstOfSequence(beta, a), add
//	[B -> . gamma, c].
//
// Iterated to a fixed point; duplicate (production, dot, lookahead) triples
// are collapsed. This is a pure function of its inputs — no canonical-state
// lookup happens here, that's the caller's job (see Engine.Goto in
// engine.go).
func closure(g grammar.Grammar, first grammar.FirstSets, seed []Item) []Item {
	seen := map[string]Item{}
	var worklist []Item

	for _, it := range seed {
		if _, ok := seen[it.key()]; !ok {
			seen[it.key()] = it
			worklist = append(worklist, it)
		}
	}

	for i := 0; i < len(worklist); i++ {
		item := worklist[i]
		next := item.NextSymbol()
		if next == nil || next.IsTerminal() {
			continue
		}
		b := next.(grammar.NonTerminal)
		beta := item.Rest()[1:]

		lookaheads := first.OfSequenceWithLookahead(beta, item.Lookahead)

		for _, prod := range g.ProductionsFor(b) {
			for _, c := range lookaheads.Slice() {
				newItem := NewItem(prod, 0, c)
				if _, ok := seen[newItem.key()]; !ok {
					seen[newItem.key()] = newItem
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return worklist
}
