package automaton

import "github.com/dekarrin/lrlazy/grammar"

// closure computes the LR(0) closure of seed against g: for every item
// [A -> alpha . B beta] with B a non-terminal, add [B -> . gamma] for every
// production of B, to a fixed point. No lookahead propagation is involved —
// that is entirely lr1's concern (see lr1/closure.go), which exists
// independently of this package.
func closure(g grammar.Grammar, seed []Item) []Item {
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

		for _, prod := range g.ProductionsFor(b) {
			newItem := NewItem(prod, 0)
			if _, ok := seen[newItem.key()]; !ok {
				seen[newItem.key()] = newItem
				worklist = append(worklist, newItem)
			}
		}
	}

	return worklist
}
