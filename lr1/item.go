// Package lr1 implements the lazy LR(1) engine: items, canonical states,
// closure, memoized GOTO, the precedence-aware action resolver, and the
// shift/reduce driver itself.
package lr1

import (
	"fmt"
	"strings"

	"github.com/dekarrin/lrlazy/grammar"
)

// Item is an LR(1) item: a production, a dot position in [0, len(body)],
// and a single-terminal lookahead. Two items are equal iff all three
// components match.
type Item struct {
	Production grammar.Production
	Dot        int
	Lookahead  grammar.Terminal
}

// NewItem returns the item [production, dot, lookahead]. dot must be in
// [0, len(production.Body)].
func NewItem(prod grammar.Production, dot int, lookahead grammar.Terminal) Item {
	if dot < 0 || dot > len(prod.Body) {
		panic(fmt.Sprintf("lr1: dot position %d out of range for production %q", dot, prod.String()))
	}
	return Item{Production: prod, Dot: dot, Lookahead: lookahead}
}

// Equal returns whether two items have the same production identity, dot
// position, and lookahead.
func (i Item) Equal(o Item) bool {
	return i.Production.Equal(o.Production) && i.Dot == o.Dot && i.Lookahead.Equal(o.Lookahead)
}

// Completed returns whether the dot has reached the end of the body.
func (i Item) Completed() bool {
	return i.Dot == len(i.Production.Body)
}

// NextSymbol returns the symbol immediately to the right of the dot, or nil
// if the item is completed.
func (i Item) NextSymbol() grammar.Symbol {
	if i.Completed() {
		return nil
	}
	return i.Production.Body[i.Dot]
}

// Advance returns the item with the dot moved one position to the right.
// Calling Advance on a completed item panics; callers are expected to check
// NextSymbol/Completed first (this only ever happens internally, in Goto,
// which always checks NextSymbol before advancing).
func (i Item) Advance() Item {
	return NewItem(i.Production, i.Dot+1, i.Lookahead)
}

// Rest returns the symbols remaining after the dot (the beta of
// [A -> alpha . beta, a]).
func (i Item) Rest() []grammar.Symbol {
	return i.Production.Body[i.Dot:]
}

// key is the string this item contributes to a State's canonicalization
// hash and to its human-readable display; it folds in the production's
// identity (not just its shape) so that two distinct productions with
// identical bodies never collapse into the same item.
func (i Item) key() string {
	var sb strings.Builder
	sb.WriteString(i.Production.ID())
	sb.WriteByte('@')
	fmt.Fprintf(&sb, "%d", i.Dot)
	sb.WriteByte('@')
	sb.WriteString(i.Lookahead.Name())
	return sb.String()
}

func (i Item) String() string {
	var sb strings.Builder
	sb.WriteString(i.Production.Head.Name())
	sb.WriteString(" -> ")
	for idx, sym := range i.Production.Body {
		if idx == i.Dot {
			sb.WriteString(". ")
		}
		sb.WriteString(sym.Name())
		sb.WriteByte(' ')
	}
	if i.Dot == len(i.Production.Body) {
		sb.WriteString(".")
	} else {
		// trim the trailing space left by the loop above
		s := sb.String()
		sb.Reset()
		sb.WriteString(strings.TrimRight(s, " "))
	}
	sb.WriteString(", ")
	sb.WriteString(i.Lookahead.Name())
	return sb.String()
}
