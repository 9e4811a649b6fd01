// Package automaton builds the LR(0) characteristic machine: the core
// item-set automaton shared by every LR table-construction strategy before
// lookaheads are layered on top. It exists as a standalone, reusable piece
// (mirroring the teacher's own automaton package, which the various parser
// table builders in the teacher's parse/ directory all shared) so the
// offline verifier in package lalr can explore it breadth-first and dump it
// for diagnostics without depending on the lazy LR(1) engine in package
// lr1 at all.
package automaton

import (
	"fmt"

	"github.com/dekarrin/lrlazy/grammar"
)

// Item is an LR(0) item: a production with a dot position and no
// lookahead.
type Item struct {
	Production grammar.Production
	Dot        int
}

// NewItem returns the item [Production -> body[:Dot] . body[Dot:]].
func NewItem(prod grammar.Production, dot int) Item {
	if dot < 0 || dot > len(prod.Body) {
		panic("automaton: dot position out of range for production")
	}
	return Item{Production: prod, Dot: dot}
}

// Completed returns whether the dot has reached the end of the body.
func (i Item) Completed() bool { return i.Dot >= len(i.Production.Body) }

// NextSymbol returns the symbol immediately right of the dot, or nil if
// Completed.
func (i Item) NextSymbol() grammar.Symbol {
	if i.Completed() {
		return nil
	}
	return i.Production.Body[i.Dot]
}

// Advance returns the item with the dot moved one position to the right.
// Panics if already Completed.
func (i Item) Advance() Item {
	if i.Completed() {
		panic("automaton: cannot advance a completed item")
	}
	return Item{Production: i.Production, Dot: i.Dot + 1}
}

func (i Item) Equal(o Item) bool {
	return i.Production.Equal(o.Production) && i.Dot == o.Dot
}

func (i Item) key() string {
	return fmt.Sprintf("%s@%d", i.Production.ID(), i.Dot)
}

func (i Item) String() string {
	head := i.Production.Head.Name()
	var body string
	for idx, sym := range i.Production.Body {
		if idx == i.Dot {
			body += ". "
		}
		body += sym.Name() + " "
	}
	if i.Completed() {
		body += "."
	}
	if len(i.Production.Body) == 0 {
		body = "."
	}
	return fmt.Sprintf("%s -> %s", head, body)
}
