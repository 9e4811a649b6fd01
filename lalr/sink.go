package lalr

import (
	"github.com/dekarrin/lrlazy/grammar"
	"github.com/dekarrin/rosed"
)

// ConflictKind distinguishes the two ways a state/lookahead pair can admit
// more than one viable action.
type ConflictKind int

const (
	// ShiftReduce means at least one reduce candidate and a shift both
	// applied at this (state, lookahead); the policy's resolution is
	// recorded in Resolution.
	ShiftReduce ConflictKind = iota
	// ReduceReduce means two or more productions could both reduce on this
	// lookahead; Resolution names the one the policy picked.
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// Conflict describes one unresolved ambiguity found while verifying a
// grammar: a state where more than one action applied for some lookahead,
// before the precedence policy narrowed it down to a single winner.
type Conflict struct {
	Mode       Mode
	StateID    int
	State      string
	Lookahead  grammar.Terminal
	Kind       ConflictKind
	Candidates []grammar.Production // every reduce candidate that applied here
	ShiftWas   bool                 // whether a shift also applied here
	Resolution string                // human-readable description of what the policy picked
}

// Sink receives every conflict Verify finds. Implementations are free to
// collect them, log them, or print them (the cmd/lrlazy CLI's `verify`
// subcommand renders them as a pterm table); Verify makes no judgment about
// whether a conflict should halt anything; it only reports.
type Sink interface {
	Conflict(c Conflict)
}

// CollectingSink is a Sink that simply accumulates every conflict reported
// to it, for callers (and tests) that want the whole list rather than a
// streaming callback.
type CollectingSink struct {
	Conflicts []Conflict
}

func (s *CollectingSink) Conflict(c Conflict) {
	s.Conflicts = append(s.Conflicts, c)
}

// String renders every collected conflict as a fixed-width table, the same
// shape the teacher's own table-construction dumpers (parse/clr1.go,
// parse/lalr.go) produce for their state/action tables, for callers that
// want plain text rather than the CLI's colored pterm rendering.
func (s *CollectingSink) String() string {
	data := [][]string{{"state", "lookahead", "kind", "resolution"}}
	for _, c := range s.Conflicts {
		data = append(data, []string{
			c.State,
			c.Lookahead.Name(),
			c.Kind.String(),
			c.Resolution,
		})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
