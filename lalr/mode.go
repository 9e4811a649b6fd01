// Package lalr offline-verifies a grammar against the same conflict
// resolution policy the lazy driver applies at runtime (package lr1),
// so a grammar author can find out about shift/reduce and reduce/reduce
// conflicts before ever running a token through the engine.
package lalr

// Mode names the table-construction strategy a verification report was
// produced under. The teacher's types.ParserType enumerated four
// strategies (LL(1), SLR(1), CLR(1), LALR(1)); this system implements only
// the last, so Mode carries just that one value — kept as a distinct type,
// rather than dropped entirely, so reports can self-describe their
// provenance and so a future strategy has somewhere to slot in without
// breaking the Sink contract.
type Mode string

// LALR1 is the only supported verification mode.
const LALR1 Mode = "LALR(1)"

func (m Mode) String() string { return string(m) }
