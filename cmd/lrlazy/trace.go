package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/lrlazy/grammar"
	"github.com/dekarrin/lrlazy/lr1"
	"github.com/dekarrin/rezi"
)

// traceEvent is one shift or reduce decision made while driving the sample
// grammar, kept deliberately flat so it round-trips through REZI without any
// custom binary encoding logic of its own.
type traceEvent struct {
	Kind     string // "shift" or "reduce"
	Terminal string // populated for shift events
	Rule     string // populated for reduce events, the production's String()
}

type traceLog struct {
	Events []traceEvent
}

// demoInput is the fixed token sequence traced by the trace subcommand:
// num + num * num, which requires the precedence table to resolve the
// shift/reduce choice between + and * correctly.
func demoInput() []grammar.Token {
	return []grammar.Token{
		grammar.NewToken(grammar.NewTerminal("num"), "1"),
		grammar.NewToken(grammar.NewTerminal("+"), "+"),
		grammar.NewToken(grammar.NewTerminal("num"), "2"),
		grammar.NewToken(grammar.NewTerminal("*"), "*"),
		grammar.NewToken(grammar.NewTerminal("num"), "3"),
	}
}

type sliceStream struct {
	toks []grammar.Token
	pos  int
}

func (s *sliceStream) Next() grammar.Token {
	if s.pos >= len(s.toks) {
		return grammar.NewToken(grammar.EOF, "")
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok
}

// recordingListener appends every shift/reduce event it observes to log, in
// the teacher's own listener-over-channel-of-events style, adapted here to
// a plain in-memory slice since the trace subcommand has no server loop to
// feed.
type recordingListener struct {
	log *traceLog
}

func (r recordingListener) OnShift(tok grammar.Token) {
	r.log.Events = append(r.log.Events, traceEvent{Kind: "shift", Terminal: tok.Terminal().Name()})
}

func (r recordingListener) OnReduce(prod grammar.Production) {
	r.log.Events = append(r.log.Events, traceEvent{Kind: "reduce", Rule: prod.String()})
}

func runTrace(path string) int {
	g, prec := sampleGrammar()

	d, err := lr1.NewDriver(g, prec)
	if err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
		return 1
	}

	log := &traceLog{}
	stream := &sliceStream{toks: demoInput()}
	if err := d.ParseEvents(stream, recordingListener{log: log}); err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
		return 1
	}

	data := rezi.EncBinary(log)
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: write %s: %s\n", path, err)
		return 1
	}

	fmt.Printf("wrote %d event(s) to %s\n", len(log.Events), path)
	return 0
}
