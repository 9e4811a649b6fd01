package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/lrlazy/grammar"
	"github.com/dekarrin/lrlazy/lr1"
)

// runREPL drives an interactive session over the lazy driver built from the
// sample grammar: the user types whitespace-separated `name[:value]` tokens
// on one line, the line is parsed as a single input, and the trace of every
// shift/reduce/GOTO decision is printed as it happens, grounded in the
// teacher's own interactive-session pattern (cmd/tqi + internal/input's
// InteractiveCommandReader) but driving a parser instead of a game engine.
func runREPL(precedenceFile string) int {
	g, basePrec := sampleGrammar()
	prec, err := loadPrecedenceOverrides(precedenceFile, basePrec)
	if err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
		return 1
	}

	d, err := lr1.NewDriver(g, prec)
	if err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: "lrlazy> "})
	if err != nil {
		fmt.Fprintf(defaultStderr, "ERROR: create readline: %s\n", err)
		return 1
	}
	defer rl.Close()

	fmt.Println("lrlazy interactive driver; enter whitespace-separated name[:value] tokens, or 'quit'.")

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return 0
			}
			fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return 0
		}

		toks, err := parseLine(line)
		if err != nil {
			fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
			continue
		}

		d.RegisterTraceListener(func(s string) { fmt.Println("  " + s) })

		result, err := d.Parse(toks, replEvaluator{})
		if err != nil {
			fmt.Fprintf(defaultStderr, "ERROR: %s\n", err)
			continue
		}
		fmt.Printf("=> %v\n", result)
	}
}

// lineStream adapts a fixed slice of tokens, parsed from one REPL line,
// into a grammar.TokenStream.
type lineStream struct {
	toks []grammar.Token
	pos  int
}

func (s *lineStream) Next() grammar.Token {
	if s.pos >= len(s.toks) {
		return grammar.NewToken(grammar.EOF, "")
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok
}

func parseLine(line string) (*lineStream, error) {
	fields := strings.Fields(line)
	toks := make([]grammar.Token, 0, len(fields))
	for _, f := range fields {
		name, value, _ := strings.Cut(f, ":")
		if name == "" {
			return nil, fmt.Errorf("empty token name in %q", f)
		}
		toks = append(toks, grammar.NewToken(grammar.NewTerminal(name), value))
	}
	return &lineStream{toks: toks}, nil
}

// replEvaluator renders shifted terminals as their matched text and
// reduced productions as a fully-parenthesized string, purely for REPL
// display purposes.
type replEvaluator struct{}

func (replEvaluator) EvaluateTerminal(tok grammar.Token) (interface{}, error) {
	if tok.Value() != "" {
		return tok.Value(), nil
	}
	return tok.Terminal().Name(), nil
}

func (replEvaluator) EvaluateProduction(prod grammar.Production, values []interface{}) (interface{}, error) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "(" + strings.Join(parts, " ") + ")", nil
}
