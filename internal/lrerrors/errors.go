// Package lrerrors defines the error taxonomy used throughout the lazy LR
// engine: construction-time precondition failures, runtime syntax errors,
// and internal invariant violations. The shape (a technical message, an
// optional wrapped cause, and Unwrap support) mirrors the teacher's own
// tqerrors package.
package lrerrors

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// ConstructionError is raised eagerly when a grammar or precedence entry
// violates a precondition (missing start symbol, negative precedence
// level). An empty symbol name is not reported this way: NewTerminal and
// NewNonTerminal panic on it. It is never raised once a Grammar or
// PrecedenceMap has been successfully constructed.
type ConstructionError struct {
	msg string
}

func (e *ConstructionError) Error() string {
	return e.msg
}

// Construction creates a new ConstructionError with the given message.
func Construction(format string, a ...interface{}) error {
	return &ConstructionError{msg: fmt.Sprintf(format, a...)}
}

// SyntaxError is raised when the action resolver finds no applicable action
// for a (state, lookahead) pair during a parse. It carries enough
// information to build a human-readable diagnostic without forcing the
// engine to depend on any particular presentation layer.
type SyntaxError struct {
	StateID     string
	TermName    string
	TermHuman   string
	Lexeme      string
	Expected    []string
	wrapped     error
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("unexpected %s %q in state %s", e.TermHuman, e.Lexeme, e.StateID)
	}
	return fmt.Sprintf("unexpected %s %q in state %s; %s", e.TermHuman, e.Lexeme, e.StateID, formatExpected(e.Expected))
}

func (e *SyntaxError) Unwrap() error {
	return e.wrapped
}

// Syntax creates a new SyntaxError describing an unresolved action at
// stateID for the given terminal name/human-readable name/matched lexeme,
// with the list of terminal names that would have been accepted instead.
func Syntax(stateID, termName, termHuman, lexeme string, expected []string) error {
	return &SyntaxError{
		StateID:   stateID,
		TermName:  termName,
		TermHuman: termHuman,
		Lexeme:    lexeme,
		Expected:  expected,
	}
}

// formatExpected renders the expected-terminal list as prose, word-wrapped
// to a reasonable terminal width the way the engine's other diagnostic text
// is wrapped (see rosed usage throughout the corpus's narrative output).
func formatExpected(expected []string) string {
	var msg string
	if len(expected) == 1 {
		msg = "expected " + expected[0]
	} else {
		msg = "expected one of "
		for i, e := range expected {
			if i > 0 {
				msg += ", "
			}
			msg += e
		}
	}
	return rosed.Edit(msg).Wrap(60).String()
}

// InternalError indicates a bug in the engine itself: a stack underflow
// during reduction, or a missing GOTO transition after reducing a
// non-augmented-start production. Both should be unreachable if the grammar
// has passed the offline verifier; surfacing them as a distinct type lets
// callers tell an engine bug apart from a user's syntax error.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return "internal parser error: " + e.msg
}

// Internal creates a new InternalError with the given message.
func Internal(format string, a ...interface{}) error {
	return &InternalError{msg: fmt.Sprintf(format, a...)}
}
