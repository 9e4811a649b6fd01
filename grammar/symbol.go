// Package grammar is the immutable representation of context-free grammars:
// symbols, productions, the grammar itself, and the precedence table used to
// resolve ambiguity. It also hosts the FIRST/FOLLOW fixed-point analyses,
// since both are pure functions of a Grammar and have no business knowing
// about parser state.
package grammar

import "fmt"

// Symbol is the tagged union of Terminal and NonTerminal. Two Symbols are
// equal iff they have the same kind (terminal-ness) and the same name.
//
// Implementations are value types (Terminal, NonTerminal). Code that needs
// the concrete type checks IsTerminal and then uses a type assertion; the
// interface does not offer exhaustive matching over the two variants.
type Symbol interface {
	// Name returns the symbol's identifying name.
	Name() string

	// IsTerminal returns whether this symbol is a Terminal.
	IsTerminal() bool

	fmt.Stringer
}

// Terminal is a grammar-level terminal symbol, identified by name. It does
// not carry a matched lexeme; that pairing is Token's job (see token.go).
type Terminal struct {
	name string
}

// NewTerminal returns a Terminal with the given name. The name must be
// non-empty and must not collide with the reserved sentinel names (EOF's "$"
// and Epsilon's "ε"); use the EOF and Epsilon package values directly
// instead of trying to construct equivalents.
func NewTerminal(name string) Terminal {
	if name == "" {
		panic("grammar: terminal name must not be empty")
	}
	if name == eofName || name == epsilonName {
		panic(fmt.Sprintf("grammar: %q is a reserved terminal name", name))
	}
	return Terminal{name: name}
}

// Name returns the terminal's name.
func (t Terminal) Name() string { return t.name }

// IsTerminal always returns true for a Terminal.
func (t Terminal) IsTerminal() bool { return true }

func (t Terminal) String() string { return t.name }

// Equal returns whether two terminals have the same name.
func (t Terminal) Equal(o Terminal) bool { return t.name == o.name }

const (
	eofName     = "$"
	epsilonName = "ε"
	errorName   = "error"
)

var (
	// EOF is the end-of-input sentinel terminal. The driver does not append
	// it itself: a TokenStream must return an EOF-classed token once its
	// real tokens are exhausted, and the driver treats that as end of input.
	EOF = Terminal{name: eofName}

	// Epsilon is used only inside FIRST sets to mark a symbol (or sequence)
	// as nullable. It must never appear in a production body.
	Epsilon = Terminal{name: epsilonName}

	// ErrorTerminal is an optional sentinel a lexer may emit to signal that
	// it could not classify a span of input; grammars are not required to
	// reference it.
	ErrorTerminal = Terminal{name: errorName}
)

// NonTerminal is a grammar-level non-terminal, identified by name alone.
type NonTerminal struct {
	name string
}

// NewNonTerminal returns a NonTerminal with the given non-empty name.
func NewNonTerminal(name string) NonTerminal {
	if name == "" {
		panic("grammar: non-terminal name must not be empty")
	}
	return NonTerminal{name: name}
}

// Name returns the non-terminal's name.
func (n NonTerminal) Name() string { return n.name }

// IsTerminal always returns false for a NonTerminal.
func (n NonTerminal) IsTerminal() bool { return false }

func (n NonTerminal) String() string { return n.name }

// Equal returns whether two non-terminals have the same name.
func (n NonTerminal) Equal(o NonTerminal) bool { return n.name == o.name }

// SymbolEqual returns whether two Symbols are equal: same terminal-ness and
// the same name.
func SymbolEqual(a, b Symbol) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsTerminal() == b.IsTerminal() && a.Name() == b.Name()
}

// symbolKey is a map key derived from a Symbol, namespaced by kind so a
// terminal and a non-terminal that happen to share a name never collide.
type symbolKey struct {
	terminal bool
	name     string
}

func keyOf(s Symbol) symbolKey {
	return symbolKey{terminal: s.IsTerminal(), name: s.Name()}
}
