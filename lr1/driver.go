package lr1

import (
	"fmt"

	"github.com/dekarrin/lrlazy/grammar"
	"github.com/dekarrin/lrlazy/internal/lrerrors"
	"github.com/dekarrin/lrlazy/internal/lrstack"
)

// Evaluator computes a value for each shifted terminal and each reduced
// production. The value-stack parse variant (Driver.Parse) and the
// Listener variant (Driver.ParseEvents) both drive the same internal
// shift/reduce loop; Parse hands the Evaluator's methods to that loop
// directly rather than going through a Listener. Every shift is
// evaluated eagerly so the resulting value is available on the stack by the
// time any production containing it is reduced, matching the ordering
// guarantee in the spec's concurrency section (bottom-up, terminals
// evaluated in input order on shift).
type Evaluator interface {
	// EvaluateTerminal computes the value for a freshly-shifted token.
	EvaluateTerminal(tok grammar.Token) (interface{}, error)

	// EvaluateProduction computes the value for a reduction of prod, given
	// the values of its body symbols in left-to-right (body) order. The
	// slice always has exactly len(prod.Body) entries.
	EvaluateProduction(prod grammar.Production, values []interface{}) (interface{}, error)
}

// Listener receives the low-level shift/reduce event stream directly,
// without any value-stack bookkeeping. Driver.ParseEvents uses this
// protocol; Driver.Parse takes an Evaluator instead, and both share one
// internal loop.
type Listener interface {
	OnShift(tok grammar.Token)
	OnReduce(prod grammar.Production)
}

// Driver drives a single Engine's shift/reduce loop over a token stream. A
// Driver (and the Engine it wraps) may be reused across any number of
// parses; its caches only ever grow. Per the spec's concurrency model, a
// single Driver is intended for one parse at a time — concurrent parses
// need independent Drivers sharing no engine, or external synchronization.
type Driver struct {
	engine *Engine
	trace  func(string)
}

// NewDriver builds a Driver (and the Engine backing it) for g under prec.
func NewDriver(g grammar.Grammar, prec grammar.PrecedenceMap) (*Driver, error) {
	e, err := NewEngine(g, prec)
	if err != nil {
		return nil, err
	}
	return &Driver{engine: e}, nil
}

// Engine exposes the underlying Engine, mostly so the cmd/lrlazy CLI and
// tests can inspect canonicalized states for tracing.
func (d *Driver) Engine() *Engine { return d.engine }

// RegisterTraceListener installs fn to receive a human-readable line for
// every state push/pop/peek, action resolution, and token read during
// subsequent parses. Passing nil disables tracing. Mirrors the teacher's
// own lrParser.notifyTrace mechanism.
func (d *Driver) RegisterTraceListener(fn func(string)) {
	d.trace = fn
}

func (d *Driver) notef(format string, a ...interface{}) {
	if d.trace != nil {
		d.trace(fmt.Sprintf(format, a...))
	}
}

// eofStream wraps a grammar.TokenStream so that, once the underlying stream
// reports EOF once, it keeps reporting EOF forever after without calling the
// underlying stream again. The driver reads a new token only after a shift;
// a reduce leaves the current token unconsumed.
type eofStream struct {
	inner    grammar.TokenStream
	hitEOF   bool
}

func (s *eofStream) Next() grammar.Token {
	if s.hitEOF {
		return grammar.NewToken(grammar.EOF, "")
	}
	tok := s.inner.Next()
	if tok.Terminal().Equal(grammar.EOF) {
		s.hitEOF = true
	}
	return tok
}

// ParseEvents consumes tokens from stream until acceptance (or a syntax
// error), invoking listener.OnShift/OnReduce in reduction order. This is
// the low-level event protocol described in §4.5/§6 of the spec; Parse is
// built on top of it.
func (d *Driver) ParseEvents(stream grammar.TokenStream, listener Listener) error {
	_, err := d.run(stream, func(tok grammar.Token) (interface{}, error) {
		listener.OnShift(tok)
		return nil, nil
	}, func(prod grammar.Production, values []interface{}) (interface{}, error) {
		listener.OnReduce(prod)
		return nil, nil
	})
	return err
}

// Parse consumes tokens from stream until acceptance, evaluating every
// shifted terminal and reduced production through evaluator, and returns
// the value produced for the start symbol.
func (d *Driver) Parse(stream grammar.TokenStream, evaluator Evaluator) (interface{}, error) {
	return d.run(stream, evaluator.EvaluateTerminal, evaluator.EvaluateProduction)
}

func (d *Driver) run(
	stream grammar.TokenStream,
	evalTerminal func(grammar.Token) (interface{}, error),
	evalProduction func(grammar.Production, []interface{}) (interface{}, error),
) (interface{}, error) {
	wrapped := &eofStream{inner: stream}

	var stateStack lrstack.Stack[*State]
	var valueStack lrstack.Stack[interface{}]

	stateStack.Push(d.engine.Initial())
	d.notef("state push: %d", d.engine.Initial().ID())

	tok := wrapped.Next()
	d.notef("next token: %s", tok.String())

	for {
		top := stateStack.Peek()
		d.notef("state peek: %d", top.ID())

		act, ok := d.engine.Action(top, tok.Terminal())
		if !ok {
			return nil, d.syntaxError(top, tok)
		}

		switch act.Kind {
		case Shift:
			d.notef("action: shift -> %d", act.Target.ID())

			val, err := evalTerminal(tok)
			if err != nil {
				return nil, err
			}
			valueStack.Push(val)

			stateStack.Push(act.Target)
			d.notef("state push: %d", act.Target.ID())
			tok = wrapped.Next()
			d.notef("next token: %s", tok.String())

		case Reduce:
			prod := act.Production
			d.notef("action: reduce %s", prod.String())

			n := len(prod.Body)
			if stateStack.Len() < n+1 || valueStack.Len() < n {
				return nil, lrerrors.Internal("stack underflow reducing %s", prod.String())
			}

			values := valueStack.PopN(n)
			for i := 0; i < n; i++ {
				popped := stateStack.Pop()
				d.notef("state pop: %d", popped.ID())
			}

			val, err := evalProduction(prod, values)
			if err != nil {
				return nil, err
			}

			if prod.Equal(d.engine.StartProduction()) {
				return val, nil
			}

			nextTop := stateStack.Peek()
			gotoState, hasGoto := d.engine.Goto(nextTop, prod.Head)
			if !hasGoto {
				return nil, lrerrors.Internal("no GOTO[%d, %s] after reducing %s", nextTop.ID(), prod.Head.Name(), prod.String())
			}

			stateStack.Push(gotoState)
			d.notef("state push: %d", gotoState.ID())
			valueStack.Push(val)
		}
	}
}

func (d *Driver) syntaxError(s *State, tok grammar.Token) error {
	expected := d.Expected(s)
	names := make([]string, len(expected))
	for i, t := range expected {
		names[i] = t.Name()
	}
	return lrerrors.Syntax(fmt.Sprintf("%d", s.ID()), tok.Terminal().Name(), tok.Terminal().Name(), tok.Value(), names)
}

// Expected returns every terminal that has a non-error action defined in
// state s — i.e. the set of tokens that would not immediately produce a
// syntax error there. Used to build the diagnostic message in SyntaxError.
func (d *Driver) Expected(s *State) []grammar.Terminal {
	var out []grammar.Terminal
	for _, term := range d.engine.Grammar().Terminals() {
		if _, ok := d.engine.Action(s, term); ok {
			out = append(out, term)
		}
	}
	if _, ok := d.engine.Action(s, grammar.EOF); ok {
		out = append(out, grammar.EOF)
	}
	return out
}
