package grammar

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Production is an ordered pair (head, body). Productions are compared by
// identity, not by structural shape: two calls to NewProduction with the
// exact same head and body are distinct productions, each eligible for its
// own precedence entry. This is deliberate — see the Design Notes on
// identity-based production equality — and is implemented with a uuid
// minted at construction time rather than, say, a pointer, so that
// Production can be passed and copied by value. Production holds a slice
// and is not comparable with ==; use Equal, or ID() where a map key is
// needed.
type Production struct {
	id   string
	Head NonTerminal
	Body []Symbol
}

// NewProduction creates a new Production with a fresh identity. body may be
// empty to declare an ε-production.
func NewProduction(head NonTerminal, body ...Symbol) Production {
	cp := make([]Symbol, len(body))
	copy(cp, body)
	return Production{
		id:   uuid.New().String(),
		Head: head,
		Body: cp,
	}
}

// ID returns the production's stable identity string.
func (p Production) ID() string { return p.id }

// Equal returns whether two Production values refer to the same production
// instance (same identity, not merely the same head/body shape).
func (p Production) Equal(o Production) bool { return p.id == o.id }

// String returns the canonical display form "head : s1 s2 ..." or
// "head : ε" for an empty body.
func (p Production) String() string {
	if len(p.Body) == 0 {
		return p.Head.Name() + " : ε"
	}
	parts := make([]string, len(p.Body))
	for i, s := range p.Body {
		parts[i] = s.Name()
	}
	return p.Head.Name() + " : " + strings.Join(parts, " ")
}

// SortByDeclarationOrder returns a copy of prods ordered by each
// production's position in g.Productions() (ties among productions not
// found in g, which should not occur in practice, sort last and preserve
// their relative order). Callers that collect reduce candidates from a
// State's item set — which is itself ordered by canonical-state sort key,
// not by grammar declaration order — use this to recover the declaration
// order ResolveReduceReduce's tie-break relies on.
func SortByDeclarationOrder(g Grammar, prods []Production) []Production {
	order := make(map[string]int, len(g.productions))
	for i, p := range g.productions {
		order[p.id] = i
	}

	out := append([]Production(nil), prods...)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oki := order[out[i].id]
		oj, okj := order[out[j].id]
		if !oki {
			oi = len(g.productions)
		}
		if !okj {
			oj = len(g.productions)
		}
		return oi < oj
	})
	return out
}

// Grammar is an immutable tuple (start, productions). Construct one with
// NewGrammar; there is no way to mutate a Grammar afterward, only to derive
// a new one (e.g. Augmented).
type Grammar struct {
	start       NonTerminal
	productions []Production
	byHead      map[string][]Production
	terminals   []Terminal
	nonTerms    []NonTerminal
}

// NewGrammar constructs a Grammar from a start symbol and an ordered list of
// productions. The start symbol must be the head of at least one
// production, or a ConstructionError-flavored error (see internal/lrerrors)
// is returned.
func NewGrammar(start NonTerminal, productions ...Production) (Grammar, error) {
	g := Grammar{
		start:       start,
		productions: append([]Production(nil), productions...),
		byHead:      map[string][]Production{},
	}

	termSeen := map[string]Terminal{}
	ntSeen := map[string]NonTerminal{}
	ntSeen[start.Name()] = start

	startHasProduction := false
	for _, p := range g.productions {
		g.byHead[p.Head.Name()] = append(g.byHead[p.Head.Name()], p)
		ntSeen[p.Head.Name()] = p.Head
		if p.Head.Equal(start) {
			startHasProduction = true
		}
		for _, s := range p.Body {
			if s.IsTerminal() {
				t := s.(Terminal)
				termSeen[t.Name()] = t
			} else {
				nt := s.(NonTerminal)
				ntSeen[nt.Name()] = nt
			}
		}
	}

	if !startHasProduction {
		return Grammar{}, constructionErrorf("start symbol %q is not the head of any production", start.Name())
	}

	for _, t := range termSeen {
		g.terminals = append(g.terminals, t)
	}
	for _, nt := range ntSeen {
		g.nonTerms = append(g.nonTerms, nt)
	}

	return g, nil
}

// Start returns the grammar's start non-terminal.
func (g Grammar) Start() NonTerminal { return g.start }

// Productions returns the grammar's productions in declaration order.
func (g Grammar) Productions() []Production {
	return append([]Production(nil), g.productions...)
}

// ProductionsFor returns the productions headed by nt, in declaration order.
func (g Grammar) ProductionsFor(nt NonTerminal) []Production {
	return append([]Production(nil), g.byHead[nt.Name()]...)
}

// Terminals returns every terminal appearing in any production body, in no
// particular order.
func (g Grammar) Terminals() []Terminal {
	return append([]Terminal(nil), g.terminals...)
}

// NonTerminals returns every non-terminal appearing as a head or within a
// production body (including the start symbol), in no particular order.
func (g Grammar) NonTerminals() []NonTerminal {
	return append([]NonTerminal(nil), g.nonTerms...)
}

// Augmented returns a new Grammar with a synthetic start production
// S' -> S added, where S' is a freshly-minted non-terminal guaranteed not to
// collide with any existing name. The returned Production is the one whose
// reduction signals acceptance (see lr1.Engine).
func (g Grammar) Augmented() (Grammar, Production) {
	fresh := NewNonTerminal(augmentedStartName(g))
	startProd := NewProduction(fresh, g.start)

	newProds := append([]Production{startProd}, g.productions...)
	augmented, err := NewGrammar(fresh, newProds...)
	if err != nil {
		// unreachable: a fresh head with its own production always
		// satisfies NewGrammar's precondition.
		panic(err)
	}
	return augmented, startProd
}

func augmentedStartName(g Grammar) string {
	candidate := g.start.Name() + "'"
	for g.hasNonTerminalNamed(candidate) {
		candidate += "'"
	}
	return candidate
}

func (g Grammar) hasNonTerminalNamed(name string) bool {
	for _, nt := range g.nonTerms {
		if nt.Name() == name {
			return true
		}
	}
	return false
}
