package grammar

// TerminalSet is a set of terminals keyed by name. It intentionally mirrors
// the teacher's string-keyed set idiom (SVSet/StringSet in the original
// ictiobus util package) rather than introducing a generic container, since
// terminals are identified purely by name.
type TerminalSet map[string]Terminal

func newTerminalSet() TerminalSet {
	return TerminalSet{}
}

// Add inserts t into the set.
func (s TerminalSet) Add(t Terminal) {
	s[t.Name()] = t
}

// Has returns whether t is a member of the set.
func (s TerminalSet) Has(t Terminal) bool {
	_, ok := s[t.Name()]
	return ok
}

// HasEpsilon is shorthand for Has(Epsilon).
func (s TerminalSet) HasEpsilon() bool {
	return s.Has(Epsilon)
}

// AddAll adds every member of o to s.
func (s TerminalSet) AddAll(o TerminalSet) {
	for k, v := range o {
		s[k] = v
	}
}

// WithoutEpsilon returns a copy of s with Epsilon removed.
func (s TerminalSet) WithoutEpsilon() TerminalSet {
	cp := newTerminalSet()
	for k, v := range s {
		if k == epsilonName {
			continue
		}
		cp[k] = v
	}
	return cp
}

// Slice returns the set's terminals, excluding Epsilon, in no particular
// order.
func (s TerminalSet) Slice() []Terminal {
	out := make([]Terminal, 0, len(s))
	for k, v := range s {
		if k == epsilonName {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FirstSets is the computed FIRST(X) mapping for every symbol of a Grammar,
// total over every terminal and non-terminal that appears in it.
type FirstSets struct {
	of map[symbolKey]TerminalSet
}

// Of returns FIRST(sym). A non-terminal that heads no production (and so
// can never be reduced) has an empty FIRST set rather than causing an
// error.
func (f FirstSets) Of(sym Symbol) TerminalSet {
	if sym.IsTerminal() {
		s := newTerminalSet()
		s.Add(sym.(Terminal))
		return s
	}
	if set, ok := f.of[keyOf(sym)]; ok {
		return set
	}
	return newTerminalSet()
}

// OfSequence computes firstOfSequence(Y1...Yn): the union of FIRST(Yi) \
// {ε} for each Yi while every preceding Yj is nullable, plus ε itself if
// every Yi in the sequence is nullable (including the empty sequence, which
// is trivially nullable).
func (f FirstSets) OfSequence(seq []Symbol) TerminalSet {
	result := newTerminalSet()
	allNullable := true

	for _, sym := range seq {
		symFirst := f.Of(sym)
		result.AddAll(symFirst.WithoutEpsilon())
		if !symFirst.HasEpsilon() {
			allNullable = false
			break
		}
	}

	if allNullable {
		result.Add(Epsilon)
	}

	return result
}

// OfSequenceWithLookahead computes the lookahead set used by LR(1) closure:
// firstOfSequence(beta) with epsilon, if present, replaced by the parent
// item's lookahead terminal `a`. This is exactly "FIRST of the suffix beta
// followed by a" from the closure rule in the spec.
func (f FirstSets) OfSequenceWithLookahead(beta []Symbol, a Terminal) TerminalSet {
	set := f.OfSequence(beta)
	if set.HasEpsilon() {
		set = set.WithoutEpsilon()
		set.Add(a)
	}
	return set
}

// ComputeFirst computes FIRST(X) for every symbol of g by fixed-point
// iteration over its productions until no set grows further.
func ComputeFirst(g Grammar) FirstSets {
	f := FirstSets{of: map[symbolKey]TerminalSet{}}

	for _, nt := range g.NonTerminals() {
		f.of[keyOf(nt)] = newTerminalSet()
	}

	changed := true
	for changed {
		changed = false
		for _, prod := range g.Productions() {
			headKey := keyOf(prod.Head)
			before := f.of[headKey]
			beforeLen := len(before)

			contribution := f.firstOfSequenceUsingPartial(prod.Body)
			before.AddAll(contribution)
			f.of[headKey] = before

			if len(before) != beforeLen {
				changed = true
			}
		}
	}

	return f
}

// firstOfSequenceUsingPartial is OfSequence but consulting the
// still-converging `f` map directly (via Of, which already falls back to
// the per-terminal singleton case), used internally during the fixed-point
// loop itself.
func (f FirstSets) firstOfSequenceUsingPartial(seq []Symbol) TerminalSet {
	return f.OfSequence(seq)
}
