package automaton

import (
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	godsutils "github.com/emirpasic/gods/utils"
)

// State is a canonical LR(0) state: a set of items. As with lr1.State, the
// automaton guarantees equal item sets always share the same *State
// pointer, via the same structhash-bucketed registry pattern used there
// (see npillmayer/gorgo's lr/tables.go, the shared grounding for both).
type State struct {
	id    int
	items []Item
}

func newState(id int, items []Item) *State {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].key() < sorted[b].key() })
	return &State{id: id, items: sorted}
}

func (s *State) ID() int { return s.id }

func (s *State) Items() []Item {
	return append([]Item(nil), s.items...)
}

func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, it := range s.items {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(it.String())
	}
	sb.WriteString("}")
	return sb.String()
}

func canonicalKey(items []Item) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.key()
	}
	sort.Strings(keys)

	h, err := structhash.Hash(keys, 1)
	if err != nil {
		panic(err)
	}
	return h
}

func stateEqualsItemKeys(s *State, keys []string) bool {
	if len(s.items) != len(keys) {
		return false
	}
	for i, it := range s.items {
		if it.key() != keys[i] {
			return false
		}
	}
	return true
}

// registry is the automaton's canonical-state cache, built the same way as
// lr1's: a structhash bucket map collision-checked by full equality, plus a
// gods treeset for deterministic ID-ordered iteration.
type registry struct {
	buckets map[string][]*State
	ordered *treeset.Set
	nextID  int
}

func stateIDComparator(a, b interface{}) int {
	sa, sb := a.(*State), b.(*State)
	return godsutils.IntComparator(sa.id, sb.id)
}

func newRegistry() *registry {
	return &registry{
		buckets: map[string][]*State{},
		ordered: treeset.NewWith(stateIDComparator),
	}
}

func (r *registry) canonicalize(items []Item) *State {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].key() < sorted[b].key() })

	keys := make([]string, len(sorted))
	for i, it := range sorted {
		keys[i] = it.key()
	}

	bucket := canonicalKey(sorted)
	for _, cand := range r.buckets[bucket] {
		if stateEqualsItemKeys(cand, keys) {
			return cand
		}
	}

	s := newState(r.nextID, sorted)
	r.nextID++
	r.buckets[bucket] = append(r.buckets[bucket], s)
	r.ordered.Add(s)
	return s
}

func (r *registry) states() []*State {
	vals := r.ordered.Values()
	out := make([]*State, len(vals))
	for i, v := range vals {
		out[i] = v.(*State)
	}
	return out
}
