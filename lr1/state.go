package lr1

import (
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	godsutils "github.com/emirpasic/gods/utils"
)

// State is an immutable LR(1) canonical state: a set of items. Two States
// are equal iff their item sets are equal; the Engine guarantees that equal
// item sets are always represented by the very same *State pointer (see
// registry below), so State equality can be — and is — checked by pointer
// identity everywhere outside of registry construction itself.
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

// ID returns a small integer identifying this state within the engine that
// created it, stable for the lifetime of that engine. It exists purely for
// diagnostics (trace output, error messages); it carries no meaning across
// engines.
func (s *State) ID() int { return s.id }

// Items returns the items of the state, in a stable (sorted) order.
func (s *State) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Has returns whether item is a member of the state.
func (s *State) Has(item Item) bool {
	for _, i := range s.items {
		if i.Equal(item) {
			return true
		}
	}
	return false
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

// canonicalKey hashes the state's sorted item-key list with structhash so
// the registry can look up candidate matches in O(1) instead of scanning
// every previously-built state. Because structhash operates over the item
// keys (which already fold in production identity, dot, and lookahead)
// rather than over pointers, two independently-built item sets with the
// same logical contents always hash identically.
func canonicalKey(items []Item) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.key()
	}
	sort.Strings(keys)

	h, err := structhash.Hash(keys, 1)
	if err != nil {
		// structhash.Hash only fails on types it cannot reflect over; a
		// []string can always be hashed, so this is unreachable.
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

// registry is the engine's canonical-state cache: a map from structhash
// bucket to the candidate states sharing it (collisions are resolved with a
// full equality check), plus a gods treeset ordering states by ID for
// deterministic iteration during tracing and verification dumps — the same
// role treeset.Set plays for gorgo's CFSM state collection.
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

// canonicalize returns the unique *State for the given item set, creating
// and registering a new one if no equal state has been seen before.
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

// states returns every canonical state created so far, ordered by ID.
func (r *registry) states() []*State {
	vals := r.ordered.Values()
	out := make([]*State, len(vals))
	for i, v := range vals {
		out[i] = v.(*State)
	}
	return out
}
