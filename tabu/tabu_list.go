// Package tabu - fixed-capacity FIFO tabu list.
//
// The list always holds exactly cap entries. An entry is either an element
// (some) or the explicit "none" variant; none never matches a real element,
// whatever the element type. push drops the oldest entry and appends the new
// one, so the size never changes after construction.
//
// Complexity: push O(1), contains O(1) (multiset counts), memory O(cap).
package tabu

// slot is an optional element: ok==false is the "none" variant.
type slot[E comparable] struct {
	v  E
	ok bool
}

// some wraps a real element.
func some[E comparable](e E) slot[E] { return slot[E]{v: e, ok: true} }

// none returns the empty variant.
func none[E comparable]() slot[E] { return slot[E]{} }

// tabuList is a ring buffer of slots plus per-element occurrence counts.
type tabuList[E comparable] struct {
	ring  []slot[E]
	head  int       // index of the oldest entry
	count map[E]int // occurrences of each element currently in the ring
}

// newTabuList returns a list of capacity n filled with none entries.
func newTabuList[E comparable](n int) *tabuList[E] {
	return &tabuList[E]{
		ring:  make([]slot[E], n),
		count: make(map[E]int, n),
	}
}

// push evicts the oldest entry and appends s as the newest.
func (t *tabuList[E]) push(s slot[E]) {
	if len(t.ring) == 0 {
		return
	}
	old := t.ring[t.head]
	if old.ok {
		if t.count[old.v] <= 1 {
			delete(t.count, old.v)
		} else {
			t.count[old.v]--
		}
	}
	t.ring[t.head] = s
	if s.ok {
		t.count[s.v]++
	}
	t.head = (t.head + 1) % len(t.ring)
}

// contains reports whether e is currently tabu.
func (t *tabuList[E]) contains(e E) bool {
	return t.count[e] > 0
}

// len is the constant capacity of the list.
func (t *tabuList[E]) len() int { return len(t.ring) }

// entries returns the list content from oldest to newest.
func (t *tabuList[E]) entries() []slot[E] {
	out := make([]slot[E], 0, len(t.ring))
	var i int
	for i = 0; i < len(t.ring); i++ {
		out = append(out, t.ring[(t.head+i)%len(t.ring)])
	}

	return out
}
