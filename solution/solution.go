// Package solution provides the mutable selection a local-search engine
// works on: an insertion-ordered set of ground-set elements plus a cached
// objective value.
//
// Cost cache contract:
//   - SetCost is written only by an objective evaluator after a full evaluation.
//   - Any mutation (Add, AddAll, Remove) marks the cache stale.
//   - Cost reports ok=false while stale, so no caller can mistake a cached
//     value for the cost of the current contents.
//
// Concurrency: a Solution is not safe for concurrent mutation; the engine owns
// it on a single goroutine.
package solution

import (
	"fmt"
	"iter"
	"strings"
)

// Solution is an ordered collection of distinct elements with a cost cache.
// The zero value is NOT ready for use; call New.
type Solution[E comparable] struct {
	elems []E       // insertion order
	pos   map[E]int // element -> index in elems
	cost  float64   // last evaluated cost
	fresh bool      // true iff cost matches the current contents
}

// New returns an empty solution whose cost cache is stale.
func New[E comparable]() *Solution[E] {
	return &Solution[E]{pos: make(map[E]int)}
}

// Of returns a solution holding elems in order; duplicates are dropped.
func Of[E comparable](elems ...E) *Solution[E] {
	s := New[E]()
	s.AddAll(elems...)

	return s
}

// Add appends e and reports whether it was absent.
// Complexity: O(1) amortized.
func (s *Solution[E]) Add(e E) bool {
	if _, ok := s.pos[e]; ok {
		return false
	}
	s.pos[e] = len(s.elems)
	s.elems = append(s.elems, e)
	s.fresh = false

	return true
}

// AddAll adds every element not already present, keeping argument order.
// Returns the number of elements actually added.
func (s *Solution[E]) AddAll(elems ...E) int {
	var added int
	for _, e := range elems {
		if s.Add(e) {
			added++
		}
	}

	return added
}

// Remove deletes e and reports whether it was present.
// The relative order of the remaining elements is preserved.
// Complexity: O(size).
func (s *Solution[E]) Remove(e E) bool {
	i, ok := s.pos[e]
	if !ok {
		return false
	}
	delete(s.pos, e)
	copy(s.elems[i:], s.elems[i+1:])
	s.elems = s.elems[:len(s.elems)-1]

	var j int
	for j = i; j < len(s.elems); j++ { // reindex the shifted tail
		s.pos[s.elems[j]] = j
	}
	s.fresh = false

	return true
}

// Contains reports whether e is selected. Complexity: O(1).
func (s *Solution[E]) Contains(e E) bool {
	_, ok := s.pos[e]

	return ok
}

// Size returns the number of selected elements.
func (s *Solution[E]) Size() int { return len(s.elems) }

// IsEmpty reports Size()==0.
func (s *Solution[E]) IsEmpty() bool { return len(s.elems) == 0 }

// Elements returns a copy of the selected elements in insertion order.
func (s *Solution[E]) Elements() []E {
	out := make([]E, len(s.elems))
	copy(out, s.elems)

	return out
}

// All iterates the selected elements in insertion order.
// The solution must not be mutated during iteration.
func (s *Solution[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// Cost returns the cached cost and whether it is valid for the current contents.
func (s *Solution[E]) Cost() (float64, bool) {
	return s.cost, s.fresh
}

// SetCost records the cost of the current contents. Evaluators call it at
// the end of a full evaluation; nothing else should.
func (s *Solution[E]) SetCost(c float64) {
	s.cost = c
	s.fresh = true
}

// Clone returns a deep copy, cost cache included.
func (s *Solution[E]) Clone() *Solution[E] {
	c := &Solution[E]{
		elems: make([]E, len(s.elems)),
		pos:   make(map[E]int, len(s.pos)),
		cost:  s.cost,
		fresh: s.fresh,
	}
	copy(c.elems, s.elems)
	for e, i := range s.pos {
		c.pos[e] = i
	}

	return c
}

// String renders "Solution: cost=[c], size=[k], elements=[...]", with
// cost printed as "?" while the cache is stale.
func (s *Solution[E]) String() string {
	var sb strings.Builder
	sb.WriteString("Solution: cost=[")
	if s.fresh {
		fmt.Fprintf(&sb, "%g", s.cost)
	} else {
		sb.WriteByte('?')
	}
	fmt.Fprintf(&sb, "], size=[%d], elements=%v", len(s.elems), s.elems)

	return sb.String()
}
