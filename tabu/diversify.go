// Package tabu - frequency-based diversification by restart.
//
// On trigger the working solution restarts from a copy of the best one and
// the k = ⌈n·fraction⌉ least frequently used elements are forced in (nothing
// is removed), pushing the search into a region it has rarely visited. Ties
// in frequency keep natural domain order (stable sort). Frequency counters
// are not reset.
package tabu

import (
	"cmp"
	"math"
	"slices"
)

// diversify performs one restart and returns how many elements were added.
func (e *Engine[E]) diversify(fraction float64) int {
	e.sol = e.best.Clone()

	var n = len(e.domain)
	k := int(math.Ceil(float64(n) * fraction))
	if k > n {
		k = n
	}

	order := slices.Clone(e.domain)
	slices.SortStableFunc(order, func(a, b E) int {
		return cmp.Compare(e.freq[a], e.freq[b])
	})
	added := e.sol.AddAll(order[:k]...)
	e.eval.Evaluate(e.sol)

	return added
}
