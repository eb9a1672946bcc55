package scqbf

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tabusearch/solution"
)

// Coverage is the boolean set-coverage matrix: row i holds the universe
// elements covered by set i.
type Coverage struct {
	n    int
	rows []*bitset.BitSet
}

// NewCoverage builds an n×n coverage matrix from 0-based set contents.
func NewCoverage(n int, sets [][]int) (*Coverage, error) {
	if len(sets) != n {
		return nil, fmt.Errorf("scqbf: %d sets for domain size %d", len(sets), n)
	}
	c := &Coverage{n: n, rows: make([]*bitset.BitSet, n)}
	for i, set := range sets {
		row := bitset.New(uint(n))
		for _, u := range set {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("scqbf: set %d covers %d: %w", i, u, errOutOfRange)
			}
			row.Set(uint(u))
		}
		c.rows[i] = row
	}

	return c, nil
}

// Size returns the universe size.
func (c *Coverage) Size() int { return c.n }

// Covers reports whether set i covers universe element u.
func (c *Coverage) Covers(i, u int) bool {
	return c.rows[i].Test(uint(u))
}

// unionInto clears dst and fills it with the union of the rows selected by
// sol, skipping the set equal to skip (pass −1 to skip nothing).
func (c *Coverage) unionInto(dst *bitset.BitSet, sol *solution.Solution[int], skip int) {
	dst.ClearAll()
	for i := range sol.All() {
		if i != skip {
			dst.InPlaceUnion(c.rows[i])
		}
	}
}

// full reports whether b covers the whole universe.
func (c *Coverage) full(b *bitset.BitSet) bool {
	return b.Count() == uint(c.n)
}

// adds reports whether set i covers something outside b.
func (c *Coverage) adds(i int, b *bitset.BitSet) bool {
	return c.rows[i].DifferenceCardinality(b) > 0
}
