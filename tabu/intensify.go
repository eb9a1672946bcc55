// Package tabu - intensification by exhaustive double exchange.
//
// For every pair {in1, in2} ⊂ CL and every out ∈ S the Evaluator's
// DoubleExchangeCost is computed; the most negative delta wins. Tabu status
// is ignored here: the move is only applied when it strictly improves.
//
// The delta is symmetric in (in1, in2), so only pairs i < j of CL are
// visited; ordered pairs would evaluate every move twice.
//
// Complexity: O(|CL|²·|S|) delta evaluations. Only run right after an
// improvement that ended a stagnation streak.
package tabu

import "github.com/katalvlaran/tabusearch/solution"

// intensify applies the best improving double exchange to the working
// solution. It returns the working solution and true when a move was applied.
func (e *Engine[E]) intensify() (*solution.Solution[E], bool) {
	e.cl = e.eval.Candidates(e.sol)

	var (
		elems            = e.sol.Elements()
		minDelta         float64 // only negative deltas qualify
		found            bool
		bestIn1, bestIn2 E
		bestOut          E
		i, j             int
		d                float64
	)
	for i = 0; i < len(e.cl); i++ {
		for j = i + 1; j < len(e.cl); j++ {
			for _, out := range elems {
				d = e.eval.DoubleExchangeCost(e.cl[i], e.cl[j], out, e.sol)
				if Forbidden(d) {
					continue
				}
				if d < 0 && d < minDelta {
					minDelta = d
					bestIn1, bestIn2, bestOut = e.cl[i], e.cl[j], out
					found = true
				}
			}
		}
	}
	if !found {
		return nil, false
	}

	e.applyDoubleMove(bestIn1, bestIn2, bestOut)

	return e.sol, true
}

// applyDoubleMove pushes out, in1, in2 into the tabu list (three evictions),
// mutates the working solution and re-evaluates it.
func (e *Engine[E]) applyDoubleMove(in1, in2, out E) {
	e.tl.push(some(out))
	e.sol.Remove(out)
	e.tl.push(some(in1))
	e.sol.Add(in1)
	e.tl.push(some(in2))
	e.sol.Add(in2)
	e.eval.Evaluate(e.sol)
}
