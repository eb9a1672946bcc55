// Package tabu - semi-greedy randomized constructive heuristic.
//
// Each round: recompute CL from the Evaluator, evaluate every insertion,
// keep in RCL all candidates tied at the minimum delta, insert one of them
// chosen uniformly at random and re-evaluate the full cost. Rounds repeat
// until the solution is feasible.
//
// Termination: Candidates never proposes an element already selected, so
// there are at most DomainSize rounds.
package tabu

import (
	"math"

	"github.com/katalvlaran/tabusearch/solution"
)

// Construct runs only the constructive heuristic (with a fresh RNG stream
// from the configured seed) and returns a feasible solution.
func (e *Engine[E]) Construct() (*solution.Solution[E], error) {
	e.rng = rngFromSeed(e.opts.Seed)
	sol, _, err := e.construct()
	if err != nil {
		return nil, err
	}

	return sol.Clone(), nil
}

// construct builds e.sol and returns it with the number of insertions made.
func (e *Engine[E]) construct() (*solution.Solution[E], int, error) {
	e.sol = solution.New[E]()
	e.eval.Evaluate(e.sol)

	var (
		steps   int
		deltas  []float64
		minCost float64
		i       int
	)
	for !e.eval.IsFeasible(e.sol) {
		e.cl = e.eval.Candidates(e.sol)
		if len(e.cl) == 0 || steps >= len(e.domain) {
			return nil, steps, ErrNoCandidates
		}

		// Explore every candidate, remembering its delta and the round minimum.
		deltas = deltas[:0]
		minCost = math.Inf(1)
		for i = range e.cl {
			d := e.eval.InsertionCost(e.cl[i], e.sol)
			deltas = append(deltas, d)
			if d < minCost {
				minCost = d
			}
		}

		// RCL keeps every candidate tied with the best delta.
		e.rcl = e.rcl[:0]
		for i = range e.cl {
			if deltas[i] <= minCost {
				e.rcl = append(e.rcl, e.cl[i])
			}
		}
		if len(e.rcl) == 0 { // only NaN deltas: fall back to the whole CL
			e.rcl = append(e.rcl, e.cl...)
		}

		e.sol.Add(pickUniform(e.rng, e.rcl))
		e.eval.Evaluate(e.sol)
		steps++
	}

	return e.sol, steps, nil
}
