// Package tabu - neighborhood exploration and move application.
//
// Neighborhood of the working solution S:
//   - insertion of c ∈ CL,
//   - removal of s ∈ S,
//   - exchange (c in, s out) for c ∈ CL, s ∈ S.
//
// Admissibility: a move touching a tabu element is admissible only if it
// yields a cost strictly below the best known cost (aspiration). An exchange
// is non-tabu only when neither side is tabu. Forbidden deltas are skipped.
//
// Policies:
//   - First-improving: scan insertions, removals, exchanges in that order;
//     apply the first admissible move with Δ < 0. If none improves, apply the
//     least-cost admissible move seen during the full scan.
//   - Best-improving: scan everything and apply the least-cost admissible
//     move, whatever its sign.
//
// When no admissible move exists at all nothing is applied, but the tabu
// list still ages by two "none" entries so tabu elements are eventually
// released.
//
// Complexity: O(|CL|·|S|) delta evaluations per scan, each O(n) for SCQBF.
package tabu

import "math"

// move describes a neighborhood move; unset sides are none.
type move[E comparable] struct {
	in    slot[E]
	out   slot[E]
	delta float64
}

// candidate tracks the least-cost admissible move seen during a scan.
type candidate[E comparable] struct {
	m     move[E]
	found bool
}

// offer keeps m if it beats the current pick (strictly).
func (c *candidate[E]) offer(m move[E]) {
	if !c.found || m.delta < c.m.delta {
		c.m = m
		c.found = true
	}
}

// neighborhoodMove dispatches on the configured strategy.
func (e *Engine[E]) neighborhoodMove() {
	if e.opts.Strategy == BestImproving {
		e.bestImprovingMove()
		return
	}
	e.firstImprovingMove()
}

// admissible applies the tabu rule with aspiration for a move touching xs.
func (e *Engine[E]) admissible(delta, cur, best float64, xs ...E) bool {
	var tabu bool
	for _, x := range xs {
		if e.tl.contains(x) {
			tabu = true
			break
		}
	}

	return !tabu || cur+delta < best
}

// scan walks the neighborhood in the fixed order insertions → removals →
// exchanges, calling visit for every admissible, non-forbidden move. visit
// returns false to stop the scan early.
func (e *Engine[E]) scan(visit func(m move[E]) bool) {
	e.cl = e.eval.Candidates(e.sol)

	var (
		elems = e.sol.Elements() // snapshot; the solution is not touched during the scan
		cur   = e.cost(e.sol)
		best  = e.cost(e.best)
		d     float64
	)

	// Insertions.
	for _, in := range e.cl {
		d = e.eval.InsertionCost(in, e.sol)
		if Forbidden(d) || !e.admissible(d, cur, best, in) {
			continue
		}
		if !visit(move[E]{in: some(in), out: none[E](), delta: d}) {
			return
		}
	}
	// Removals.
	for _, out := range elems {
		d = e.eval.RemovalCost(out, e.sol)
		if Forbidden(d) || !e.admissible(d, cur, best, out) {
			continue
		}
		if !visit(move[E]{in: none[E](), out: some(out), delta: d}) {
			return
		}
	}
	// Exchanges.
	for _, in := range e.cl {
		for _, out := range elems {
			d = e.eval.ExchangeCost(in, out, e.sol)
			if Forbidden(d) || !e.admissible(d, cur, best, in, out) {
				continue
			}
			if !visit(move[E]{in: some(in), out: some(out), delta: d}) {
				return
			}
		}
	}
}

// firstImprovingMove applies the first improving admissible move, or the
// least-cost admissible one when the solution is a local optimum.
func (e *Engine[E]) firstImprovingMove() {
	var pick candidate[E]
	e.scan(func(m move[E]) bool {
		if m.delta < 0 {
			pick = candidate[E]{m: m, found: true}
			return false // apply immediately
		}
		pick.offer(m)
		return true
	})

	e.applyPick(pick)
}

// bestImprovingMove applies the least-cost admissible move of the full scan.
func (e *Engine[E]) bestImprovingMove() {
	var pick candidate[E]
	e.scan(func(m move[E]) bool {
		pick.offer(m)
		return true
	})

	e.applyPick(pick)
}

// applyPick applies the selected move, or ages the tabu list when the scan
// found nothing admissible.
func (e *Engine[E]) applyPick(pick candidate[E]) {
	if !pick.found {
		e.applyMove(move[E]{in: none[E](), out: none[E](), delta: math.Inf(1)})
		return
	}
	e.applyMove(pick.m)
}

// applyMove updates the tabu list (removed element first, then inserted
// element, each evicting the oldest entry), mutates the working solution and
// re-evaluates its full cost. Deltas only rank moves; the cost is recomputed.
func (e *Engine[E]) applyMove(m move[E]) {
	e.tl.push(m.out)
	if m.out.ok {
		e.sol.Remove(m.out.v)
	}
	e.tl.push(m.in)
	if m.in.ok {
		e.sol.Add(m.in.v)
	}
	e.eval.Evaluate(e.sol)
}
