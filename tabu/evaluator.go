// Package tabu - the objective contract the engine programs against.
//
// The engine never inspects a concrete problem: all costs, feasibility and
// candidate generation go through Evaluator. Every delta is relative to the
// solution passed in, which is left unmodified.
//
// Sign convention: the engine MINIMIZES. A maximization objective must be
// wrapped so that every returned value is negated.
//
// Forbidden moves: an Evaluator returns an infinite delta (−∞ or +∞, the
// sign flips under negation) for moves that are infeasible or nonsensical.
// Such a delta is a dominance signal, not an error: the engine ranks it
// worst and never applies the move (see Forbidden).
package tabu

import (
	"math"

	"github.com/katalvlaran/tabusearch/solution"
)

// Evaluator is the incremental cost-evaluation contract over a finite
// ground set of elements of type E.
type Evaluator[E comparable] interface {
	// DomainSize returns the number of ground-set elements.
	DomainSize() int

	// Domain returns every ground-set element in natural index order.
	Domain() []E

	// Evaluate computes the full objective of sol, stores it with
	// sol.SetCost and returns it.
	Evaluate(sol *solution.Solution[E]) float64

	// InsertionCost is the cost change of adding e to sol (0 if present).
	InsertionCost(e E, sol *solution.Solution[E]) float64

	// RemovalCost is the cost change of removing e from sol (0 if absent,
	// infinite if the result would be infeasible).
	RemovalCost(e E, sol *solution.Solution[E]) float64

	// ExchangeCost is the cost change of swapping out for in.
	ExchangeCost(in, out E, sol *solution.Solution[E]) float64

	// DoubleExchangeCost is the cost change of adding in1 and in2 while
	// removing out.
	DoubleExchangeCost(in1, in2, out E, sol *solution.Solution[E]) float64

	// IsFeasible reports whether sol satisfies the problem constraints.
	IsFeasible(sol *solution.Solution[E]) bool

	// Candidates lists the elements that may be inserted into sol.
	Candidates(sol *solution.Solution[E]) []E
}

// Forbidden reports whether delta is the "never apply" sentinel.
// NaN is treated the same way: it cannot be ranked.
func Forbidden(delta float64) bool {
	return math.IsInf(delta, 0) || math.IsNaN(delta)
}
