package scqbf

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tabusearch/matrix"
	"github.com/katalvlaran/tabusearch/solution"
	"github.com/katalvlaran/tabusearch/tabu"
)

var _ tabu.Evaluator[int] = (*Evaluator)(nil)

// Evaluator computes SCQBF costs and deltas for solutions over 0..n−1.
//
// The indicator vector and the coverage bitset are evaluator-owned scratch:
// every entry point resets and repopulates them, so an Evaluator must not be
// shared between goroutines.
type Evaluator struct {
	n    int
	sign float64 // +1 raw, −1 inverse
	a    []float64
	cov  *Coverage

	x       []float64 // indicator of the solution being evaluated
	quad    *matrix.QuadraticForm
	covered *bitset.BitSet
}

// New returns the raw evaluator: Evaluate is xᵀAx and forbidden moves
// return −∞.
func New(inst *Instance) (*Evaluator, error) {
	return newEvaluator(inst, 1)
}

// NewInverse returns the evaluator the tabu engine minimizes: every value
// New would return, negated. Forbidden moves return +∞.
func NewInverse(inst *Instance) (*Evaluator, error) {
	return newEvaluator(inst, -1)
}

func newEvaluator(inst *Instance, sign float64) (*Evaluator, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := matrix.ValidateSquareNonNil(inst.A); err != nil {
		return nil, err
	}
	if err := matrix.ValidateFinite(inst.A); err != nil {
		return nil, err
	}
	if inst.A.Rows() != inst.N {
		return nil, matrix.ErrDimensionMismatch
	}
	cov, err := NewCoverage(inst.N, inst.Sets)
	if err != nil {
		return nil, err
	}

	ev := &Evaluator{
		n:       inst.N,
		sign:    sign,
		a:       inst.A.RawData(),
		cov:     cov,
		x:       make([]float64, inst.N),
		covered: bitset.New(uint(inst.N)),
	}
	if ev.quad, err = inst.A.BindQuadForm(ev.x); err != nil {
		return nil, err
	}

	return ev, nil
}

// Inverse reports whether values are negated.
func (ev *Evaluator) Inverse() bool { return ev.sign < 0 }

// DomainSize returns n.
func (ev *Evaluator) DomainSize() int { return ev.n }

// Domain returns 0..n−1.
func (ev *Evaluator) Domain() []int {
	d := make([]int, ev.n)
	for i := range d {
		d[i] = i
	}

	return d
}

// Evaluate computes the objective of sol and caches it on sol.
func (ev *Evaluator) Evaluate(sol *solution.Solution[int]) float64 {
	ev.setVariables(sol)
	c := ev.sign * ev.quad.Eval()
	sol.SetCost(c)

	return c
}

// InsertionCost returns the change from adding e; 0 if e is present.
func (ev *Evaluator) InsertionCost(e int, sol *solution.Solution[int]) float64 {
	ev.setVariables(sol)

	return ev.sign * ev.insertion(e)
}

// RemovalCost returns the change from removing e; 0 if e is absent and
// forbidden if the rest does not cover the universe.
func (ev *Evaluator) RemovalCost(e int, sol *solution.Solution[int]) float64 {
	ev.setVariables(sol)

	return ev.sign * ev.removal(e, sol)
}

// ExchangeCost returns the change from swapping out for in.
func (ev *Evaluator) ExchangeCost(in, out int, sol *solution.Solution[int]) float64 {
	ev.setVariables(sol)

	return ev.sign * ev.exchange(in, out, sol)
}

// DoubleExchangeCost returns the change from adding in1 and in2 while
// removing out. Degenerate moves (repeated elements, an in already present,
// out absent) are forbidden, as is any move that breaks coverage.
func (ev *Evaluator) DoubleExchangeCost(in1, in2, out int, sol *solution.Solution[int]) float64 {
	ev.setVariables(sol)

	return ev.sign * ev.doubleExchange(in1, in2, out, sol)
}

// IsFeasible reports whether the selected sets cover the universe.
func (ev *Evaluator) IsFeasible(sol *solution.Solution[int]) bool {
	ev.cov.unionInto(ev.covered, sol, -1)

	return ev.cov.full(ev.covered)
}

// Candidates returns every unselected set when sol is feasible, and only
// the unselected sets covering some uncovered element otherwise.
func (ev *Evaluator) Candidates(sol *solution.Solution[int]) []int {
	ev.cov.unionInto(ev.covered, sol, -1)
	feasible := ev.cov.full(ev.covered)

	out := make([]int, 0, ev.n-sol.Size())
	for i := 0; i < ev.n; i++ {
		if sol.Contains(i) {
			continue
		}
		if feasible || ev.cov.adds(i, ev.covered) {
			out = append(out, i)
		}
	}

	return out
}

// setVariables resets the indicator vector to sol.
func (ev *Evaluator) setVariables(sol *solution.Solution[int]) {
	clear(ev.x)
	for i := range sol.All() {
		ev.x[i] = 1
	}
}

// sym returns a_ij + a_ji.
func (ev *Evaluator) sym(i, j int) float64 {
	return ev.a[i*ev.n+j] + ev.a[j*ev.n+i]
}

// contribution is Σ_{j≠i} x_j(a_ij + a_ji) + a_ii.
func (ev *Evaluator) contribution(i int) float64 {
	var (
		sum float64
		j   int
	)
	for j = 0; j < ev.n; j++ {
		if j != i && ev.x[j] == 1 {
			sum += ev.sym(i, j)
		}
	}

	return sum + ev.a[i*ev.n+i]
}

// feasibleAfter reports whether sol − out + ins covers the universe.
func (ev *Evaluator) feasibleAfter(sol *solution.Solution[int], out int, ins ...int) bool {
	ev.cov.unionInto(ev.covered, sol, out)
	for _, i := range ins {
		ev.covered.InPlaceUnion(ev.cov.rows[i])
	}

	return ev.cov.full(ev.covered)
}

// The raw deltas below assume setVariables(sol) has run.

func (ev *Evaluator) insertion(i int) float64 {
	if ev.x[i] == 1 {
		return 0
	}

	return ev.contribution(i)
}

func (ev *Evaluator) removal(i int, sol *solution.Solution[int]) float64 {
	if ev.x[i] == 0 {
		return 0
	}
	if !ev.feasibleAfter(sol, i) {
		return math.Inf(-1)
	}

	return -ev.contribution(i)
}

func (ev *Evaluator) exchange(in, out int, sol *solution.Solution[int]) float64 {
	switch {
	case in == out:
		return 0
	case ev.x[in] == 1:
		return ev.removal(out, sol)
	case ev.x[out] == 0:
		return ev.insertion(in)
	}
	if !ev.feasibleAfter(sol, out, in) {
		return math.Inf(-1)
	}

	return ev.contribution(in) - ev.contribution(out) - ev.sym(in, out)
}

func (ev *Evaluator) doubleExchange(in1, in2, out int, sol *solution.Solution[int]) float64 {
	if in1 == out || in2 == out || in1 == in2 ||
		ev.x[in1] == 1 || ev.x[in2] == 1 || ev.x[out] == 0 {
		return math.Inf(-1)
	}
	if !ev.feasibleAfter(sol, out, in1, in2) {
		return math.Inf(-1)
	}

	return ev.contribution(in1) + ev.contribution(in2) - ev.contribution(out) -
		ev.sym(in1, out) + ev.sym(in1, in2) - ev.sym(in2, out)
}
