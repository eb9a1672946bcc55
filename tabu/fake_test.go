package tabu

import (
	"math"

	"github.com/katalvlaran/tabusearch/solution"
)

// linearEval is a minimal Evaluator: cost(S) = Σ w_i over S, feasible iff S
// holds at least one element. Removing the last element is forbidden.
type linearEval struct {
	w     []float64
	noCL  bool // Candidates always empty (contract violation)
	calls int  // Evaluate calls
}

func (l *linearEval) DomainSize() int { return len(l.w) }

func (l *linearEval) Domain() []int {
	d := make([]int, len(l.w))
	for i := range d {
		d[i] = i
	}

	return d
}

func (l *linearEval) Evaluate(sol *solution.Solution[int]) float64 {
	l.calls++
	var c float64
	for i := range sol.All() {
		c += l.w[i]
	}
	sol.SetCost(c)

	return c
}

func (l *linearEval) InsertionCost(e int, sol *solution.Solution[int]) float64 {
	if sol.Contains(e) {
		return 0
	}

	return l.w[e]
}

func (l *linearEval) RemovalCost(e int, sol *solution.Solution[int]) float64 {
	if !sol.Contains(e) {
		return 0
	}
	if sol.Size() == 1 {
		return math.Inf(1)
	}

	return -l.w[e]
}

func (l *linearEval) ExchangeCost(in, out int, sol *solution.Solution[int]) float64 {
	switch {
	case in == out:
		return 0
	case sol.Contains(in):
		return l.RemovalCost(out, sol)
	case !sol.Contains(out):
		return l.InsertionCost(in, sol)
	}

	return l.w[in] - l.w[out]
}

func (l *linearEval) DoubleExchangeCost(in1, in2, out int, sol *solution.Solution[int]) float64 {
	if in1 == out || in2 == out || in1 == in2 ||
		sol.Contains(in1) || sol.Contains(in2) || !sol.Contains(out) {
		return math.Inf(1)
	}

	return l.w[in1] + l.w[in2] - l.w[out]
}

func (l *linearEval) IsFeasible(sol *solution.Solution[int]) bool { return sol.Size() > 0 }

func (l *linearEval) Candidates(sol *solution.Solution[int]) []int {
	if l.noCL {
		return nil
	}
	var out []int
	for i := range l.w {
		if !sol.Contains(i) {
			out = append(out, i)
		}
	}

	return out
}

var _ Evaluator[int] = (*linearEval)(nil)
