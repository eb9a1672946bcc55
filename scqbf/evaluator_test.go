package scqbf_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tabusearch/matrix"
	"github.com/katalvlaran/tabusearch/scqbf"
	"github.com/katalvlaran/tabusearch/solution"
	"github.com/katalvlaran/tabusearch/tabu"
)

const eps = 1e-9

func TestWorkedExample(t *testing.T) {
	inst := parse(t, workedExample)

	raw, err := scqbf.New(inst)
	require.NoError(t, err)
	inv, err := scqbf.NewInverse(inst)
	require.NoError(t, err)
	require.False(t, raw.Inverse())
	require.True(t, inv.Inverse())

	both := solution.Of(0, 1)
	require.Equal(t, 6.0, raw.Evaluate(both))
	c, ok := both.Cost()
	require.True(t, ok)
	require.Equal(t, 6.0, c)
	require.Equal(t, -6.0, inv.Evaluate(both))

	first := solution.Of(0)
	require.Equal(t, 1.0, raw.Evaluate(first))
	require.Equal(t, 5.0, raw.InsertionCost(1, first))
	require.Equal(t, raw.Evaluate(both)-raw.Evaluate(first), raw.InsertionCost(1, first))
	require.Equal(t, -5.0, inv.InsertionCost(1, first))

	require.Equal(t, 0.0, raw.InsertionCost(0, first), "already selected")
	require.Equal(t, 0.0, raw.RemovalCost(1, first), "not selected")
}

func TestForbiddenSentinelSign(t *testing.T) {
	inst := parse(t, workedExample)
	raw, err := scqbf.New(inst)
	require.NoError(t, err)
	inv, err := scqbf.NewInverse(inst)
	require.NoError(t, err)

	both := solution.Of(0, 1)
	require.True(t, math.IsInf(raw.RemovalCost(0, both), -1))
	require.True(t, math.IsInf(inv.RemovalCost(0, both), 1))
	require.True(t, tabu.Forbidden(inv.RemovalCost(0, both)))

	// Double exchange guards.
	require.True(t, math.IsInf(raw.DoubleExchangeCost(0, 0, 1, solution.Of(1)), -1))
	require.True(t, math.IsInf(raw.DoubleExchangeCost(0, 1, 1, solution.Of(1)), -1))
	require.True(t, math.IsInf(raw.DoubleExchangeCost(0, 1, 0, solution.New[int]()), -1))
}

func TestFeasibilityAndCandidates(t *testing.T) {
	// S0={1,2}, S1={2}, S2={3}.
	inst := parse(t, "3  2 1 1  1 2  2  3  0 0 0  0 0  0")
	ev, err := scqbf.NewInverse(inst)
	require.NoError(t, err)

	empty := solution.New[int]()
	require.False(t, ev.IsFeasible(empty))
	require.Equal(t, []int{0, 1, 2}, ev.Candidates(empty))

	// {0} covers 1 and 2: set 1 adds nothing while infeasible.
	s := solution.Of(0)
	require.False(t, ev.IsFeasible(s))
	require.Equal(t, []int{2}, ev.Candidates(s))

	s.Add(2)
	require.True(t, ev.IsFeasible(s))
	require.Equal(t, []int{1}, ev.Candidates(s), "feasible: every unselected set")

	// Removing 0 uncovers element 1; swapping 0 for 1 still uncovers it.
	require.True(t, tabu.Forbidden(ev.RemovalCost(0, s)))
	require.True(t, tabu.Forbidden(ev.ExchangeCost(1, 0, s)))
	require.False(t, tabu.Forbidden(ev.RemovalCost(1, solution.Of(0, 1, 2))), "set 1 is redundant")
}

func TestExchange_Degenerate(t *testing.T) {
	inst := parse(t, randomInstanceText(5, 3))
	ev, err := scqbf.New(inst)
	require.NoError(t, err)

	s := solution.Of(0, 1, 2, 3, 4)
	require.Equal(t, 0.0, ev.ExchangeCost(2, 2, s))
	require.Equal(t, ev.RemovalCost(3, s), ev.ExchangeCost(1, 3, s), "in already selected")

	s = solution.Of(0, 1)
	require.Equal(t, ev.InsertionCost(4, s), ev.ExchangeCost(4, 3, s), "out not selected")
}

func TestNew_Errors(t *testing.T) {
	_, err := scqbf.New(nil)
	require.ErrorIs(t, err, scqbf.ErrNilInstance)

	inst := parse(t, workedExample)
	inst.Sets = inst.Sets[:1]
	_, err = scqbf.NewInverse(inst)
	require.Error(t, err)

	inst = parse(t, workedExample)
	require.NoError(t, inst.A.Set(1, 1, math.Inf(1)))
	_, err = scqbf.New(inst)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// DeltaSuite checks every delta against the difference of two full
// evaluations on random instances and random selections.
type DeltaSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *DeltaSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

func (s *DeltaSuite) randomSolution(n int) *solution.Solution[int] {
	sol := solution.New[int]()
	for i := 0; i < n; i++ {
		if s.rng.Intn(3) > 0 {
			sol.Add(i)
		}
	}

	return sol
}

// diff returns Evaluate(after) − Evaluate(before), or −∞ when after is
// infeasible and mustCover is set.
func diff(ev *scqbf.Evaluator, before, after *solution.Solution[int], mustCover bool) float64 {
	if mustCover && !ev.IsFeasible(after) {
		return math.Inf(-1)
	}

	return ev.Evaluate(after) - ev.Evaluate(before)
}

func (s *DeltaSuite) requireDelta(want, got float64, msg string) {
	if math.IsInf(want, -1) {
		s.Require().True(math.IsInf(got, -1), "%s: want −Inf, got %v", msg, got)
		return
	}
	s.Require().InDelta(want, got, eps, msg)
}

func (s *DeltaSuite) TestDeltasMatchFullEvaluation() {
	const n = 8
	for seed := int64(1); seed <= 5; seed++ {
		inst, err := scqbf.Parse(stringsReader(randomInstanceText(n, seed)))
		s.Require().NoError(err)
		ev, err := scqbf.New(inst)
		s.Require().NoError(err)

		for trial := 0; trial < 10; trial++ {
			sol := s.randomSolution(n)
			before := sol.Clone()

			for e := 0; e < n; e++ {
				if !sol.Contains(e) {
					after := sol.Clone()
					after.Add(e)
					s.requireDelta(diff(ev, sol, after, false), ev.InsertionCost(e, sol), "insert")
					continue
				}
				if !ev.IsFeasible(sol) {
					continue // removal feasibility is only meaningful from a cover
				}
				after := sol.Clone()
				after.Remove(e)
				s.requireDelta(diff(ev, sol, after, true), ev.RemovalCost(e, sol), "remove")
			}

			if !ev.IsFeasible(sol) {
				s.Require().Equal(before.Elements(), sol.Elements(), "deltas must not mutate")
				continue
			}
			for in := 0; in < n; in++ {
				for out := 0; out < n; out++ {
					if sol.Contains(in) || !sol.Contains(out) {
						continue
					}
					after := sol.Clone()
					after.Remove(out)
					after.Add(in)
					s.requireDelta(diff(ev, sol, after, true), ev.ExchangeCost(in, out, sol), "exchange")

					for in2 := in + 1; in2 < n; in2++ {
						if sol.Contains(in2) {
							continue
						}
						after2 := after.Clone()
						after2.Add(in2)
						s.requireDelta(diff(ev, sol, after2, true),
							ev.DoubleExchangeCost(in, in2, out, sol), "double exchange")
					}
				}
			}
			s.Require().Equal(before.Elements(), sol.Elements(), "deltas must not mutate")
		}
	}
}

func (s *DeltaSuite) TestInverseNegatesEverything() {
	inst, err := scqbf.Parse(stringsReader(randomInstanceText(6, 9)))
	s.Require().NoError(err)
	raw, err := scqbf.New(inst)
	s.Require().NoError(err)
	inv, err := scqbf.NewInverse(inst)
	s.Require().NoError(err)

	sol := solution.Of(0, 1, 2, 3, 4, 5)
	s.Require().Equal(-raw.Evaluate(sol), inv.Evaluate(sol))
	for e := 0; e < 6; e++ {
		s.Require().Equal(-raw.RemovalCost(e, sol), inv.RemovalCost(e, sol))
	}
	sol.Remove(5)
	s.Require().Equal(-raw.InsertionCost(5, sol), inv.InsertionCost(5, sol))
	s.Require().Equal(-raw.ExchangeCost(5, 0, sol), inv.ExchangeCost(5, 0, sol))
}

func TestDeltaSuite(t *testing.T) {
	suite.Run(t, new(DeltaSuite))
}
