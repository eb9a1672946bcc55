// Package tabu provides a generic Tabu Search engine for combinatorial
// optimization over a finite ground set.
//
// The engine is parameterized by the element type E and programs only
// against the Evaluator contract (see evaluator.go):
//
//   - Construction (semi-greedy, randomized): candidates tied at the minimum
//     insertion delta form the RCL; one is picked uniformly at random until
//     the solution is feasible.
//
//   - Local search: each iteration applies one insertion, removal or
//     exchange, chosen first-improving or best-improving. The tabu list
//     (FIFO of 2·tenure entries) forbids reversing recent moves unless the
//     move would beat the best known cost (aspiration).
//
//   - Intensification (optional): exhaustive double exchange (two in, one
//     out) after an improvement that ends a stagnation streak.
//
//   - Diversification (optional): restart from the best solution plus the
//     least frequently used elements after 50/150/500 idle iterations.
//
// The engine minimizes. Maximization objectives must be negated by the
// Evaluator. Runs are single-threaded and deterministic for a given Seed and
// iteration count; the wall-clock budget is checked once per iteration.
//
// Logging uses the logr.Logger carried by the context passed to Solve
// (logr.NewContext); without one the engine is silent.
//
// Example:
//
//	eval := scqbf.NewInverse(inst)
//	eng, err := tabu.New[int](eval,
//	    tabu.WithTenure(20),
//	    tabu.WithTimeLimit(30*time.Second),
//	    tabu.WithIntensification(true),
//	)
//	if err != nil {
//	    return err
//	}
//	res, err := eng.Solve(ctx)
package tabu
