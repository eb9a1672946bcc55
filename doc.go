// Package tabusearch is the root of a Tabu Search toolkit for combinatorial
// optimization over a finite ground set, shipped with a Set-Covering
// Quadratic Binary Function (SCQBF) problem.
//
// Layout:
//
//   - solution   – ordered selection of elements with a cached cost
//   - matrix     – dense coefficient storage and quadratic forms
//   - tabu       – the generic engine and its Evaluator contract
//   - scqbf      – SCQBF instances and evaluators
//   - metrics    – Prometheus observer for engine events
//   - cmd/tabusearch – command-line driver
//
// Quick start:
//
//	inst, _ := scqbf.Load("instances/n25.txt")
//	eval, _ := scqbf.NewInverse(inst) // the engine minimizes
//	eng, _ := tabu.New[int](eval, tabu.WithTimeLimit(time.Minute))
//	res, _ := eng.Solve(ctx)
//	fmt.Println(-res.Cost, res.Best)
package tabusearch
