// Package scqbf implements the Set-Covering Quadratic Binary Function
// problem on top of the tabu.Evaluator contract.
//
// A solution selects ground-set elements ("sets") by index 0..n−1. Set i
// covers some elements of a universe of the same size n; a selection is
// feasible iff the union of the covered elements is the whole universe.
// The objective is the quadratic form xᵀAx over the 0/1 indicator vector x
// of the selection, with A stored upper-triangular.
//
// Two evaluators share one implementation:
//
//   - New returns the raw objective (larger is better for the original
//     maximization problem);
//   - NewInverse negates every returned value so the tabu engine, which
//     minimizes, maximizes the raw objective.
//
// Forbidden moves (a removal or exchange that uncovers part of the universe,
// or a nonsensical double exchange) return −∞ from the raw evaluator and +∞
// from the inverse one.
//
// Instances are read with Load or Parse (see instance.go for the format).
package scqbf
