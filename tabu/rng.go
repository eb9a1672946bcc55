// Package tabu - RNG utilities for the randomized construction phase.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs (given the same iteration count).
//   - Encapsulation: every Engine owns its own *rand.Rand; no process-wide
//     source, so independent engines never interfere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. An Engine is single-threaded.
package tabu

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// pickUniform returns an element of xs chosen uniformly at random.
// xs must be non-empty.
func pickUniform[E any](rng *rand.Rand, xs []E) E {
	return xs[rng.Intn(len(xs))]
}
