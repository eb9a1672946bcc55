// Package tabu - validation of Options.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending value where that helps.
package tabu

import "fmt"

// validateOptions checks internal consistency of Options.
//
// Complexity: O(len(DiversifySchedule)).
func validateOptions(opts Options) error {
	if opts.Tenure <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadTenure, opts.Tenure)
	}
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: got %s", ErrBadTimeLimit, opts.TimeLimit)
	}
	if opts.MaxIterations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIterations, opts.MaxIterations)
	}
	if opts.TimeLimit == 0 && opts.MaxIterations == 0 {
		return ErrNoStopCriterion
	}
	switch opts.Strategy {
	case FirstImproving, BestImproving:
		// ok
	default:
		return fmt.Errorf("%w: %s", ErrBadStrategy, opts.Strategy)
	}
	if opts.Diversification {
		if err := validateSchedule(opts.DiversifySchedule); err != nil {
			return err
		}
	}

	return nil
}

// validateSchedule enforces After > 0, non-decreasing thresholds and
// Fraction ∈ (0,1]. An empty schedule is legal: diversification never fires.
func validateSchedule(steps []DiversifyStep) error {
	var (
		i    int
		prev int // previous threshold
	)
	for i = range steps {
		s := steps[i]
		if s.After <= 0 || s.After < prev {
			return fmt.Errorf("%w: step %d threshold %d", ErrBadSchedule, i, s.After)
		}
		if !(s.Fraction > 0 && s.Fraction <= 1) {
			return fmt.Errorf("%w: step %d fraction %g", ErrBadSchedule, i, s.Fraction)
		}
		prev = s.After
	}

	return nil
}
