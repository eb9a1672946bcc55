package tabu

import (
	"slices"
	"time"
)

// Defaults mirror the reference configuration of the search.
const (
	// DefaultTenure yields a tabu list of 2*20 entries.
	DefaultTenure = 20

	// DefaultTimeLimit is the wall-clock budget of one Solve call.
	DefaultTimeLimit = 30 * time.Minute
)

// DefaultDiversifySchedule returns the restart thresholds used when
// diversification is enabled: 5% after 50 idle iterations, 5% after 150,
// 10% after 500, then never again.
func DefaultDiversifySchedule() []DiversifyStep {
	return []DiversifyStep{
		{After: 50, Fraction: 0.05},
		{After: 150, Fraction: 0.05},
		{After: 500, Fraction: 0.10},
	}
}

// Options configures an Engine.
//
// Tenure            – tabu tenure; the tabu list holds 2*Tenure entries. Must be > 0.
// TimeLimit         – wall-clock budget checked once per iteration (0 ⇒ none).
// MaxIterations     – main-loop iteration cap (0 ⇒ none). At least one of
//
//	TimeLimit and MaxIterations must be positive.
//
// Strategy          – FirstImproving or BestImproving.
// Diversification   – enable frequency-based restarts (DiversifySchedule).
// Intensification   – enable the double-exchange search after improvements.
// Seed              – RNG seed for the randomized construction (0 ⇒ fixed default).
// Observer          – optional event sink (metrics, tracing); may be nil.
type Options struct {
	Tenure            int
	TimeLimit         time.Duration
	MaxIterations     int
	Strategy          Strategy
	Diversification   bool
	Intensification   bool
	DiversifySchedule []DiversifyStep
	Seed              int64
	Observer          Observer
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the defaults:
//   - Tenure:            DefaultTenure.
//   - TimeLimit:         DefaultTimeLimit.
//   - MaxIterations:     0 (no cap).
//   - Strategy:          FirstImproving.
//   - Diversification:   false.
//   - Intensification:   false.
//   - DiversifySchedule: DefaultDiversifySchedule().
//   - Seed:              0 (defaultRNGSeed).
func DefaultOptions() Options {
	return Options{
		Tenure:            DefaultTenure,
		TimeLimit:         DefaultTimeLimit,
		Strategy:          FirstImproving,
		DiversifySchedule: DefaultDiversifySchedule(),
	}
}

// WithOptions replaces the whole configuration.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
		dst.DiversifySchedule = slices.Clone(o.DiversifySchedule)
	}
}

// WithTenure sets the tabu tenure. Panics on t <= 0.
func WithTenure(t int) Option {
	return func(o *Options) {
		if t <= 0 {
			panic(ErrBadTenure.Error())
		}
		o.Tenure = t
	}
}

// WithTimeLimit sets the wall-clock budget. Panics on d < 0.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// WithMaxIterations caps the number of main-loop iterations. Panics on n < 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithStrategy selects the move-selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithBestImproving is shorthand for WithStrategy(BestImproving).
func WithBestImproving() Option {
	return WithStrategy(BestImproving)
}

// WithDiversification toggles frequency-based restarts.
func WithDiversification(on bool) Option {
	return func(o *Options) {
		o.Diversification = on
	}
}

// WithDiversifySchedule replaces the restart schedule (validated in New).
func WithDiversifySchedule(steps ...DiversifyStep) Option {
	return func(o *Options) {
		o.DiversifySchedule = slices.Clone(steps)
	}
}

// WithIntensification toggles the double-exchange intensification.
func WithIntensification(on bool) Option {
	return func(o *Options) {
		o.Intensification = on
	}
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithObserver registers an event sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}
