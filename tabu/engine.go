// Package tabu - the Tabu Search mainframe.
//
// A run is: constructive heuristic → tabu list initialization → main loop
// of neighborhood moves until the time budget, the iteration cap or the
// context stops it. The best solution snapshot is returned.
//
// Main loop, per iteration:
//  1. neighborhood move (first- or best-improving),
//  2. frequency update (diversification only),
//  3. on improvement: snapshot best, optional intensification when more than
//     one iteration passed since the previous improvement,
//  4. diversification trigger (diversification only).
//
// Stopping is coarse-grained: the deadline and ctx are checked once per
// iteration, never inside a scan, so a run can overrun its budget by one
// iteration.
package tabu

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/tabusearch/internal/logging"
	"github.com/katalvlaran/tabusearch/solution"
)

// Engine runs Tabu Search over an Evaluator. It is not safe for concurrent
// use; run independent engines for parallel searches.
type Engine[E comparable] struct {
	eval   Evaluator[E]
	opts   Options
	domain []E

	rng  *rand.Rand
	log  logr.Logger
	sol  *solution.Solution[E] // working solution
	best *solution.Solution[E] // best snapshot, never aliased to sol
	cl   []E                   // candidate list, recomputed every scan
	rcl  []E                   // restricted candidate list (construction)
	tl   *tabuList[E]
	freq map[E]int // iterations each element spent in the working solution

	start time.Time
	it    int
}

// New validates the configuration and returns a ready Engine.
func New[E comparable](eval Evaluator[E], opts ...Option) (*Engine[E], error) {
	if eval == nil {
		return nil, ErrNilEvaluator
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}
	if eval.DomainSize() <= 0 {
		return nil, ErrEmptyDomain
	}

	return &Engine[E]{
		eval:   eval,
		opts:   o,
		domain: eval.Domain(),
		log:    logr.Discard(),
	}, nil
}

// Options returns a copy of the effective configuration.
func (e *Engine[E]) Options() Options {
	return e.opts
}

// reset prepares per-run state; Solve is repeatable with the same seed.
func (e *Engine[E]) reset(ctx context.Context, runID string) {
	e.rng = rngFromSeed(e.opts.Seed)
	e.log = logr.FromContextOrDiscard(ctx).WithName("tabu").WithValues("run", runID)
	e.freq = make(map[E]int, len(e.domain))
	e.sol = nil
	e.best = nil
	e.tl = nil
	e.cl = e.cl[:0]
	e.rcl = e.rcl[:0]
	e.it = 0
}

// Solve runs the search and returns the best solution found.
//
// Cancellation of ctx ends the run early exactly like the time budget does:
// the best snapshot is returned with StopReason StopCanceled and a nil
// error. Errors are only returned for Evaluator contract violations.
func (e *Engine[E]) Solve(ctx context.Context) (Result[E], error) {
	runID := uuid.NewString()
	e.reset(ctx, runID)
	e.start = time.Now()

	initial, steps, err := e.construct()
	if err != nil {
		return Result[E]{RunID: runID}, err
	}
	res := Result[E]{
		ConstructionCost:  e.cost(initial),
		ConstructionSteps: steps,
		RunID:             runID,
	}
	e.updateFrequency()
	e.log.Info("constructive heuristic done",
		"cost", res.ConstructionCost, "size", initial.Size(), "steps", steps,
		"elapsed", time.Since(e.start))

	e.best = e.sol.Clone()
	e.tl = newTabuList[E](2 * e.opts.Tenure)
	e.emit(EventConstructed)

	var (
		lastImprove int // iteration of the latest improvement
		divCount    int // diversifications performed so far
		reason      StopReason
	)
	for e.it = 1; ; e.it++ {
		if reason = e.stopReason(ctx); reason != "" {
			break
		}

		e.neighborhoodMove()
		e.updateFrequency()

		if e.cost(e.sol) < e.cost(e.best) {
			e.best = e.sol.Clone()
			res.Improvements++
			e.log.V(logging.DEBUG).Info("improved",
				"it", e.it, "cost", e.cost(e.best), "size", e.best.Size(),
				"elapsed", time.Since(e.start))
			e.log.V(logging.TRACE).Info("best solution", "it", e.it, "best", e.best.String())
			e.emit(EventImproved)

			if e.opts.Intensification && e.it-lastImprove > 1 {
				if after, ok := e.intensify(); ok && e.cost(after) < e.cost(e.best) {
					e.best = after.Clone()
					res.Intensifications++
					e.log.Info("improved after intensification",
						"it", e.it, "cost", e.cost(e.best), "size", e.best.Size())
					e.emit(EventIntensified)
				}
			}
			lastImprove = e.it
		}

		if e.opts.Diversification && divCount < len(e.opts.DiversifySchedule) {
			step := e.opts.DiversifySchedule[divCount]
			if idle := e.it - lastImprove; idle >= step.After {
				added := e.diversify(step.Fraction)
				divCount++
				e.log.Info("diversifying",
					"it", e.it, "idle", idle, "fraction", step.Fraction, "added", added,
					"cost", e.cost(e.sol))
				e.emit(EventDiversified)
			}
		}

		e.emit(EventIteration)
	}

	res.Best = e.best.Clone()
	res.Cost = e.cost(res.Best)
	res.Iterations = e.it - 1
	res.Diversifications = divCount
	res.Elapsed = time.Since(e.start)
	res.StopReason = reason
	e.emit(EventFinished)
	e.log.Info("search finished",
		"reason", string(reason), "iterations", res.Iterations, "cost", res.Cost,
		"size", res.Best.Size(), "elapsed", res.Elapsed)

	return res, nil
}

// stopReason returns a non-empty reason when the loop must end before
// iteration e.it starts.
func (e *Engine[E]) stopReason(ctx context.Context) StopReason {
	if ctx.Err() != nil {
		return StopCanceled
	}
	if e.opts.TimeLimit > 0 && time.Since(e.start) >= e.opts.TimeLimit {
		return StopTimeLimit
	}
	if e.opts.MaxIterations > 0 && e.it > e.opts.MaxIterations {
		return StopMaxIterations
	}

	return ""
}

// cost returns the cached cost of s, evaluating it first when stale.
func (e *Engine[E]) cost(s *solution.Solution[E]) float64 {
	if c, ok := s.Cost(); ok {
		return c
	}

	return e.eval.Evaluate(s)
}

// updateFrequency counts one more iteration for every element of the
// working solution. Only tracked when diversification is enabled.
func (e *Engine[E]) updateFrequency() {
	if !e.opts.Diversification {
		return
	}
	for x := range e.sol.All() {
		e.freq[x]++
	}
}

// emit forwards an event to the observer, if any.
func (e *Engine[E]) emit(kind EventKind) {
	if e.opts.Observer == nil {
		return
	}
	ev := Event{
		Kind:      kind,
		Iteration: e.it,
		Cost:      math.NaN(),
		BestCost:  math.NaN(),
		Elapsed:   time.Since(e.start),
	}
	if e.sol != nil {
		ev.Cost = e.cost(e.sol)
		ev.Size = e.sol.Size()
	}
	if e.best != nil {
		ev.BestCost = e.cost(e.best)
	}
	if e.tl != nil {
		ev.TabuSize = e.tl.len()
	}
	e.opts.Observer.Observe(ev)
}
