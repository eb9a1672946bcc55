package tabu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/tabusearch/solution"
)

// Sentinel errors returned by the engine. Match with errors.Is.
var (
	// ErrNilEvaluator indicates that New was called without an Evaluator.
	ErrNilEvaluator = errors.New("tabu: evaluator is nil")

	// ErrEmptyDomain indicates an Evaluator whose ground set is empty.
	ErrEmptyDomain = errors.New("tabu: evaluator domain is empty")

	// ErrBadTenure indicates a non-positive tabu tenure.
	ErrBadTenure = errors.New("tabu: tenure must be positive")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("tabu: time limit must be non-negative")

	// ErrBadMaxIterations indicates a negative iteration cap.
	ErrBadMaxIterations = errors.New("tabu: max iterations must be non-negative")

	// ErrNoStopCriterion indicates that both TimeLimit and MaxIterations are zero.
	ErrNoStopCriterion = errors.New("tabu: time limit or max iterations must be positive")

	// ErrBadStrategy indicates an unknown move-selection strategy.
	ErrBadStrategy = errors.New("tabu: unknown move strategy")

	// ErrBadSchedule indicates a diversification step with a non-positive
	// threshold, a fraction outside (0,1], or thresholds that decrease.
	ErrBadSchedule = errors.New("tabu: invalid diversification schedule")

	// ErrNoCandidates indicates that the Evaluator proposed no candidate while
	// the partial solution was still infeasible. This violates the Evaluator
	// contract: the full ground set must always admit a feasible solution.
	ErrNoCandidates = errors.New("tabu: no candidates for an infeasible solution")
)

// Strategy selects how a neighborhood is explored each iteration.
type Strategy int

const (
	// FirstImproving applies the first admissible improving move found while
	// scanning insertions, removals and exchanges in that order.
	FirstImproving Strategy = iota

	// BestImproving scans the whole neighborhood and applies the admissible
	// move with the smallest delta, whatever its sign.
	BestImproving
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case FirstImproving:
		return "first"
	case BestImproving:
		return "best"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "first"/"best" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "first-improving", "first_improving":
		return FirstImproving, nil
	case "best", "best-improving", "best_improving":
		return BestImproving, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, s)
	}
}

// DiversifyStep fires a restart once the number of iterations since the last
// improvement reaches After; Fraction of the domain is then forced in.
type DiversifyStep struct {
	After    int     // iterations without improvement
	Fraction float64 // share of the domain added, in (0,1]
}

// StopReason tells why the main loop ended.
type StopReason string

const (
	StopTimeLimit     StopReason = "time-limit"
	StopMaxIterations StopReason = "max-iterations"
	StopCanceled      StopReason = "canceled"
)

// Result holds the outcome of a Solve call.
type Result[E comparable] struct {
	// Best is a snapshot of the best solution found; never aliased to the
	// engine's working solution.
	Best *solution.Solution[E]

	// Cost is the evaluated cost of Best.
	Cost float64

	// ConstructionCost is the cost of the solution built by the constructive
	// heuristic, and ConstructionSteps the number of insertions it took.
	ConstructionCost  float64
	ConstructionSteps int

	Iterations       int // completed main-loop iterations
	Improvements     int // times the best solution was replaced
	Intensifications int // successful intensification moves
	Diversifications int // restarts performed

	Elapsed    time.Duration
	StopReason StopReason
	RunID      string
}
