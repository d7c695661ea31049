package services

import (
	"errors"
	"math"
	"time"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

var ErrMissingDueDate = errors.New("task has no due date")

// Breakdown holds the four independent sub-scores behind a priority score.
type Breakdown struct {
	UrgencyScore    float64 `json:"urgency_score"`
	ImportanceScore float64 `json:"importance_score"`
	EffortScore     float64 `json:"effort_score"`
	DependencyScore float64 `json:"dependency_score"`
}

// Result is the outcome of scoring a single task.
type Result struct {
	PriorityScore float64   `json:"priority_score"`
	Breakdown     Breakdown `json:"breakdown"`
	Explanation   string    `json:"explanation"`
	StrategyUsed  Strategy  `json:"strategy_used"`
}

// Engine computes priority scores from task attributes. It performs no I/O
// and never mutates its input; the only ambient dependency is the clock,
// which is injectable for reproducible tests.
type Engine struct {
	clock func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock overrides the wall clock used to compute days until due.
func WithClock(clock func() time.Time) EngineOption {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// NewEngine creates a scoring engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score computes the weighted priority score, its breakdown, and a
// human-readable explanation for one task under the given strategy.
func (e *Engine) Score(d TaskDescription, strategy Strategy) (Result, error) {
	if d.DueDate == nil {
		return Result{}, ErrMissingDueDate
	}

	today := value_objects.DateFromTime(e.clock())

	breakdown := Breakdown{
		UrgencyScore:    urgencyScore(today.DaysUntil(*d.DueDate)),
		ImportanceScore: importanceScore(intOrZero(d.Importance)),
		EffortScore:     effortScore(floatOrZero(d.EstimatedHours)),
		DependencyScore: dependencyScore(len(d.Dependencies)),
	}

	weights := strategy.Weights()
	score := breakdown.UrgencyScore*weights.Urgency +
		breakdown.ImportanceScore*weights.Importance +
		breakdown.EffortScore*weights.Effort +
		breakdown.DependencyScore*weights.Dependencies

	return Result{
		PriorityScore: round2(score),
		Breakdown:     breakdown,
		Explanation:   explain(breakdown, strategy),
		StrategyUsed:  strategy,
	}, nil
}

// urgencyScore maps days until due to a score in [10, 150]. Overdue tasks
// escalate 5 points per day, capped at 150.
func urgencyScore(daysUntilDue int) float64 {
	switch {
	case daysUntilDue < 0:
		return math.Min(150, 100+math.Abs(float64(daysUntilDue))*5)
	case daysUntilDue == 0:
		return 95
	case daysUntilDue == 1:
		return 85
	case daysUntilDue <= 3:
		return 70
	case daysUntilDue <= 7:
		return 50
	case daysUntilDue <= 14:
		return 30
	default:
		return 10
	}
}

func importanceScore(importance int) float64 {
	return float64(importance) / 10 * 100
}

// effortScore is inverse: shorter tasks score higher.
func effortScore(estimatedHours float64) float64 {
	return math.Max(0, 100-estimatedHours*10)
}

func dependencyScore(count int) float64 {
	return float64(count) * 15
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
