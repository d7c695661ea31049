package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyBatch is returned when an analysis is requested for zero tasks.
var ErrEmptyBatch = errors.New("no tasks provided")

// TaskValidation reports the validation failures of one task, keyed by its
// position in the submitted batch.
type TaskValidation struct {
	Index    int
	Messages []string
}

// BatchValidationError aggregates validation failures across a whole batch.
// Every failing task is reported, not just the first.
type BatchValidationError struct {
	Failures []TaskValidation
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d of the submitted tasks", len(e.Failures))
}

// ScoredTask is a task description augmented with its scoring output.
type ScoredTask struct {
	TaskDescription
	PriorityScore  float64   `json:"priority_score"`
	ScoreBreakdown Breakdown `json:"score_breakdown"`
	Explanation    string    `json:"explanation"`
}

// Analysis is the full result of analyzing a batch: tasks sorted by
// descending priority score, the cycle-flagged identifiers, and the
// strategy actually applied.
type Analysis struct {
	Tasks                []ScoredTask `json:"tasks"`
	CircularDependencies []string     `json:"circular_dependencies"`
	StrategyUsed         Strategy     `json:"strategy_used"`
	TotalTasks           int          `json:"total_tasks"`
}

// Suggestion is one of the top-ranked tasks with a direct-address reason to
// work on it today.
type Suggestion struct {
	ScoredTask
	Rank   int    `json:"rank"`
	Reason string `json:"reason"`
}

// SuggestResult holds the top-N suggestions for a batch.
type SuggestResult struct {
	Suggestions  []Suggestion `json:"suggestions"`
	StrategyUsed Strategy     `json:"strategy_used"`
}

// suggestionLimit caps how many tasks the suggestion mode surfaces.
const suggestionLimit = 3

// Analyzer runs the validate / cycle-check / score pipeline over a batch.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	engine *Engine
}

// NewAnalyzer creates an analyzer backed by the given engine. A nil engine
// gets the default wall-clock engine.
func NewAnalyzer(engine *Engine) *Analyzer {
	if engine == nil {
		engine = NewEngine()
	}
	return &Analyzer{engine: engine}
}

// Analyze validates every task, detects dependency cycles across the batch,
// scores each task under the named strategy, and returns the tasks sorted by
// descending priority score. Validation failures abort before any scoring.
func (a *Analyzer) Analyze(tasks []TaskDescription, strategyName string) (*Analysis, error) {
	if len(tasks) == 0 {
		return nil, ErrEmptyBatch
	}

	if err := a.validateBatch(tasks); err != nil {
		return nil, err
	}

	strategy := ResolveStrategy(strategyName)
	scored := make([]ScoredTask, 0, len(tasks))
	for i, task := range tasks {
		result, err := a.engine.Score(task, strategy)
		if err != nil {
			return nil, fmt.Errorf("failed to score task %d: %w", i, err)
		}
		scored = append(scored, ScoredTask{
			TaskDescription: task,
			PriorityScore:   result.PriorityScore,
			ScoreBreakdown:  result.Breakdown,
			Explanation:     result.Explanation,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})

	return &Analysis{
		Tasks:                scored,
		CircularDependencies: DetectCycles(tasks),
		StrategyUsed:         strategy,
		TotalTasks:           len(scored),
	}, nil
}

// Suggest runs the same pipeline and returns the highest-scoring tasks with
// a 1-based rank and a "why work on this today" sentence.
func (a *Analyzer) Suggest(tasks []TaskDescription, strategyName string) (*SuggestResult, error) {
	analysis, err := a.Analyze(tasks, strategyName)
	if err != nil {
		return nil, err
	}

	top := analysis.Tasks
	if len(top) > suggestionLimit {
		top = top[:suggestionLimit]
	}

	suggestions := make([]Suggestion, 0, len(top))
	for i, task := range top {
		rank := i + 1
		suggestions = append(suggestions, Suggestion{
			ScoredTask: task,
			Rank:       rank,
			Reason:     suggestReason(task.ScoreBreakdown, rank),
		})
	}

	return &SuggestResult{
		Suggestions:  suggestions,
		StrategyUsed: analysis.StrategyUsed,
	}, nil
}

func (a *Analyzer) validateBatch(tasks []TaskDescription) error {
	var failures []TaskValidation
	for i, task := range tasks {
		if messages := ValidateTask(task); len(messages) > 0 {
			failures = append(failures, TaskValidation{Index: i, Messages: messages})
		}
	}
	if len(failures) > 0 {
		return &BatchValidationError{Failures: failures}
	}
	return nil
}

// suggestRules mirrors the explanation thresholds but phrases each clause as
// direct address.
var suggestRules = []explainRule{
	{func(b Breakdown) bool { return b.UrgencyScore > 95 }, "it is overdue and needs immediate attention"},
	{func(b Breakdown) bool { return b.UrgencyScore > 85 && b.UrgencyScore <= 95 }, "it is due very soon"},
	{func(b Breakdown) bool { return b.UrgencyScore > 70 && b.UrgencyScore <= 85 }, "its deadline is approaching"},
	{func(b Breakdown) bool { return b.ImportanceScore > 80 }, "it carries a high importance rating"},
	{func(b Breakdown) bool { return b.ImportanceScore > 50 && b.ImportanceScore <= 80 }, "it is moderately important"},
	{func(b Breakdown) bool { return b.EffortScore > 70 }, "you can finish it quickly"},
	{func(b Breakdown) bool { return b.EffortScore < 30 }, "it needs a significant block of time"},
	{func(b Breakdown) bool { return b.DependencyScore > 20 }, "it unblocks other work"},
}

const suggestDefaultClause = "it offers the best balance across all factors"

func suggestReason(b Breakdown, rank int) string {
	var clauses []string
	if rank == 1 {
		clauses = append(clauses, "this is your highest priority task")
	}
	for _, rule := range suggestRules {
		if rule.applies(b) {
			clauses = append(clauses, rule.clause)
		}
	}
	if len(clauses) == 0 {
		clauses = append(clauses, suggestDefaultClause)
	}
	return capitalize(strings.Join(clauses, ", ")) + "."
}
