package queries

import (
	"context"

	"github.com/taskrankhq/taskrank/internal/prioritize/application/services"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
)

// AnalyzeTasksQuery scores every stored task under the named strategy.
type AnalyzeTasksQuery struct {
	Strategy string
}

// AnalyzeTasksHandler loads the stored batch and runs the analysis pipeline
// over it.
type AnalyzeTasksHandler struct {
	taskRepo task.Repository
	analyzer *services.Analyzer
}

// NewAnalyzeTasksHandler creates a new AnalyzeTasksHandler.
func NewAnalyzeTasksHandler(taskRepo task.Repository, analyzer *services.Analyzer) *AnalyzeTasksHandler {
	if analyzer == nil {
		analyzer = services.NewAnalyzer(nil)
	}
	return &AnalyzeTasksHandler{taskRepo: taskRepo, analyzer: analyzer}
}

// Handle executes the AnalyzeTasksQuery.
func (h *AnalyzeTasksHandler) Handle(ctx context.Context, query AnalyzeTasksQuery) (*services.Analysis, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return h.analyzer.Analyze(toDescriptions(tasks), query.Strategy)
}

// SuggestTasksQuery returns the top-ranked stored tasks for today.
type SuggestTasksQuery struct {
	Strategy string
}

// SuggestTasksHandler handles the SuggestTasksQuery.
type SuggestTasksHandler struct {
	taskRepo task.Repository
	analyzer *services.Analyzer
}

// NewSuggestTasksHandler creates a new SuggestTasksHandler.
func NewSuggestTasksHandler(taskRepo task.Repository, analyzer *services.Analyzer) *SuggestTasksHandler {
	if analyzer == nil {
		analyzer = services.NewAnalyzer(nil)
	}
	return &SuggestTasksHandler{taskRepo: taskRepo, analyzer: analyzer}
}

// Handle executes the SuggestTasksQuery.
func (h *SuggestTasksHandler) Handle(ctx context.Context, query SuggestTasksQuery) (*services.SuggestResult, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return h.analyzer.Suggest(toDescriptions(tasks), query.Strategy)
}

// toDescriptions projects stored tasks into the engine's read-only input
// shape.
func toDescriptions(tasks []*task.Task) []services.TaskDescription {
	descs := make([]services.TaskDescription, len(tasks))
	for i, t := range tasks {
		title := t.Title()
		dueDate := t.DueDate()
		hours := t.EstimatedHours()
		importance := t.Importance()
		descs[i] = services.TaskDescription{
			ID:             t.ID().String(),
			Title:          &title,
			DueDate:        &dueDate,
			EstimatedHours: &hours,
			Importance:     &importance,
			Dependencies:   t.Dependencies(),
		}
	}
	return descs
}
