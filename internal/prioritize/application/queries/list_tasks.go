package queries

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// TaskDTO is a data transfer object for stored tasks.
type TaskDTO struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	DueDate        value_objects.Date `json:"due_date"`
	EstimatedHours float64            `json:"estimated_hours"`
	Importance     int                `json:"importance"`
	Dependencies   []string           `json:"dependencies"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	SortBy    string // "created_at" (default) or "due_date"
	SortOrder string // "asc" or "desc" (default "desc" for created_at)
	Limit     int    // 0 = no limit
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery. The default ordering is newest first.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	tasks, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sortTasks(tasks, query.SortBy, query.SortOrder)

	if query.Limit > 0 && len(tasks) > query.Limit {
		tasks = tasks[:query.Limit]
	}

	return toTaskDTOs(tasks), nil
}

func sortTasks(tasks []*task.Task, sortBy, sortOrder string) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if sortOrder == "" {
		sortOrder = "desc"
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "due_date":
			less = tasks[i].DueDate().Time().Before(tasks[j].DueDate().Time())
		default:
			less = tasks[i].CreatedAt().Before(tasks[j].CreatedAt())
		}
		if sortOrder == "desc" {
			return !less
		}
		return less
	})
}

func toTaskDTOs(tasks []*task.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = toTaskDTO(t)
	}
	return dtos
}

func toTaskDTO(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		DueDate:        t.DueDate(),
		EstimatedHours: t.EstimatedHours(),
		Importance:     t.Importance(),
		Dependencies:   t.Dependencies(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}
