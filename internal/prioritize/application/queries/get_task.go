package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
)

// GetTaskQuery fetches a single task by identifier.
type GetTaskQuery struct {
	TaskID uuid.UUID
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle executes the GetTaskQuery.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*TaskDTO, error) {
	t, err := h.taskRepo.FindByID(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	dto := toTaskDTO(t)
	return &dto, nil
}
