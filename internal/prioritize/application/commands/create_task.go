package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// CreateTaskCommand contains the data needed to create a task record.
type CreateTaskCommand struct {
	Title          string
	DueDate        value_objects.Date
	EstimatedHours float64
	Importance     int
	Dependencies   []string
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID uuid.UUID
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	t, err := task.NewTask(cmd.Title, cmd.DueDate, cmd.EstimatedHours, cmd.Importance, cmd.Dependencies)
	if err != nil {
		return nil, err
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return &CreateTaskResult{TaskID: t.ID()}, nil
}
