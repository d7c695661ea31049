package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// UpdateTaskCommand updates an existing task record. Nil fields are left
// untouched.
type UpdateTaskCommand struct {
	TaskID         uuid.UUID
	Title          *string
	DueDate        *value_objects.Date
	EstimatedHours *float64
	Importance     *int
	Dependencies   []string
	SetDeps        bool
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return err
		}
	}
	if cmd.DueDate != nil {
		if err := t.SetDueDate(*cmd.DueDate); err != nil {
			return err
		}
	}
	if cmd.EstimatedHours != nil {
		if err := t.SetEstimatedHours(*cmd.EstimatedHours); err != nil {
			return err
		}
	}
	if cmd.Importance != nil {
		if err := t.SetImportance(*cmd.Importance); err != nil {
			return err
		}
	}
	if cmd.SetDeps {
		t.SetDependencies(cmd.Dependencies)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}
