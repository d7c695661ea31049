package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
)

// DeleteTaskCommand removes a task record.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo task.Repository
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository) *DeleteTaskHandler {
	return &DeleteTaskHandler{taskRepo: taskRepo}
}

// Handle executes the DeleteTaskCommand.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	return h.taskRepo.Delete(ctx, cmd.TaskID)
}
