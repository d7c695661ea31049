package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task exists for a given identifier.
var ErrTaskNotFound = errors.New("task not found")

// Repository defines the interface for task persistence.
type Repository interface {
	Save(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	FindAll(ctx context.Context) ([]*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
