package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

var (
	ErrEmptyTitle        = errors.New("task title cannot be empty")
	ErrImportanceRange   = errors.New("importance must be between 1 and 10")
	ErrEstimatedTooSmall = errors.New("estimated hours must be at least 0.5")
	ErrMissingDueDate    = errors.New("task due date is required")
)

// MinEstimatedHours is the smallest accepted effort estimate.
const MinEstimatedHours = 0.5

// Task is a stored unit of work. The record store owns identity and
// timestamps; the scoring engine only ever sees read-only projections.
type Task struct {
	id             uuid.UUID
	title          string
	dueDate        value_objects.Date
	estimatedHours float64
	importance     int
	dependencies   []string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTask creates a task record, assigning a fresh identifier.
func NewTask(title string, dueDate value_objects.Date, estimatedHours float64, importance int, dependencies []string) (*Task, error) {
	now := time.Now().UTC()
	t := &Task{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetDueDate(dueDate); err != nil {
		return nil, err
	}
	if err := t.SetEstimatedHours(estimatedHours); err != nil {
		return nil, err
	}
	if err := t.SetImportance(importance); err != nil {
		return nil, err
	}
	t.SetDependencies(dependencies)
	return t, nil
}

// Rehydrate recreates a task from persisted state.
func Rehydrate(
	id uuid.UUID,
	title string,
	dueDate value_objects.Date,
	estimatedHours float64,
	importance int,
	dependencies []string,
	createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		id:             id,
		title:          title,
		dueDate:        dueDate,
		estimatedHours: estimatedHours,
		importance:     importance,
		dependencies:   dependencies,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Getters

func (t *Task) ID() uuid.UUID { return t.id }

func (t *Task) Title() string { return t.title }

func (t *Task) DueDate() value_objects.Date { return t.dueDate }

func (t *Task) EstimatedHours() float64 { return t.estimatedHours }

func (t *Task) Importance() int { return t.importance }

func (t *Task) CreatedAt() time.Time { return t.createdAt }

func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// Dependencies returns a copy of the declared dependency identifiers.
func (t *Task) Dependencies() []string {
	deps := make([]string, len(t.dependencies))
	copy(deps, t.dependencies)
	return deps
}

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.touch()
	return nil
}

// SetDueDate updates the due date.
func (t *Task) SetDueDate(dueDate value_objects.Date) error {
	if dueDate.IsZero() {
		return ErrMissingDueDate
	}
	t.dueDate = dueDate
	t.touch()
	return nil
}

// SetEstimatedHours updates the effort estimate.
func (t *Task) SetEstimatedHours(hours float64) error {
	if hours < MinEstimatedHours {
		return ErrEstimatedTooSmall
	}
	t.estimatedHours = hours
	t.touch()
	return nil
}

// SetImportance updates the importance rating.
func (t *Task) SetImportance(importance int) error {
	if importance < 1 || importance > 10 {
		return ErrImportanceRange
	}
	t.importance = importance
	t.touch()
	return nil
}

// SetDependencies replaces the dependency identifier list.
func (t *Task) SetDependencies(dependencies []string) {
	deps := make([]string, len(dependencies))
	copy(deps, dependencies)
	t.dependencies = deps
	t.touch()
}

func (t *Task) touch() {
	t.updatedAt = time.Now().UTC()
}
