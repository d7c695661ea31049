package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

// mockTaskRepository is an in-memory task.Repository for handler tests.
type mockTaskRepository struct {
	tasks   map[uuid.UUID]*task.Task
	saveErr error
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[uuid.UUID]*task.Task)}
}

func (m *mockTaskRepository) Save(_ context.Context, t *task.Task) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.tasks[t.ID()] = t
	return nil
}

func (m *mockTaskRepository) FindByID(_ context.Context, id uuid.UUID) (*task.Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockTaskRepository) FindAll(_ context.Context) ([]*task.Task, error) {
	all := make([]*task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		all = append(all, t)
	}
	return all, nil
}

func (m *mockTaskRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func mustCreate(t *testing.T, repo *mockTaskRepository) uuid.UUID {
	t.Helper()
	handler := NewCreateTaskHandler(repo)
	result, err := handler.Handle(context.Background(), CreateTaskCommand{
		Title:          "Write docs",
		DueDate:        value_objects.NewDate(2026, time.September, 1),
		EstimatedHours: 2,
		Importance:     5,
	})
	require.NoError(t, err)
	return result.TaskID
}

func TestCreateTaskHandler_Handle(t *testing.T) {
	t.Run("creates and persists a task", func(t *testing.T) {
		repo := newMockTaskRepository()
		handler := NewCreateTaskHandler(repo)

		result, err := handler.Handle(context.Background(), CreateTaskCommand{
			Title:          "Write docs",
			DueDate:        value_objects.NewDate(2026, time.September, 1),
			EstimatedHours: 2,
			Importance:     5,
			Dependencies:   []string{"dep-1"},
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.TaskID)

		stored, err := repo.FindByID(context.Background(), result.TaskID)
		require.NoError(t, err)
		assert.Equal(t, "Write docs", stored.Title())
		assert.Equal(t, []string{"dep-1"}, stored.Dependencies())
	})

	t.Run("propagates domain validation errors", func(t *testing.T) {
		repo := newMockTaskRepository()
		handler := NewCreateTaskHandler(repo)

		_, err := handler.Handle(context.Background(), CreateTaskCommand{
			Title:          "",
			DueDate:        value_objects.NewDate(2026, time.September, 1),
			EstimatedHours: 2,
			Importance:     5,
		})
		assert.ErrorIs(t, err, task.ErrEmptyTitle)
		assert.Empty(t, repo.tasks)
	})

	t.Run("wraps repository failures", func(t *testing.T) {
		repo := newMockTaskRepository()
		repo.saveErr = assert.AnError
		handler := NewCreateTaskHandler(repo)

		_, err := handler.Handle(context.Background(), CreateTaskCommand{
			Title:          "Write docs",
			DueDate:        value_objects.NewDate(2026, time.September, 1),
			EstimatedHours: 2,
			Importance:     5,
		})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUpdateTaskHandler_Handle(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		repo := newMockTaskRepository()
		id := mustCreate(t, repo)
		handler := NewUpdateTaskHandler(repo)

		title := "Write better docs"
		importance := 9
		err := handler.Handle(context.Background(), UpdateTaskCommand{
			TaskID:     id,
			Title:      &title,
			Importance: &importance,
		})
		require.NoError(t, err)

		stored, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Write better docs", stored.Title())
		assert.Equal(t, 9, stored.Importance())
		assert.Equal(t, 2.0, stored.EstimatedHours())
	})

	t.Run("replaces dependencies only when asked", func(t *testing.T) {
		repo := newMockTaskRepository()
		id := mustCreate(t, repo)
		handler := NewUpdateTaskHandler(repo)

		require.NoError(t, handler.Handle(context.Background(), UpdateTaskCommand{
			TaskID:       id,
			Dependencies: []string{"dep-2"},
			SetDeps:      true,
		}))
		stored, _ := repo.FindByID(context.Background(), id)
		assert.Equal(t, []string{"dep-2"}, stored.Dependencies())

		require.NoError(t, handler.Handle(context.Background(), UpdateTaskCommand{TaskID: id}))
		stored, _ = repo.FindByID(context.Background(), id)
		assert.Equal(t, []string{"dep-2"}, stored.Dependencies())
	})

	t.Run("rejects invalid field values", func(t *testing.T) {
		repo := newMockTaskRepository()
		id := mustCreate(t, repo)
		handler := NewUpdateTaskHandler(repo)

		importance := 0
		err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: id, Importance: &importance})
		assert.ErrorIs(t, err, task.ErrImportanceRange)
	})

	t.Run("unknown task returns not found", func(t *testing.T) {
		handler := NewUpdateTaskHandler(newMockTaskRepository())
		err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: uuid.New()})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}

func TestDeleteTaskHandler_Handle(t *testing.T) {
	t.Run("removes an existing task", func(t *testing.T) {
		repo := newMockTaskRepository()
		id := mustCreate(t, repo)
		handler := NewDeleteTaskHandler(repo)

		require.NoError(t, handler.Handle(context.Background(), DeleteTaskCommand{TaskID: id}))

		_, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})

	t.Run("unknown task returns not found", func(t *testing.T) {
		handler := NewDeleteTaskHandler(newMockTaskRepository())
		err := handler.Handle(context.Background(), DeleteTaskCommand{TaskID: uuid.New()})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}
