package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	due_date        TEXT NOT NULL,
	estimated_hours REAL NOT NULL,
	importance      INTEGER NOT NULL,
	dependencies    TEXT NOT NULL DEFAULT '[]',
	created_at      TEXT NOT NULL,
	updated_at      TEXT NOT NULL
)`

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// EnsureSchema creates the tasks table if it does not exist.
func (r *SQLiteTaskRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to ensure tasks schema: %w", err)
	}
	return nil
}

// Save persists a task, inserting or updating as needed.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	deps, err := json.Marshal(t.Dependencies())
	if err != nil {
		return fmt.Errorf("failed to encode dependencies: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, due_date, estimated_hours, importance, dependencies, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			due_date = excluded.due_date,
			estimated_hours = excluded.estimated_hours,
			importance = excluded.importance,
			dependencies = excluded.dependencies,
			updated_at = excluded.updated_at`,
		t.ID().String(),
		t.Title(),
		t.DueDate().String(),
		t.EstimatedHours(),
		t.Importance(),
		string(deps),
		t.CreatedAt().Format(time.RFC3339),
		t.UpdatedAt().Format(time.RFC3339),
	)
	return err
}

// FindByID retrieves a task by its ID.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, due_date, estimated_hours, importance, dependencies, created_at, updated_at
		FROM tasks WHERE id = ?`, id.String())

	t, err := scanSQLiteTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// FindAll retrieves every stored task, newest first.
func (r *SQLiteTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, due_date, estimated_hours, importance, dependencies, created_at, updated_at
		FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanSQLiteTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task by its ID.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTask(row rowScanner) (*task.Task, error) {
	var (
		idStr, title, dueStr, depsStr, createdStr, updatedStr string
		estimatedHours                                        float64
		importance                                            int
	)
	if err := row.Scan(&idStr, &title, &dueStr, &estimatedHours, &importance, &depsStr, &createdStr, &updatedStr); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid task id %q: %w", idStr, err)
	}

	dueDate, err := value_objects.ParseDate(dueStr)
	if err != nil {
		return nil, fmt.Errorf("invalid due date for task %s: %w", idStr, err)
	}

	var deps []string
	if err := json.Unmarshal([]byte(depsStr), &deps); err != nil {
		return nil, fmt.Errorf("invalid dependencies for task %s: %w", idStr, err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at for task %s: %w", idStr, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at for task %s: %w", idStr, err)
	}

	return task.Rehydrate(id, title, dueDate, estimatedHours, importance, deps, createdAt, updatedAt), nil
}
