package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/domain/value_objects"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	id              UUID PRIMARY KEY,
	title           TEXT NOT NULL,
	due_date        DATE NOT NULL,
	estimated_hours DOUBLE PRECISION NOT NULL,
	importance      INTEGER NOT NULL,
	dependencies    JSONB NOT NULL DEFAULT '[]',
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
)`

// PostgresTaskRepository implements task.Repository using PostgreSQL.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository.
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// EnsureSchema creates the tasks table if it does not exist.
func (r *PostgresTaskRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to ensure tasks schema: %w", err)
	}
	return nil
}

// Save persists a task, inserting or updating as needed.
func (r *PostgresTaskRepository) Save(ctx context.Context, t *task.Task) error {
	deps, err := json.Marshal(t.Dependencies())
	if err != nil {
		return fmt.Errorf("failed to encode dependencies: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO tasks (id, title, due_date, estimated_hours, importance, dependencies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			due_date = EXCLUDED.due_date,
			estimated_hours = EXCLUDED.estimated_hours,
			importance = EXCLUDED.importance,
			dependencies = EXCLUDED.dependencies,
			updated_at = EXCLUDED.updated_at`,
		t.ID(),
		t.Title(),
		t.DueDate().Time(),
		t.EstimatedHours(),
		t.Importance(),
		deps,
		t.CreatedAt(),
		t.UpdatedAt(),
	)
	return err
}

// FindByID retrieves a task by its ID.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, due_date, estimated_hours, importance, dependencies, created_at, updated_at
		FROM tasks WHERE id = $1`, id)

	t, err := scanPostgresTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// FindAll retrieves every stored task, newest first.
func (r *PostgresTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, due_date, estimated_hours, importance, dependencies, created_at, updated_at
		FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanPostgresTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task by its ID.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

func scanPostgresTask(row pgx.Row) (*task.Task, error) {
	var (
		id                   uuid.UUID
		title                string
		dueDate              time.Time
		estimatedHours       float64
		importance           int
		depsRaw              []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &title, &dueDate, &estimatedHours, &importance, &depsRaw, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var deps []string
	if err := json.Unmarshal(depsRaw, &deps); err != nil {
		return nil, fmt.Errorf("invalid dependencies for task %s: %w", id, err)
	}

	return task.Rehydrate(
		id,
		title,
		value_objects.DateFromTime(dueDate),
		estimatedHours,
		importance,
		deps,
		createdAt,
		updatedAt,
	), nil
}
