package app

import (
	"context"
	"fmt"

	"github.com/taskrankhq/taskrank/internal/prioritize/domain/task"
	"github.com/taskrankhq/taskrank/internal/prioritize/infrastructure/persistence"
	"github.com/taskrankhq/taskrank/internal/shared/infrastructure/database"
)

// newTaskRepository creates the task repository matching the connection's
// driver and ensures its schema exists.
func newTaskRepository(ctx context.Context, conn database.Connection) (task.Repository, error) {
	switch conn.Driver() {
	case database.DriverPostgres:
		pg, ok := conn.(*database.PostgresConnection)
		if !ok {
			return nil, fmt.Errorf("postgres connection does not expose a pool")
		}
		repo := persistence.NewPostgresTaskRepository(pg.Pool())
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	case database.DriverSQLite:
		sq, ok := conn.(*database.SQLiteConnection)
		if !ok {
			return nil, fmt.Errorf("sqlite connection does not expose a database handle")
		}
		repo := persistence.NewSQLiteTaskRepository(sq.DB())
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unsupported driver: %s", conn.Driver())
	}
}
