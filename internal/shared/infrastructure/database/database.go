// Package database provides connection management for the task record
// store. SQLite is the zero-config local backend; PostgreSQL is selected by
// a postgres:// DATABASE_URL.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds database configuration.
type Config struct {
	// Driver specifies the backend to use. Empty or "auto" detects it
	// from URL.
	Driver Driver

	// URL is the PostgreSQL connection string.
	URL string

	// SQLitePath is the path to the SQLite database file. Defaults to
	// ~/.taskrank/data.db.
	SQLitePath string

	// MaxConns is the maximum number of connections (PostgreSQL only).
	MaxConns int
}

// Connection is a live database connection of either backend.
type Connection interface {
	Driver() Driver
	Close() error
}

// NewConnection creates a database connection based on configuration.
func NewConnection(ctx context.Context, cfg Config) (Connection, error) {
	driver := cfg.Driver
	if driver == "" || driver == "auto" {
		driver = DetectDriver(cfg.URL)
	}

	switch driver {
	case DriverPostgres:
		return newPostgresConnection(ctx, cfg)
	case DriverSQLite:
		return newSQLiteConnection(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// DefaultSQLitePath returns the default SQLite database path.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".taskrank", "data.db")
}

// DefaultLocalConfig returns configuration for local SQLite mode.
func DefaultLocalConfig() Config {
	return Config{
		Driver:     DriverSQLite,
		SQLitePath: DefaultSQLitePath(),
	}
}

func ensureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
