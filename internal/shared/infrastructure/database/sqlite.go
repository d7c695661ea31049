package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteConnection wraps sql.DB to implement Connection for SQLite.
type SQLiteConnection struct {
	db *sql.DB
}

func newSQLiteConnection(ctx context.Context, cfg Config) (Connection, error) {
	path := cfg.SQLitePath
	if path == "" {
		path = DefaultSQLitePath()
	}

	if err := ensureDirectory(path); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL for better concurrency, foreign keys on, wait on locks instead
	// of failing immediately.
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite doesn't support multiple writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteConnection{db: db}, nil
}

// DB returns the underlying sql.DB.
func (c *SQLiteConnection) DB() *sql.DB {
	return c.db
}

// Driver returns the driver type.
func (c *SQLiteConnection) Driver() Driver {
	return DriverSQLite
}

// Close closes the database connection.
func (c *SQLiteConnection) Close() error {
	return c.db.Close()
}
