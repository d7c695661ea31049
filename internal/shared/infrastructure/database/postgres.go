package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConnection wraps pgxpool.Pool to implement Connection.
type PostgresConnection struct {
	pool *pgxpool.Pool
}

func newPostgresConnection(ctx context.Context, cfg Config) (Connection, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("database URL is required for PostgreSQL")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL database: %w", err)
	}

	return &PostgresConnection{pool: pool}, nil
}

// Pool returns the underlying pgxpool.Pool.
func (c *PostgresConnection) Pool() *pgxpool.Pool {
	return c.pool
}

// Driver returns the driver type.
func (c *PostgresConnection) Driver() Driver {
	return DriverPostgres
}

// Close closes the connection pool.
func (c *PostgresConnection) Close() error {
	c.pool.Close()
	return nil
}
