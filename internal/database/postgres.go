// Package database manages the PostgreSQL connection pool.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourusername/pitwall/internal/config"
)

// DB wraps the pgxpool.Pool to provide database operations
type DB struct {
	pool *pgxpool.Pool
}

// NewDB creates a new database connection pool from configuration
func NewDB(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute
	poolConfig.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Ping verifies database connectivity
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close gracefully closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Pool returns the underlying connection pool
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// EnsureSchema creates the service's tables when they do not exist yet. The
// service owns its schema; there is no separate migration step.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS prediction_log (
			id BIGSERIAL PRIMARY KEY,
			logged_at TIMESTAMPTZ NOT NULL,
			request_id UUID NOT NULL,
			circuit TEXT NOT NULL,
			weather TEXT NOT NULL,
			temperature DOUBLE PRECISION NOT NULL,
			track_temp DOUBLE PRECISION NOT NULL,
			entry_count INT NOT NULL,
			top_driver TEXT NOT NULL,
			top_win_probability DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS race_results (
			id BIGSERIAL PRIMARY KEY,
			season TEXT NOT NULL,
			round TEXT NOT NULL,
			race_name TEXT NOT NULL,
			circuit TEXT NOT NULL,
			race_date TEXT NOT NULL,
			driver TEXT NOT NULL,
			constructor TEXT NOT NULL,
			grid INT NOT NULL,
			position INT NOT NULL,
			points DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL,
			weather TEXT NOT NULL,
			tire_strategy TEXT NOT NULL,
			gap_to_leader TEXT NOT NULL,
			fastest_lap_time TEXT NOT NULL,
			UNIQUE (season, round, driver)
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
