package db

import (
	"context"
	"time"

	"pixelboard/internal/pkg/config"
	"pixelboard/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories can
// run against the pool or inside a transaction unchanged.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create connection pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// schemaStatements is the full canvas schema. Everything is CREATE IF NOT
// EXISTS so EnsureSchema can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS canvas_cells (
		x         INT NOT NULL,
		y         INT NOT NULL,
		color     TEXT NOT NULL,
		user_id   UUID NOT NULL,
		username  TEXT NOT NULL,
		placed_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (x, y)
	)`,
	`CREATE TABLE IF NOT EXISTS placement_cooldowns (
		user_id        UUID PRIMARY KEY,
		last_placed_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS canvas_placements (
		id        UUID PRIMARY KEY,
		x         INT NOT NULL,
		y         INT NOT NULL,
		color     TEXT NOT NULL,
		user_id   UUID NOT NULL,
		username  TEXT NOT NULL,
		placed_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_canvas_placements_user_id
		ON canvas_placements (user_id)`,
	`CREATE TABLE IF NOT EXISTS canvas_snapshots (
		id         UUID PRIMARY KEY,
		week       TEXT NOT NULL,
		image      BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_canvas_snapshots_created_at
		ON canvas_snapshots (created_at DESC)`,
}

// EnsureSchema is the explicit, idempotent initialization step run once at
// startup, instead of existence checks on every request.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "failed to ensure canvas schema")
		}
	}
	return nil
}
