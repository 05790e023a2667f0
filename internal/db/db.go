package db

import (
	"context"
	"database/sql"
)

// DB is the shared Postgres handle passed to every store.
type DB struct {
	*sql.DB
}

// Querier is the subset of *sql.DB and *sql.Tx the stores run against.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
