package db

import (
	"context"
	"database/sql"
)

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic.
func WithTx(ctx context.Context, conn *sql.DB, fn func(ctx context.Context, tx Querier) error) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}
