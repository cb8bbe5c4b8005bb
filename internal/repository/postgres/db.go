// internal/repository/postgres/db.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewDB wraps the pool with a per-operation statement timeout. A zero
// timeout disables the bound.
func NewDB(pool *pgxpool.Pool, timeout time.Duration) *DB {
	return &DB{pool: pool, timeout: timeout}
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// WithTimeout derives the bounded context every store operation runs under.
// Expiry surfaces as a store-unavailable failure and, inside RunAtomic,
// rolls the sequence back. Callers must hold the cancel func until all row
// scanning is done.
func (db *DB) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, db.timeout)
}

// RunAtomic runs fn inside one transaction. Every write fn performs is
// applied on commit or undone on the first error, including a child-row
// failure after the parent landed. The boundary is the logical request;
// row-level serialization is left to the database. fn receives the bounded
// context and must use it for every statement, so deadline expiry cancels
// the in-flight statement and not just the commit.
func (db *DB) RunAtomic(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	ctx, cancel := db.WithTimeout(ctx)
	defer cancel()

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
