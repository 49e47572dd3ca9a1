package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is a Store backed by a single kv_blobs table (see migrations).
// One row per key; the whole collection blob is the value, matching the
// whole-collection overwrite discipline of the record store.
type Postgres struct {
	db db
}

// NewPostgres constructs a Postgres Store backed by the provided connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db}
}

// Get returns the value stored under key, or ok=false when absent.
func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM kv_blobs WHERE key = @key`

	var value string
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv.Postgres.Get %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value stored under key.
func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_blobs (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	_, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value})
	if err != nil {
		return fmt.Errorf("kv.Postgres.Set %q: %w", key, err)
	}
	return nil
}

var _ Store = (*Postgres)(nil)
