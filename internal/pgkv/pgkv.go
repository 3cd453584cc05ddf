// Package pgkv is a Postgres-backed implementation of the store's key-value
// interface. The default backend is the local SQLite file; this one is only
// selected when a connection string is configured, for deployments that want
// the collections on a shared server instead of the device.
package pgkv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KV is a key-value byte store over a Postgres table.
type KV struct {
	pool *pgxpool.Pool
}

// Open connects to Postgres and ensures the kv table exists.
func Open(ctx context.Context, dsn string) (*KV, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value BYTEA NOT NULL
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring kv table: %w", err)
	}

	return &KV{pool: pool}, nil
}

// Get returns the value stored under key, or nil if the key is absent.
func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any existing value.
func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	_, err := k.pool.Exec(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Absent keys are ignored.
func (k *KV) Delete(ctx context.Context, keys ...string) error {
	_, err := k.pool.Exec(ctx, `DELETE FROM kv WHERE key = ANY($1)`, keys)
	if err != nil {
		return fmt.Errorf("deleting keys: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (k *KV) Close() {
	k.pool.Close()
}
