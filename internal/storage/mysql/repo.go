package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"parkbike/internal/adapters/observability"
)

// Store is a key-value table holding JSON text.
type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

// EnsureSchema creates the kv table when it does not exist.
func (r *Store) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createKVSQL)
	return err
}

func (r *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	if err := r.db.QueryRowContext(ctx, getKVSQL, key).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			observability.ObserveStore("mysql", "miss")
			return false, nil
		}
		observability.ObserveStore("mysql", "error")
		return false, err
	}
	observability.ObserveStore("mysql", "hit")
	return true, json.Unmarshal([]byte(raw), dst)
}

func (r *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		observability.ObserveStore("mysql", "error")
		return err
	}
	if _, err := r.db.ExecContext(ctx, upsertKVSQL, key, string(b)); err != nil {
		observability.ObserveStore("mysql", "error")
		return err
	}
	observability.ObserveStore("mysql", "set")
	return nil
}
