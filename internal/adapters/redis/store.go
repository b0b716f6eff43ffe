package redisad

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"parkbike/internal/adapters/observability"
)

// Store keeps JSON values in redis without expiry.
type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return NewFromClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewFromClient(c *redis.Client) *Store { return &Store{c: c} }

func (r *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveStore("redis", "miss")
		return false, nil
	}
	if err != nil {
		observability.ObserveStore("redis", "error")
		return false, err
	}
	observability.ObserveStore("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

func (r *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		observability.ObserveStore("redis", "error")
		return err
	}
	if err := r.c.Set(ctx, key, b, 0).Err(); err != nil {
		observability.ObserveStore("redis", "error")
		return err
	}
	observability.ObserveStore("redis", "set")
	return nil
}

func (r *Store) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Store) Close() error { return r.c.Close() }
