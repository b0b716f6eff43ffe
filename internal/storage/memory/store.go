// Package memory is an in-process key-value store. Values are kept as JSON
// text so it behaves like the networked stores.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"parkbike/internal/adapters/observability"
)

type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func New() *Store { return &Store{m: map[string][]byte{}} }

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		observability.ObserveStore("memory", "miss")
		return false, nil
	}
	observability.ObserveStore("memory", "hit")
	return true, json.Unmarshal(v, dst)
}

func (s *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		observability.ObserveStore("memory", "error")
		return err
	}
	s.mu.Lock()
	s.m[key] = b
	s.mu.Unlock()
	observability.ObserveStore("memory", "set")
	return nil
}
