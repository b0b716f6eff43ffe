package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"

	"parkbike/internal/domain"
	"parkbike/internal/storage/memory"
)

// ---- fakes ----

type fakeLocator struct {
	granted  bool
	pos      domain.Coordinate
	permErr  error
	posErr   error
	requests int32
}

func (f *fakeLocator) RequestPermission(ctx context.Context) (bool, error) {
	atomic.AddInt32(&f.requests, 1)
	return f.granted, f.permErr
}

func (f *fakeLocator) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	return f.pos, f.posErr
}

type fakeSpots struct {
	mu    sync.Mutex
	raw   []map[string]any
	err   error
	calls int32
}

func (f *fakeSpots) FetchSpots(ctx context.Context) ([]map[string]any, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raw, f.err
}

func (f *fakeSpots) fail(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

// countingStore wraps the in-memory store and can be told to fail.
type countingStore struct {
	*memory.Store
	getErr error
	setErr error
	gets   int32
	sets   int32
}

func newStore() *countingStore { return &countingStore{Store: memory.New()} }

func (s *countingStore) Get(ctx context.Context, key string, dst any) (bool, error) {
	atomic.AddInt32(&s.gets, 1)
	if s.getErr != nil {
		return false, s.getErr
	}
	return s.Store.Get(ctx, key, dst)
}

func (s *countingStore) Set(ctx context.Context, key string, v any) error {
	atomic.AddInt32(&s.sets, 1)
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Set(ctx, key, v)
}

// put seeds key with JSON text without counting a write.
func (s *countingStore) put(key, raw string) {
	if err := s.Store.Set(context.Background(), key, json.RawMessage(raw)); err != nil {
		panic(err)
	}
}

// raw returns the JSON text stored at key.
func (s *countingStore) raw(key string) string {
	var v json.RawMessage
	if ok, err := s.Store.Get(context.Background(), key, &v); !ok || err != nil {
		return ""
	}
	return string(v)
}

var errBoom = errors.New("boom")

func twoSpots() []map[string]any {
	return []map[string]any{
		{"id": 1.0, "name": "A", "latitude": 0.0, "longitude": 0.0, "capacity": 4.0},
		{"id": 2.0, "name": "B", "latitude": 1.0, "longitude": 1.0, "capacity": 2.0},
	}
}

func grantedAt(lat, lon float64) *fakeLocator {
	return &fakeLocator{granted: true, pos: domain.Coordinate{Latitude: lat, Longitude: lon}}
}
