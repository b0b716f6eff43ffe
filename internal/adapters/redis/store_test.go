package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"parkbike/internal/adapters/observability"
	redisad "parkbike/internal/adapters/redis"
	"parkbike/internal/domain"
)

func newStore(t *testing.T) (*redisad.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStore_FavoritesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	var got domain.FavoriteSet
	if ok, err := s.Get(ctx, "favorites", &got); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := domain.NewFavoriteSet(3, 1)
	if err := s.Set(ctx, "favorites", want); err != nil {
		t.Fatalf("set: %v", err)
	}
	if raw, _ := mr.Get("favorites"); raw != "[3,1]" {
		t.Fatalf("unexpected raw value %q", raw)
	}
	if ttl := mr.TTL("favorites"); ttl != 0 {
		t.Fatalf("favorites must not expire, ttl=%v", ttl)
	}

	ok, err := s.Get(ctx, "favorites", &got)
	if !ok || err != nil {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestStore_CorruptValue(t *testing.T) {
	s, mr := newStore(t)
	_ = mr.Set("favorites", "{broken")
	var got domain.FavoriteSet
	if ok, err := s.Get(context.Background(), "favorites", &got); !ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestStore_ServerDown(t *testing.T) {
	s, mr := newStore(t)
	mr.Close()
	var got domain.FavoriteSet
	if _, err := s.Get(context.Background(), "favorites", &got); err == nil {
		t.Fatalf("expected connection error")
	}

	sets, errs := storeEvents(t, "set"), storeEvents(t, "error")
	if err := s.Set(context.Background(), "favorites", domain.NewFavoriteSet(1)); err == nil {
		t.Fatalf("expected connection error")
	}
	if got := storeEvents(t, "set"); got != sets {
		t.Fatalf("failed write counted as set: %v -> %v", sets, got)
	}
	if got := storeEvents(t, "error"); got != errs+1 {
		t.Fatalf("failed write not counted as error: %v -> %v", errs, got)
	}
}

// storeEvents reads the redis store counter for event.
func storeEvents(t *testing.T, event string) float64 {
	t.Helper()
	mfs, err := observability.InitRegistry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "parkbike_store_events_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["store"] == "redis" && labels["event"] == event {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
