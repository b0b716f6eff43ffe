package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"parkbike/internal/adapters/observability"
	"parkbike/internal/domain"
	"parkbike/internal/i18n"
)

// FavoritesKey is the store key holding the JSON array of favorite ids.
const FavoritesKey = "favorites"

type Options struct {
	Language i18n.Lang
	// RefreshTimeout bounds each refresh slice; zero disables it.
	RefreshTimeout time.Duration
	// Jitter returns the offset added to each axis when a spot is selected.
	// It must never return zero.
	Jitter func() float64
}

// Controller owns the application state. All changes go through apply, which
// versions the new state and publishes it to subscribers.
type Controller struct {
	locator domain.LocationProvider
	store   domain.Store
	spots   domain.SpotSource
	timeout time.Duration
	jitter  func() float64

	// favorites is held for every read-modify-write of the favorite set
	favorites *semaphore.Weighted
	// refreshGen identifies the newest Refresh; older ones may not publish
	refreshGen atomic.Uint64

	mu      sync.RWMutex
	state   State
	subs    map[int]chan State
	nextSub int
}

func NewController(loc domain.LocationProvider, store domain.Store, spots domain.SpotSource, opts Options) *Controller {
	if opts.Language == "" {
		opts.Language = i18n.English
	}
	if opts.Jitter == nil {
		opts.Jitter = randomJitter
	}
	return &Controller{
		locator:   loc,
		store:     store,
		spots:     spots,
		timeout:   opts.RefreshTimeout,
		jitter:    opts.Jitter,
		favorites: semaphore.NewWeighted(1),
		state:     InitialState(opts.Language),
		subs:      map[int]chan State{},
	}
}

// randomJitter is uniform in (0, 1e-6).
func randomJitter() float64 {
	for {
		if f := rand.Float64(); f != 0 {
			return f * 1e-6
		}
	}
}

func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) apply(r Reducer) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(r)
}

// applyIfLatest applies r only if gen is still the newest refresh.
func (c *Controller) applyIfLatest(gen uint64, r Reducer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.refreshGen.Load() {
		return false
	}
	c.applyLocked(r)
	return true
}

func (c *Controller) applyLocked(r Reducer) State {
	next := r(c.state)
	next.Version = c.state.Version + 1
	c.state = next
	for _, ch := range c.subs {
		// keep only the latest snapshot for slow subscribers
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- next:
		default:
		}
	}
	return next
}

// Subscribe returns a channel receiving the latest state after each change
// and a func that cancels the subscription.
func (c *Controller) Subscribe() (<-chan State, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan State, 1)
	c.subs[id] = ch
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// WaitForVersion blocks until the state version is greater than after.
func (c *Controller) WaitForVersion(ctx context.Context, after uint64) (State, error) {
	ch, cancel := c.Subscribe()
	defer cancel()
	if s := c.Snapshot(); s.Version > after {
		return s, nil
	}
	for {
		select {
		case <-ctx.Done():
			return c.Snapshot(), ctx.Err()
		case s := <-ch:
			if s.Version > after {
				return s, nil
			}
		}
	}
}

// ToggleFavorite adds or removes id and persists the whole set. A failed
// write is logged only; the render epoch is bumped either way.
func (c *Controller) ToggleFavorite(ctx context.Context, id domain.SpotID) (State, error) {
	if err := c.favorites.Acquire(ctx, 1); err != nil {
		return c.Snapshot(), err
	}
	defer c.favorites.Release(1)

	next := c.Snapshot().Favorites.Toggle(id)
	c.apply(WithFavorites(next))

	err := c.store.Set(ctx, FavoritesKey, next)
	if err != nil {
		log.Error().Err(err).Int64("spot", int64(id)).Msg("persist favorites failed")
	}
	observability.ObserveFavoriteToggle(next.Contains(id), err)
	return c.apply(BumpRenderEpoch()), nil
}

func (c *Controller) SelectSpot(id domain.SpotID) (State, error) {
	sp, ok := c.Snapshot().FindSpot(id)
	if !ok {
		return c.Snapshot(), fmt.Errorf("%w: %d", domain.ErrSpotNotFound, id)
	}
	return c.apply(WithSpotSelected(sp, c.jitter(), c.jitter())), nil
}

func (c *Controller) ToggleFlag(name string) (State, error) {
	r, err := WithFlagToggled(Flag(name))
	if err != nil {
		return c.Snapshot(), err
	}
	return c.apply(r), nil
}

func (c *Controller) SetLanguage(code string) (State, error) {
	l, err := i18n.ParseLang(code)
	if err != nil {
		return c.Snapshot(), err
	}
	return c.apply(WithLanguage(l)), nil
}

func (c *Controller) SetListFilter(mode string) (State, error) {
	f, err := ParseListFilter(mode)
	if err != nil {
		return c.Snapshot(), err
	}
	return c.apply(WithListFilter(f)), nil
}

func (c *Controller) SetRegion(r domain.Region) State {
	return c.apply(WithRegion(r))
}

// ApplyTheme only changes the display theme.
func (c *Controller) ApplyTheme(dark bool) State {
	return c.apply(WithDarkMode(dark))
}

// ToggleTheme flips dark mode without touching external data.
func (c *Controller) ToggleTheme() State {
	s := c.apply(func(s State) State {
		s.View.DarkMode = !s.View.DarkMode
		return s
	})
	log.Info().Bool("dark", s.View.DarkMode).Msg("dark mode toggled")
	return s
}

// ToggleDarkMode flips the theme and then refreshes all external data,
// matching the behavior of the mobile app.
func (c *Controller) ToggleDarkMode(ctx context.Context) (State, RefreshReport) {
	c.ToggleTheme()
	rep := c.Refresh(ctx)
	return c.Snapshot(), rep
}

// Translate resolves key in the current language.
func (c *Controller) Translate(key string) string {
	return i18n.Translate(c.Snapshot().View.Language, key)
}
