package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"parkbike/internal/adapters/observability"
	"parkbike/internal/domain"
)

// RefreshReport holds the outcome of each refresh slice; nil means success.
type RefreshReport struct {
	Location  error
	Favorites error
	Spots     error
}

func (r RefreshReport) OK() bool {
	return r.Location == nil && r.Favorites == nil && r.Spots == nil
}

func (r RefreshReport) Err() error {
	return errors.Join(r.Location, r.Favorites, r.Spots)
}

// Start runs the first refresh without blocking the caller.
func (c *Controller) Start(ctx context.Context) {
	go c.Refresh(ctx)
}

// Refresh acquires the location, loads favorites and fetches the spot list
// concurrently. Each slice publishes its own state as soon as it resolves;
// Refresh returns once all three have settled. When refreshes overlap, the
// location and spot results of an older one are dropped once a newer one
// has started.
func (c *Controller) Refresh(ctx context.Context) RefreshReport {
	var (
		rep RefreshReport
		wg  sync.WaitGroup
		gen = c.refreshGen.Add(1)
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		rep.Location = c.runSlice(ctx, "location", func(ctx context.Context) error {
			return c.acquireLocation(ctx, gen)
		})
	}()
	go func() {
		defer wg.Done()
		rep.Favorites = c.runSlice(ctx, "favorites", c.loadFavorites)
	}()
	go func() {
		defer wg.Done()
		rep.Spots = c.runSlice(ctx, "spots", func(ctx context.Context) error {
			return c.fetchSpots(ctx, gen)
		})
	}()
	wg.Wait()

	if err := rep.Err(); err != nil {
		log.Error().Err(err).Msg("refresh failed")
	} else {
		log.Info().Msg("refresh completed")
	}
	return rep
}

func (c *Controller) runSlice(ctx context.Context, name string, fn func(context.Context) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	err := fn(ctx)
	observability.ObserveRefresh(name, err)
	return err
}

func (c *Controller) acquireLocation(ctx context.Context, gen uint64) error {
	granted, err := c.locator.RequestPermission(ctx)
	if err != nil || !granted {
		if err == nil {
			err = domain.ErrPermissionDenied
		} else {
			err = fmt.Errorf("request permission: %w", err)
		}
		log.Error().Err(err).Msg("location permission not granted")
		c.applyIfLatest(gen, WithLocationError(LocationErrorMessage))
		return err
	}

	pos, err := c.locator.CurrentPosition(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving location")
		c.applyIfLatest(gen, WithLocationError(LocationErrorMessage))
		return fmt.Errorf("current position: %w", err)
	}
	if !c.applyIfLatest(gen, WithLocation(pos)) {
		log.Debug().Uint64("refresh", gen).Msg("dropping location from superseded refresh")
		return nil
	}
	log.Info().Float64("lat", pos.Latitude).Float64("lon", pos.Longitude).Msg("location fetched")
	return nil
}

func (c *Controller) loadFavorites(ctx context.Context) error {
	if err := c.favorites.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.favorites.Release(1)

	var favs domain.FavoriteSet
	ok, err := c.store.Get(ctx, FavoritesKey, &favs)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving favorites from storage")
		return fmt.Errorf("load favorites: %w", err)
	}
	if !ok {
		return nil
	}
	c.apply(WithFavorites(favs))
	log.Info().Int("count", len(favs)).Msg("favorites loaded")
	return nil
}

func (c *Controller) fetchSpots(ctx context.Context, gen uint64) error {
	raw, err := c.spots.FetchSpots(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error fetching bike parking spots")
		return fmt.Errorf("fetch spots: %w", err)
	}
	spots := mapSpots(raw)
	if !c.applyIfLatest(gen, WithSpots(spots)) {
		log.Debug().Uint64("refresh", gen).Msg("dropping spots from superseded refresh")
		return nil
	}
	log.Info().Int("count", len(spots)).Msg("bike parking spots fetched")
	return nil
}
