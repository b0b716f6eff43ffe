package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"parkbike/internal/adapters/observability"
	"parkbike/internal/domain"
	"parkbike/internal/shared"
)

var ErrNoCoordinate = errors.New("location: response has no coordinate")

// HTTP reads the position once from a geolocation JSON endpoint. Permission
// is implied by configuration, so RequestPermission always grants.
type HTTP struct {
	url string
	hc  *http.Client
}

func NewHTTP(url string) *HTTP {
	return &HTTP{url: url, hc: &http.Client{Timeout: 10 * time.Second}}
}

func (h *HTTP) RequestPermission(ctx context.Context) (bool, error) {
	return h.url != "", nil
}

func (h *HTTP) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return domain.Coordinate{}, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := h.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("location", 0, time.Since(start))
		return domain.Coordinate{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("location", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("location: bad status %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Coordinate{}, fmt.Errorf("location: decode: %w", err)
	}
	lat := shared.FloatFlexible(body, "lat", "latitude", "location.lat", "coords.latitude")
	lon := shared.FloatFlexible(body, "lon", "lng", "longitude", "location.lng", "coords.longitude")
	if lat == nil || lon == nil {
		return domain.Coordinate{}, ErrNoCoordinate
	}
	return domain.Coordinate{Latitude: *lat, Longitude: *lon}, nil
}
