// internal/adapters/spots/client.go
package spots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"parkbike/internal/adapters/observability"
)

var (
	ErrNotFound   = errors.New("spots: not found")
	ErrBadPayload = errors.New("spots: bad payload")
)

// Client reads the bicycle-parking list from a static JSON endpoint.
type Client struct {
	url string
	hc  *http.Client
	rl  *rate.Limiter
}

func New(url string, rps int) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("spots URL is required")
	}
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: 20 * time.Second},
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// FetchSpots performs one GET and decodes the body as a JSON array of
// objects. There is no retry; callers keep their previous list on error.
func (c *Client) FetchSpots(ctx context.Context) ([]map[string]any, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "parkbike/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("spots", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("spots", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		var out []map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
		}
		return out, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
