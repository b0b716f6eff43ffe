// Package location provides device location sources.
package location

import (
	"context"

	"parkbike/internal/domain"
)

// Static always reports the same coordinate once permission is granted.
type Static struct {
	Granted bool
	Coord   domain.Coordinate
}

func NewStatic(lat, lon float64) *Static {
	return &Static{Granted: true, Coord: domain.Coordinate{Latitude: lat, Longitude: lon}}
}

// Denied refuses permission, as a user declining the location prompt would.
func Denied() *Static { return &Static{} }

func (s *Static) RequestPermission(ctx context.Context) (bool, error) {
	return s.Granted, ctx.Err()
}

func (s *Static) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if !s.Granted {
		return domain.Coordinate{}, domain.ErrPermissionDenied
	}
	return s.Coord, ctx.Err()
}
