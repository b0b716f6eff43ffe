package app

import (
	"github.com/rs/zerolog/log"

	"parkbike/internal/domain"
	"parkbike/internal/shared"
)

/********** alias registry (single source of truth) **********/

var spotAliases = map[string][]string{
	"id":        {"id", "spot_id", "spotId"},
	"name":      {"name", "title", "label"},
	"latitude":  {"latitude", "lat", "location.latitude", "location.lat"},
	"longitude": {"longitude", "lon", "lng", "location.longitude", "location.lon", "location.lng"},
	"capacity":  {"capacity", "places", "spaces"},
}

/********** spot mapper **********/

// mapSpots converts raw endpoint records. Records without an id or a
// coordinate are skipped; the rest keep their endpoint order.
func mapSpots(in []map[string]any) []domain.Spot {
	out := make([]domain.Spot, 0, len(in))
	for i, r := range in {
		sp, ok := mapSpot(r)
		if !ok {
			log.Warn().Int("index", i).Msg("skipping spot without id or coordinate")
			continue
		}
		out = append(out, sp)
	}
	return out
}

func mapSpot(r map[string]any) (domain.Spot, bool) {
	id := shared.Int64Flexible(r, spotAliases["id"]...)
	lat := shared.FloatFlexible(r, spotAliases["latitude"]...)
	lon := shared.FloatFlexible(r, spotAliases["longitude"]...)
	if id == nil || lat == nil || lon == nil {
		return domain.Spot{}, false
	}
	sp := domain.Spot{
		ID:        domain.SpotID(*id),
		Name:      shared.FirstString(r, spotAliases["name"]...),
		Latitude:  *lat,
		Longitude: *lon,
	}
	if c := shared.Int64Flexible(r, spotAliases["capacity"]...); c != nil {
		sp.Capacity = int(*c)
	}
	return sp, true
}
