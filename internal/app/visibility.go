package app

import "parkbike/internal/domain"

// IsMarkerVisible reports whether a spot marker renders under v.
// The user's own marker is not subject to these flags.
func IsMarkerVisible(v ViewState, favorite bool) bool {
	if !v.ShowAllMarkers {
		return false
	}
	return (v.ShowRegularMarkers && !favorite) || (v.ShowFavoriteMarkers && favorite)
}

// Marker is one spot as the map widget draws it.
type Marker struct {
	Spot     domain.Spot `json:"spot"`
	Favorite bool        `json:"favorite"`
}

// VisibleMarkers returns the spot markers to draw, in spot order.
func (s State) VisibleMarkers() []Marker {
	out := make([]Marker, 0, len(s.Spots))
	for _, sp := range s.Spots {
		fav := s.Favorites.Contains(sp.ID)
		if IsMarkerVisible(s.View, fav) {
			out = append(out, Marker{Spot: sp, Favorite: fav})
		}
	}
	return out
}

// ListSpots is the list view. It ignores the marker flags.
func (s State) ListSpots() []domain.Spot {
	if s.View.ListFilter != FilterFavorites {
		out := make([]domain.Spot, len(s.Spots))
		copy(out, s.Spots)
		return out
	}
	out := make([]domain.Spot, 0, len(s.Favorites))
	for _, sp := range s.Spots {
		if s.Favorites.Contains(sp.ID) {
			out = append(out, sp)
		}
	}
	return out
}

func (s State) FindSpot(id domain.SpotID) (domain.Spot, bool) {
	for _, sp := range s.Spots {
		if sp.ID == id {
			return sp, true
		}
	}
	return domain.Spot{}, false
}
