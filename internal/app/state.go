package app

import (
	"fmt"

	"parkbike/internal/domain"
	"parkbike/internal/i18n"
)

// LocationErrorMessage is shown instead of the map whenever the location
// could not be acquired, whatever the cause.
const LocationErrorMessage = "We’re unable to show the map because access to your location data was not granted. Please enable location services in order to use this application."

type ListFilter string

const (
	FilterAll       ListFilter = "all"
	FilterFavorites ListFilter = "favorites"
)

func ParseListFilter(s string) (ListFilter, error) {
	switch ListFilter(s) {
	case FilterAll, FilterFavorites:
		return ListFilter(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFilter, s)
}

// Flag names a boolean view toggle.
type Flag string

const (
	FlagShowAllMarkers      Flag = "showAllMarkers"
	FlagShowRegularMarkers  Flag = "showRegularMarkers"
	FlagShowFavoriteMarkers Flag = "showFavoriteMarkers"
	FlagShowList            Flag = "showList"
	FlagShowMenu            Flag = "showMenu"
)

// ViewState is transient UI state. It is never persisted.
type ViewState struct {
	Region              *domain.Region `json:"region"`
	Language            i18n.Lang      `json:"language"`
	DarkMode            bool           `json:"darkMode"`
	ShowAllMarkers      bool           `json:"showAllMarkers"`
	ShowRegularMarkers  bool           `json:"showRegularMarkers"`
	ShowFavoriteMarkers bool           `json:"showFavoriteMarkers"`
	ShowList            bool           `json:"showList"`
	ShowMenu            bool           `json:"showMenu"`
	ListFilter          ListFilter     `json:"listFilter"`
}

// State is an immutable snapshot of everything the presentation layer renders.
// Slices in a State are shared between snapshots and must not be modified.
type State struct {
	// Version increases on every applied change.
	Version uint64 `json:"version"`
	// RenderEpoch increases after every favorite mutation.
	RenderEpoch   uint64             `json:"renderEpoch"`
	Location      *domain.Coordinate `json:"location"`
	LocationError string             `json:"locationError,omitempty"`
	Spots         []domain.Spot      `json:"spots"`
	Favorites     domain.FavoriteSet `json:"favorites"`
	View          ViewState          `json:"view"`
}

func InitialState(lang i18n.Lang) State {
	return State{
		Spots:     []domain.Spot{},
		Favorites: domain.FavoriteSet{},
		View: ViewState{
			Language:            lang,
			ShowAllMarkers:      true,
			ShowRegularMarkers:  true,
			ShowFavoriteMarkers: true,
			ListFilter:          FilterAll,
		},
	}
}

// Reducer derives the next state from the current one.
type Reducer func(State) State

func WithLocation(c domain.Coordinate) Reducer {
	return func(s State) State {
		s.Location = &c
		s.LocationError = ""
		r := domain.RegionAround(c)
		s.View.Region = &r
		return s
	}
}

func WithLocationError(msg string) Reducer {
	return func(s State) State {
		s.LocationError = msg
		return s
	}
}

func WithSpots(spots []domain.Spot) Reducer {
	return func(s State) State {
		s.Spots = spots
		return s
	}
}

func WithFavorites(f domain.FavoriteSet) Reducer {
	return func(s State) State {
		s.Favorites = f
		return s
	}
}

func BumpRenderEpoch() Reducer {
	return func(s State) State {
		s.RenderEpoch++
		return s
	}
}

func WithFlagToggled(f Flag) (Reducer, error) {
	var pick func(*ViewState) *bool
	switch f {
	case FlagShowAllMarkers:
		pick = func(v *ViewState) *bool { return &v.ShowAllMarkers }
	case FlagShowRegularMarkers:
		pick = func(v *ViewState) *bool { return &v.ShowRegularMarkers }
	case FlagShowFavoriteMarkers:
		pick = func(v *ViewState) *bool { return &v.ShowFavoriteMarkers }
	case FlagShowList:
		pick = func(v *ViewState) *bool { return &v.ShowList }
	case FlagShowMenu:
		pick = func(v *ViewState) *bool { return &v.ShowMenu }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFlag, f)
	}
	return func(s State) State {
		b := pick(&s.View)
		*b = !*b
		return s
	}, nil
}

func WithLanguage(l i18n.Lang) Reducer {
	return func(s State) State {
		s.View.Language = l
		return s
	}
}

func WithDarkMode(on bool) Reducer {
	return func(s State) State {
		s.View.DarkMode = on
		return s
	}
}

func WithRegion(r domain.Region) Reducer {
	return func(s State) State {
		s.View.Region = &r
		return s
	}
}

func WithListFilter(f ListFilter) Reducer {
	return func(s State) State {
		s.View.ListFilter = f
		return s
	}
}

// WithSpotSelected recenters on spot, offset by the given jitter so that
// selecting the same spot twice still yields a different region.
func WithSpotSelected(spot domain.Spot, jitterLat, jitterLon float64) Reducer {
	return func(s State) State {
		r := domain.RegionAround(domain.Coordinate{
			Latitude:  spot.Latitude + jitterLat,
			Longitude: spot.Longitude + jitterLon,
		})
		s.View.Region = &r
		s.View.ShowList = false
		return s
	}
}
