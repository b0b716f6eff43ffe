package domain

type SpotID int64

// Spot is one bicycle-parking location from the remote list.
type Spot struct {
	ID        SpotID  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Capacity  int     `json:"capacity"`
}

func (s Spot) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Region is the visible map viewport.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// RegionDelta is the zoom span used whenever the map is recentered.
const RegionDelta = 0.025

func RegionAround(c Coordinate) Region {
	return Region{
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		LatitudeDelta:  RegionDelta,
		LongitudeDelta: RegionDelta,
	}
}
