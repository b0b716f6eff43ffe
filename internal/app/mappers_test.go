package app

import "testing"

func TestMapSpots(t *testing.T) {
	in := []map[string]any{
		{"id": 1.0, "name": "Centraal", "latitude": 51.92, "longitude": 4.47, "capacity": 4.0},
		{"spot_id": "2", "title": "Blaak", "lat": "51,919", "lng": "4,489", "capacity": "12"},
		{"name": "no id", "latitude": 1.0, "longitude": 1.0},
		{"id": 4.0, "name": "no coordinate"},
		{"id": 5.0, "name": "not finite", "latitude": "NaN", "longitude": "Inf"},
		{"id": 1.9, "name": "fractional id", "latitude": 1.0, "longitude": 1.0},
	}
	got := mapSpots(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 spots, got %d: %+v", len(got), got)
	}
	if got[0].ID != 1 || got[0].Name != "Centraal" || got[0].Capacity != 4 {
		t.Fatalf("unexpected first spot: %+v", got[0])
	}
	b := got[1]
	if b.ID != 2 || b.Name != "Blaak" || b.Latitude != 51.919 || b.Longitude != 4.489 || b.Capacity != 12 {
		t.Fatalf("unexpected second spot: %+v", b)
	}
}
