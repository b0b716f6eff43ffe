package domain

import "context"

// SpotSource fetches the raw spot list; records are mapped by the app layer.
type SpotSource interface {
	FetchSpots(ctx context.Context) ([]map[string]any, error)
}

// Store is a string-keyed store whose values are serialized as JSON text.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

type LocationProvider interface {
	RequestPermission(ctx context.Context) (bool, error)
	CurrentPosition(ctx context.Context) (Coordinate, error)
}
