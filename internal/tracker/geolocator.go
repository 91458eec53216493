package tracker

import "context"

// Position is a one-shot device location fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Geolocator acquires the device position. Acquisition can be slow (GPS
// cold start, permission prompt) so implementations must honor the context
// deadline.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// GeolocatorFunc adapts a function to the Geolocator interface.
type GeolocatorFunc func(ctx context.Context) (Position, error)

func (f GeolocatorFunc) CurrentPosition(ctx context.Context) (Position, error) {
	return f(ctx)
}
