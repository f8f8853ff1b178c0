package geolocation

import (
	"context"
)

// Repository provides read access to the geolocation registry. Name payloads
// referencing a place are validated against it before binding.
type Repository interface {
	// GetAll returns every known place.
	GetAll(ctx context.Context) ([]GeoLocation, error)

	// Exists reports whether a place is in the registry. Matching is
	// case-insensitive on the place key.
	Exists(ctx context.Context, place string) (bool, error)
}
