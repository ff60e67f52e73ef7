package ports

import (
	"context"

	"github.com/localhub/localhub/internal/core/domain"
)

// PlaceProvider is the upstream place-search collaborator. Zero results is
// a normal outcome (empty slice or a NotFoundError where documented), while
// network, quota, or malformed-response failures surface as UpstreamError.
type PlaceProvider interface {
	// Search runs a text search around an optional location bias.
	Search(ctx context.Context, query string, location *domain.LatLng, radiusMeters float64, openNow bool) ([]domain.PlaceResult, error)

	// Details returns the enriched view of a single place.
	// Unknown ids yield a NotFoundError.
	Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error)

	// Geocode resolves free-text address to a coordinate.
	// Unresolvable text yields a NotFoundError.
	Geocode(ctx context.Context, address string) (domain.LatLng, error)

	// Directions returns the best route between two points.
	// No route yields a NotFoundError.
	Directions(ctx context.Context, origin, destination domain.LatLng, mode domain.TravelMode) (*domain.DirectionsRoute, error)
}
