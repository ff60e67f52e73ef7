package usecases

import (
	"context"

	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/core/ports"
)

// DirectionsService handles route lookups between two points.
type DirectionsService struct {
	places ports.PlaceProvider
}

// NewDirectionsService creates a new DirectionsService.
func NewDirectionsService(places ports.PlaceProvider) *DirectionsService {
	return &DirectionsService{places: places}
}

// Route returns the best route for the given origin, destination and mode.
func (s *DirectionsService) Route(ctx context.Context, in domain.DirectionsInput) (*domain.DirectionsRoute, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.places.Directions(ctx, in.Origin, in.Destination, in.Mode)
}
