package usecases

import (
	"context"
	"strings"

	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/core/ports"
)

// PlaceService handles single-place lookups.
type PlaceService struct {
	places ports.PlaceProvider
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(places ports.PlaceProvider) *PlaceService {
	return &PlaceService{places: places}
}

// Details returns the enriched view of a place.
func (s *PlaceService) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil, &domain.ValidationError{Field: "place_id", Message: "place_id is required"}
	}
	return s.places.Details(ctx, placeID)
}
