package usecases

import (
	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/core/ports"
)

// MapResourceID names the fullscreen map view served to the agent.
const MapResourceID = "localhub-map-v1"

// MapService composes the fullscreen map resource for a stored session.
type MapService struct {
	sessions ports.SessionStore
}

// NewMapService creates a new MapService.
func NewMapService(sessions ports.SessionStore) *MapService {
	return &MapService{sessions: sessions}
}

// Compose validates the session and returns the map resource metadata.
// An unknown or expired state id is a not-found outcome.
func (s *MapService) Compose(in domain.MapResourceInput) (*domain.MapResource, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, ok := s.sessions.Get(in.StateID); !ok {
		return nil, &domain.NotFoundError{Kind: "session", ID: in.StateID}
	}

	return &domain.MapResource{
		ResourceID:    MapResourceID,
		StateID:       in.StateID,
		DisplayMode:   "fullscreen",
		RoutePolyline: in.RoutePolyline,
	}, nil
}
