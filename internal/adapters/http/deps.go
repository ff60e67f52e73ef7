package http

import (
	"github.com/localhub/localhub/internal/core/ports"
	"github.com/localhub/localhub/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Search     *usecases.SearchService
	Places     *usecases.PlaceService
	Directions *usecases.DirectionsService
	Maps       *usecases.MapService
	Sessions   ports.SessionStore
}
