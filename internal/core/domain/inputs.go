package domain

import (
	"fmt"
	"strings"
)

// Search parameter limits. Radius and result counts are clamped to the
// ranges the upstream provider accepts.
const (
	MinRadiusMeters     = 100
	MaxRadiusMeters     = 50000
	DefaultRadiusMeters = 5000

	MaxResultsLimit   = 20
	DefaultMaxResults = 20
)

// SearchInput carries the already-decoded arguments of a search_places call.
// A non-empty StateID makes the call a refinement of an earlier search.
type SearchInput struct {
	Query        string    `json:"query"`
	LocationText string    `json:"location_text"`
	Origin       *LatLng   `json:"origin,omitempty"`
	RadiusMeters float64   `json:"radius_m,omitempty"`
	OpenNow      bool      `json:"open_now,omitempty"`
	MinRating    *float64  `json:"min_rating,omitempty"`
	SortBy       SortOrder `json:"sort_by,omitempty"`
	MaxResults   int       `json:"max_results,omitempty"`
	StateID      string    `json:"state_id,omitempty"`
}

// Validate rejects out-of-range values and fills in defaults. Runs before
// any cache or session interaction.
func (in *SearchInput) Validate() error {
	if in.StateID == "" {
		if strings.TrimSpace(in.Query) == "" {
			return &ValidationError{Field: "query", Message: "query is required"}
		}
		if strings.TrimSpace(in.LocationText) == "" {
			return &ValidationError{Field: "location_text", Message: "location_text is required"}
		}
	}
	in.Query = strings.TrimSpace(in.Query)
	in.LocationText = strings.TrimSpace(in.LocationText)

	if in.Origin != nil {
		if err := in.Origin.Validate("origin"); err != nil {
			return err
		}
	}

	if in.RadiusMeters == 0 {
		in.RadiusMeters = DefaultRadiusMeters
	}
	if in.RadiusMeters < MinRadiusMeters || in.RadiusMeters > MaxRadiusMeters {
		return &ValidationError{
			Field:   "radius_m",
			Value:   fmt.Sprintf("%v", in.RadiusMeters),
			Message: fmt.Sprintf("radius_m must be between %d and %d", MinRadiusMeters, MaxRadiusMeters),
		}
	}

	if in.MinRating != nil && (*in.MinRating < 1 || *in.MinRating > 5) {
		return &ValidationError{
			Field:   "min_rating",
			Value:   fmt.Sprintf("%v", *in.MinRating),
			Message: "min_rating must be between 1 and 5",
		}
	}

	if in.SortBy == "" {
		in.SortBy = SortRelevance
	}
	switch in.SortBy {
	case SortRelevance, SortRating, SortDistance:
	default:
		return &ValidationError{
			Field:   "sort_by",
			Value:   string(in.SortBy),
			Message: "sort_by must be one of: relevance, rating, distance",
		}
	}

	if in.MaxResults == 0 {
		in.MaxResults = DefaultMaxResults
	}
	if in.MaxResults < 1 || in.MaxResults > MaxResultsLimit {
		return &ValidationError{
			Field:   "max_results",
			Value:   fmt.Sprintf("%d", in.MaxResults),
			Message: fmt.Sprintf("max_results must be between 1 and %d", MaxResultsLimit),
		}
	}

	return nil
}

// SearchOutput is the structured return of both fresh searches and
// refinements.
type SearchOutput struct {
	Center  LatLng        `json:"center"`
	Bounds  Bounds        `json:"bounds"`
	Results []PlaceResult `json:"results"`
	StateID string        `json:"state_id"`
}

// DirectionsInput carries the arguments of a get_directions call.
type DirectionsInput struct {
	Origin      LatLng     `json:"origin"`
	Destination LatLng     `json:"destination"`
	Mode        TravelMode `json:"mode,omitempty"`
}

// Validate checks coordinates and travel mode, defaulting to driving.
func (in *DirectionsInput) Validate() error {
	if err := in.Origin.Validate("origin"); err != nil {
		return err
	}
	if err := in.Destination.Validate("destination"); err != nil {
		return err
	}
	if in.Mode == "" {
		in.Mode = ModeDriving
	}
	switch in.Mode {
	case ModeDriving, ModeWalking, ModeTransit, ModeBicycling:
	default:
		return &ValidationError{
			Field:   "mode",
			Value:   string(in.Mode),
			Message: "mode must be one of: driving, walking, transit, bicycling",
		}
	}
	return nil
}

// MapResourceInput carries the arguments of a compose_map_resource call.
type MapResourceInput struct {
	StateID       string `json:"state_id"`
	RoutePolyline string `json:"route_polyline,omitempty"`
}

// Validate requires a state id.
func (in *MapResourceInput) Validate() error {
	if strings.TrimSpace(in.StateID) == "" {
		return &ValidationError{Field: "state_id", Message: "state_id is required"}
	}
	return nil
}

// MapResource is the metadata of the fullscreen map view for a session.
type MapResource struct {
	ResourceID    string `json:"resource_id"`
	StateID       string `json:"state_id"`
	DisplayMode   string `json:"display_mode"`
	RoutePolyline string `json:"route_polyline,omitempty"`
}
