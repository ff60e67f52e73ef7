package domain

import (
	"time"
)

// PlaceResult is a single business returned by the upstream place search.
// Immutable once attached to a session.
type PlaceResult struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Location    LatLng   `json:"location"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating,omitempty"`       // 1..5 when present
	RatingCount *int     `json:"rating_count,omitempty"` // total user ratings
	Phone       string   `json:"phone,omitempty"`
	OpenNow     *bool    `json:"open_now,omitempty"`
}

// OpeningHours describes a place's schedule.
type OpeningHours struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// PlaceDetails is the enriched view of a single place.
type PlaceDetails struct {
	PlaceID      string        `json:"place_id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone,omitempty"`
	Rating       *float64      `json:"rating,omitempty"`
	RatingCount  *int          `json:"rating_count,omitempty"`
	Website      string        `json:"website,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
}

// SearchSession is a stored search result set addressable by its StateID.
// Owned exclusively by the session store; refinements always mint a new
// session instead of mutating an existing one.
type SearchSession struct {
	StateID   string        `json:"state_id"`
	Results   []PlaceResult `json:"results"`
	Center    LatLng        `json:"center"`
	Bounds    Bounds        `json:"bounds"`
	LastQuery string        `json:"last_query"`
	CreatedAt time.Time     `json:"created_at"`
}

// TravelMode enumerates the supported direction modes.
type TravelMode string

const (
	ModeDriving   TravelMode = "driving"
	ModeWalking   TravelMode = "walking"
	ModeTransit   TravelMode = "transit"
	ModeBicycling TravelMode = "bicycling"
)

// TravelModes lists all valid modes, in the order they are documented.
var TravelModes = []TravelMode{ModeDriving, ModeWalking, ModeTransit, ModeBicycling}

// DirectionsRoute is the summary of the best route between two points.
type DirectionsRoute struct {
	Polyline      string `json:"polyline"`
	DurationText  string `json:"duration_text"`
	DistanceText  string `json:"distance_text"`
	DurationValue int    `json:"duration_value"` // seconds
	DistanceValue int    `json:"distance_value"` // meters
}

// SortOrder enumerates the result orderings a caller may request.
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortRating    SortOrder = "rating"
	SortDistance  SortOrder = "distance"
)

// SortOrders lists all valid sort orders.
var SortOrders = []SortOrder{SortRelevance, SortRating, SortDistance}
