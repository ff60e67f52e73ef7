package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/localhub/localhub/internal/core/domain"
)

// Google Places / Geocoding response types, reduced to the fields we map.

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleGeometry struct {
	Location googleLocation `json:"location"`
}

type googleOpeningHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type googlePlace struct {
	PlaceID            string              `json:"place_id"`
	Name               string              `json:"name"`
	Geometry           googleGeometry      `json:"geometry"`
	FormattedAddress   string              `json:"formatted_address"`
	Rating             *float64            `json:"rating"`
	UserRatingsTotal   *int                `json:"user_ratings_total"`
	FormattedPhone     string              `json:"formatted_phone_number"`
	InternationalPhone string              `json:"international_phone_number"`
	Website            string              `json:"website"`
	OpeningHours       *googleOpeningHours `json:"opening_hours"`
}

type searchResponse struct {
	Results []googlePlace `json:"results"`
}

type detailsResponse struct {
	Result googlePlace `json:"result"`
}

type geocodeResponse struct {
	Results []struct {
		Geometry googleGeometry `json:"geometry"`
	} `json:"results"`
}

// Search runs a Places Text Search. Zero results is a normal outcome and
// returns an empty slice.
func (c *Client) Search(ctx context.Context, query string, location *domain.LatLng, radiusMeters float64, openNow bool) ([]domain.PlaceResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if location != nil {
		params.Set("location", fmt.Sprintf("%f,%f", location.Lat, location.Lng))
	}
	if radiusMeters > 0 {
		params.Set("radius", strconv.FormatFloat(radiusMeters, 'f', 0, 64))
	}
	if openNow {
		params.Set("opennow", "true")
	}

	var resp searchResponse
	status, err := c.doRequest(ctx, "/place/textsearch/json", params, &resp)
	if err != nil {
		return nil, err
	}
	if status == statusZeroResults {
		return []domain.PlaceResult{}, nil
	}

	results := make([]domain.PlaceResult, 0, len(resp.Results))
	for _, p := range resp.Results {
		results = append(results, mapPlaceToResult(p))
	}
	c.logger.Debug("places search", "query", query, "results", len(results))
	return results, nil
}

// Details returns the enriched view of a single place. An unknown id is a
// not-found outcome.
func (c *Client) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,formatted_phone_number,"+
		"international_phone_number,rating,user_ratings_total,website,opening_hours")

	var resp detailsResponse
	status, err := c.doRequest(ctx, "/place/details/json", params, &resp)
	if err != nil {
		return nil, err
	}
	if status == statusZeroResults {
		return nil, &domain.NotFoundError{Kind: "place", ID: placeID}
	}

	details := mapPlaceToDetails(resp.Result)
	return &details, nil
}

// Geocode resolves an address to a coordinate. Unresolvable text is a
// not-found outcome.
func (c *Client) Geocode(ctx context.Context, address string) (domain.LatLng, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	status, err := c.doRequest(ctx, "/geocode/json", params, &resp)
	if err != nil {
		return domain.LatLng{}, err
	}
	if status == statusZeroResults || len(resp.Results) == 0 {
		return domain.LatLng{}, &domain.NotFoundError{Kind: "location", ID: address}
	}

	loc := resp.Results[0].Geometry.Location
	return domain.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func mapPlaceToResult(p googlePlace) domain.PlaceResult {
	r := domain.PlaceResult{
		PlaceID:     p.PlaceID,
		Name:        p.Name,
		Location:    domain.LatLng{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng},
		Address:     p.FormattedAddress,
		Rating:      p.Rating,
		RatingCount: p.UserRatingsTotal,
		Phone:       pickPhone(p),
	}
	if p.OpeningHours != nil {
		r.OpenNow = p.OpeningHours.OpenNow
	}
	return r
}

func mapPlaceToDetails(p googlePlace) domain.PlaceDetails {
	d := domain.PlaceDetails{
		PlaceID:     p.PlaceID,
		Name:        p.Name,
		Address:     p.FormattedAddress,
		Phone:       pickPhone(p),
		Rating:      p.Rating,
		RatingCount: p.UserRatingsTotal,
		Website:     p.Website,
	}
	if p.OpeningHours != nil {
		oh := domain.OpeningHours{WeekdayText: p.OpeningHours.WeekdayText}
		if p.OpeningHours.OpenNow != nil {
			oh.OpenNow = *p.OpeningHours.OpenNow
		}
		d.OpeningHours = &oh
	}
	return d
}

func pickPhone(p googlePlace) string {
	if p.FormattedPhone != "" {
		return p.FormattedPhone
	}
	return p.InternationalPhone
}
