package googlemaps

import (
	"context"
	"fmt"
	"net/url"

	"github.com/localhub/localhub/internal/core/domain"
)

type directionsResponse struct {
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"duration"`
			Distance struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// Directions returns the best route between two points. No route is a
// not-found outcome.
func (c *Client) Directions(ctx context.Context, origin, destination domain.LatLng, mode domain.TravelMode) (*domain.DirectionsRoute, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	params.Set("mode", string(mode))

	var resp directionsResponse
	status, err := c.doRequest(ctx, "/directions/json", params, &resp)
	if err != nil {
		return nil, err
	}
	if status == statusZeroResults || len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, &domain.NotFoundError{Kind: "route"}
	}

	route := resp.Routes[0]
	leg := route.Legs[0]

	return &domain.DirectionsRoute{
		Polyline:      route.OverviewPolyline.Points,
		DurationText:  leg.Duration.Text,
		DistanceText:  leg.Distance.Text,
		DurationValue: leg.Duration.Value,
		DistanceValue: leg.Distance.Value,
	}, nil
}
