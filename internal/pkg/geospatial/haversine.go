package geospatial

import "math"

// Mean Earth radius in meters.
const earthRadiusM = 6371000.0

// Haversine calculates the great-circle distance in meters between two points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

// Midpoint returns the arithmetic midpoint of two coordinates.
// Good enough for centering a map view over a city-scale bounding box.
func Midpoint(lat1, lng1, lat2, lng2 float64) (lat, lng float64) {
	return (lat1 + lat2) / 2, (lng1 + lng2) / 2
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
