package domain

import "fmt"

// LatLng represents a geographic coordinate (WGS 84).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks that the coordinate is within valid WGS 84 ranges.
// field names the input so errors point at the offending value.
func (p LatLng) Validate(field string) error {
	if p.Lat < -90 || p.Lat > 90 {
		return &ValidationError{
			Field:   field + ".lat",
			Value:   fmt.Sprintf("%v", p.Lat),
			Message: field + ".lat must be between -90 and 90",
		}
	}
	if p.Lng < -180 || p.Lng > 180 {
		return &ValidationError{
			Field:   field + ".lng",
			Value:   fmt.Sprintf("%v", p.Lng),
			Message: field + ".lng must be between -180 and 180",
		}
	}
	return nil
}

// Bounds represents a geographic bounding box.
// The zero value (both corners at 0,0) is the documented sentinel for an
// empty result set, not an error.
type Bounds struct {
	NE LatLng `json:"ne"`
	SW LatLng `json:"sw"`
}

// Contains reports whether the point falls inside the box (inclusive).
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.SW.Lat && p.Lat <= b.NE.Lat &&
		p.Lng >= b.SW.Lng && p.Lng <= b.NE.Lng
}
