package domain

import (
	"log/slog"
	"sort"

	"github.com/localhub/localhub/internal/pkg/geospatial"
)

// Result pipeline: pure functions over a list of PlaceResult. None of them
// mutate their input; sorts operate on a copy.

// ComputeBounds returns the minimal bounding box enclosing every result's
// location. An empty input yields the degenerate zero box.
func ComputeBounds(results []PlaceResult) Bounds {
	if len(results) == 0 {
		return Bounds{}
	}

	minLat := results[0].Location.Lat
	maxLat := results[0].Location.Lat
	minLng := results[0].Location.Lng
	maxLng := results[0].Location.Lng

	for _, r := range results[1:] {
		minLat = min(minLat, r.Location.Lat)
		maxLat = max(maxLat, r.Location.Lat)
		minLng = min(minLng, r.Location.Lng)
		maxLng = max(maxLng, r.Location.Lng)
	}

	return Bounds{
		NE: LatLng{Lat: maxLat, Lng: maxLng},
		SW: LatLng{Lat: minLat, Lng: minLng},
	}
}

// ComputeCenter returns the map center for a result set. An explicit origin
// ("you are here") always wins over geometry; otherwise the midpoint of the
// bounding box. An empty set with no origin centers on the zero coordinate.
func ComputeCenter(results []PlaceResult, origin *LatLng) LatLng {
	if origin != nil {
		return *origin
	}
	if len(results) == 0 {
		return LatLng{}
	}
	b := ComputeBounds(results)
	lat, lng := geospatial.Midpoint(b.NE.Lat, b.NE.Lng, b.SW.Lat, b.SW.Lng)
	return LatLng{Lat: lat, Lng: lng}
}

// FilterByRating keeps a result iff it has a rating and the rating meets the
// threshold. Unrated results are always dropped under a threshold filter.
func FilterByRating(results []PlaceResult, minRating float64) []PlaceResult {
	filtered := make([]PlaceResult, 0, len(results))
	for _, r := range results {
		if r.Rating != nil && *r.Rating >= minRating {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortResults orders results by the requested criterion and returns a new
// slice. Relevance preserves the upstream ordering. Rating sorts descending
// with unrated results after all rated ones, ties broken by descending
// rating count, remaining ties keeping input order. Distance sorts ascending
// by haversine distance from origin; with no origin the input order is
// returned unchanged and a warning is logged.
func SortResults(results []PlaceResult, order SortOrder, origin *LatLng) []PlaceResult {
	sorted := make([]PlaceResult, len(results))
	copy(sorted, results)

	switch order {
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if (a.Rating == nil) != (b.Rating == nil) {
				return a.Rating != nil // rated before unrated, regardless of value
			}
			if a.Rating == nil {
				return false
			}
			if *a.Rating != *b.Rating {
				return *a.Rating > *b.Rating
			}
			return ratingCount(a) > ratingCount(b)
		})

	case SortDistance:
		if origin == nil {
			slog.Warn("cannot sort by distance without origin coordinates")
			return sorted
		}
		sort.SliceStable(sorted, func(i, j int) bool {
			return distanceFrom(*origin, sorted[i]) < distanceFrom(*origin, sorted[j])
		})

	case SortRelevance:
		// Upstream ordering is the relevance ordering.
	}

	return sorted
}

// LimitResults truncates to at most maxResults entries. Applied after
// filtering and sorting so both see the full candidate set.
func LimitResults(results []PlaceResult, maxResults int) []PlaceResult {
	if maxResults <= 0 || len(results) <= maxResults {
		return results
	}
	return results[:maxResults]
}

func ratingCount(r PlaceResult) int {
	if r.RatingCount == nil {
		return 0
	}
	return *r.RatingCount
}

func distanceFrom(origin LatLng, r PlaceResult) float64 {
	return geospatial.Haversine(origin.Lat, origin.Lng, r.Location.Lat, r.Location.Lng)
}
