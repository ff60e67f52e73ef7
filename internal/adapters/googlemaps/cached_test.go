package googlemaps

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localhub/localhub/internal/core/domain"
)

// countingProvider records how many times each operation hits the upstream.
type countingProvider struct {
	searchCalls  int
	detailsCalls int
	geocodeCalls int

	searchErr  error
	geocodeErr error
}

func (p *countingProvider) Search(ctx context.Context, query string, location *domain.LatLng, radiusMeters float64, openNow bool) ([]domain.PlaceResult, error) {
	p.searchCalls++
	if p.searchErr != nil {
		return nil, p.searchErr
	}
	return []domain.PlaceResult{{PlaceID: "p1", Name: query}}, nil
}

func (p *countingProvider) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	p.detailsCalls++
	return &domain.PlaceDetails{PlaceID: placeID, Name: "Good Pizza"}, nil
}

func (p *countingProvider) Geocode(ctx context.Context, address string) (domain.LatLng, error) {
	p.geocodeCalls++
	if p.geocodeErr != nil {
		return domain.LatLng{}, p.geocodeErr
	}
	return domain.LatLng{Lat: -36.85, Lng: 174.76}, nil
}

func (p *countingProvider) Directions(ctx context.Context, origin, destination domain.LatLng, mode domain.TravelMode) (*domain.DirectionsRoute, error) {
	return &domain.DirectionsRoute{Polyline: "abc"}, nil
}

func newCachedProvider(t *testing.T, inner *countingProvider, clock clockwork.Clock) *CachedProvider {
	t.Helper()
	p := NewCachedProvider(inner, CacheTTLs{
		Search:        5 * time.Minute,
		Details:       5 * time.Minute,
		Geocode:       10 * time.Minute,
		SweepInterval: time.Minute,
	}, clock)
	t.Cleanup(p.Stop)
	return p
}

func TestCachedProvider_SearchHit(t *testing.T) {
	inner := &countingProvider{}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	ctx := context.Background()
	loc := &domain.LatLng{Lat: -36.85, Lng: 174.76}

	first, err := p.Search(ctx, "pizza", loc, 5000, false)
	require.NoError(t, err)
	second, err := p.Search(ctx, "pizza", loc, 5000, false)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.searchCalls, "second identical search should be served from cache")
	assert.Equal(t, first, second)
}

func TestCachedProvider_SearchKeyIncludesAllParams(t *testing.T) {
	inner := &countingProvider{}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	ctx := context.Background()
	loc := &domain.LatLng{Lat: -36.85, Lng: 174.76}

	_, err := p.Search(ctx, "pizza", loc, 5000, false)
	require.NoError(t, err)
	_, err = p.Search(ctx, "pizza", loc, 5000, true)
	require.NoError(t, err)
	_, err = p.Search(ctx, "pizza", nil, 5000, false)
	require.NoError(t, err)

	assert.Equal(t, 3, inner.searchCalls, "different parameters must not share a cache entry")
}

func TestCachedProvider_SearchExpiry(t *testing.T) {
	inner := &countingProvider{}
	clock := clockwork.NewFakeClock()
	p := newCachedProvider(t, inner, clock)

	ctx := context.Background()
	_, err := p.Search(ctx, "pizza", nil, 5000, false)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)

	_, err = p.Search(ctx, "pizza", nil, 5000, false)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.searchCalls, "expired entry should fall through to the upstream")
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{searchErr: &domain.UpstreamError{Status: "OVER_QUERY_LIMIT"}}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	ctx := context.Background()
	_, err := p.Search(ctx, "pizza", nil, 5000, false)
	require.Error(t, err)

	inner.searchErr = nil
	results, err := p.Search(ctx, "pizza", nil, 5000, false)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 2, inner.searchCalls, "a failed call must not poison the cache")
}

func TestCachedProvider_GeocodeNotFoundNotCached(t *testing.T) {
	inner := &countingProvider{geocodeErr: &domain.NotFoundError{Kind: "location", ID: "nowhere"}}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	ctx := context.Background()
	_, err := p.Geocode(ctx, "nowhere")
	require.True(t, domain.IsNotFound(err))

	inner.geocodeErr = nil
	loc, err := p.Geocode(ctx, "nowhere")
	require.NoError(t, err)
	assert.Equal(t, domain.LatLng{Lat: -36.85, Lng: 174.76}, loc)
	assert.Equal(t, 2, inner.geocodeCalls)
}

func TestCachedProvider_DetailsHit(t *testing.T) {
	inner := &countingProvider{}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	ctx := context.Background()
	first, err := p.Details(ctx, "p1")
	require.NoError(t, err)
	second, err := p.Details(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.detailsCalls)
	assert.Equal(t, first, second)
	assert.NotSame(t, first, second, "cache hits return an independent copy")
}

func TestCachedProvider_DirectionsPassthrough(t *testing.T) {
	inner := &countingProvider{}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	route, err := p.Directions(context.Background(), domain.LatLng{}, domain.LatLng{Lat: 1}, domain.ModeDriving)
	require.NoError(t, err)
	assert.Equal(t, "abc", route.Polyline)
}

func TestCachedProvider_ClearCaches(t *testing.T) {
	inner := &countingProvider{}
	p := newCachedProvider(t, inner, clockwork.NewFakeClock())

	ctx := context.Background()
	_, err := p.Geocode(ctx, "Ponsonby")
	require.NoError(t, err)

	p.ClearCaches()

	_, err = p.Geocode(ctx, "Ponsonby")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.geocodeCalls)
}
