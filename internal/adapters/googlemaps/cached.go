package googlemaps

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/localhub/localhub/internal/cache"
	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/core/ports"
	"github.com/localhub/localhub/internal/pkg/metrics"
)

// CachedProvider decorates a PlaceProvider with per-operation TTL caches.
// Search, details, and geocode lookups are memoized; directions are not
// (routes depend on live traffic). Not-found and hard failures are never
// cached, so transient outcomes can be retried. Zero-result searches are
// cached like any other result set.
type CachedProvider struct {
	inner ports.PlaceProvider

	search  *cache.Cache[[]domain.PlaceResult]
	details *cache.Cache[domain.PlaceDetails]
	geocode *cache.Cache[domain.LatLng]
}

// CacheTTLs carries the per-operation TTLs and the shared sweep interval.
type CacheTTLs struct {
	Search        time.Duration
	Details       time.Duration
	Geocode       time.Duration
	SweepInterval time.Duration
}

// NewCachedProvider creates a cache decorator around a place provider.
func NewCachedProvider(inner ports.PlaceProvider, ttls CacheTTLs, clock clockwork.Clock) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		search:  cache.New[[]domain.PlaceResult](ttls.Search, ttls.SweepInterval, clock),
		details: cache.New[domain.PlaceDetails](ttls.Details, ttls.SweepInterval, clock),
		geocode: cache.New[domain.LatLng](ttls.Geocode, ttls.SweepInterval, clock),
	}
}

func (p *CachedProvider) Search(ctx context.Context, query string, location *domain.LatLng, radiusMeters float64, openNow bool) ([]domain.PlaceResult, error) {
	key := cache.Key("search", query, location, radiusMeters, openNow)
	if results, ok := p.search.Get(key); ok {
		metrics.CacheHits.WithLabelValues("search").Inc()
		return results, nil
	}
	metrics.CacheMisses.WithLabelValues("search").Inc()

	results, err := p.inner.Search(ctx, query, location, radiusMeters, openNow)
	if err != nil {
		return nil, err
	}
	p.search.Set(key, results, 0)
	return results, nil
}

func (p *CachedProvider) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	key := cache.Key("details", placeID)
	if details, ok := p.details.Get(key); ok {
		metrics.CacheHits.WithLabelValues("details").Inc()
		return &details, nil
	}
	metrics.CacheMisses.WithLabelValues("details").Inc()

	details, err := p.inner.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}
	p.details.Set(key, *details, 0)
	return details, nil
}

func (p *CachedProvider) Geocode(ctx context.Context, address string) (domain.LatLng, error) {
	key := cache.Key("geocode", address)
	if loc, ok := p.geocode.Get(key); ok {
		metrics.CacheHits.WithLabelValues("geocode").Inc()
		return loc, nil
	}
	metrics.CacheMisses.WithLabelValues("geocode").Inc()

	loc, err := p.inner.Geocode(ctx, address)
	if err != nil {
		return domain.LatLng{}, err
	}
	p.geocode.Set(key, loc, 0)
	return loc, nil
}

func (p *CachedProvider) Directions(ctx context.Context, origin, destination domain.LatLng, mode domain.TravelMode) (*domain.DirectionsRoute, error) {
	return p.inner.Directions(ctx, origin, destination, mode)
}

// ClearCaches empties all caches.
func (p *CachedProvider) ClearCaches() {
	p.search.Clear()
	p.details.Clear()
	p.geocode.Clear()
}

// Stop ends the background sweeps of all caches.
func (p *CachedProvider) Stop() {
	p.search.Stop()
	p.details.Stop()
	p.geocode.Stop()
}
