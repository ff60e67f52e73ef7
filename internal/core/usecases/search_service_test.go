package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/core/usecases"
	"github.com/localhub/localhub/internal/session"
)

// --- Mock PlaceProvider ---

type mockProvider struct {
	searchFn     func(ctx context.Context, query string, location *domain.LatLng, radiusMeters float64, openNow bool) ([]domain.PlaceResult, error)
	detailsFn    func(ctx context.Context, placeID string) (*domain.PlaceDetails, error)
	geocodeFn    func(ctx context.Context, address string) (domain.LatLng, error)
	directionsFn func(ctx context.Context, origin, destination domain.LatLng, mode domain.TravelMode) (*domain.DirectionsRoute, error)

	searchCalls  int
	geocodeCalls int
}

func (m *mockProvider) Search(ctx context.Context, query string, location *domain.LatLng, radiusMeters float64, openNow bool) ([]domain.PlaceResult, error) {
	m.searchCalls++
	if m.searchFn != nil {
		return m.searchFn(ctx, query, location, radiusMeters, openNow)
	}
	return nil, nil
}

func (m *mockProvider) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	if m.detailsFn != nil {
		return m.detailsFn(ctx, placeID)
	}
	return nil, nil
}

func (m *mockProvider) Geocode(ctx context.Context, address string) (domain.LatLng, error) {
	m.geocodeCalls++
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, address)
	}
	return domain.LatLng{}, nil
}

func (m *mockProvider) Directions(ctx context.Context, origin, destination domain.LatLng, mode domain.TravelMode) (*domain.DirectionsRoute, error) {
	if m.directionsFn != nil {
		return m.directionsFn(ctx, origin, destination, mode)
	}
	return nil, nil
}

// --- Helpers ---

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	s := session.NewStore(session.WithClock(clockwork.NewFakeClock()))
	t.Cleanup(s.Stop)
	return s
}

func tenPlaces() []domain.PlaceResult {
	places := make([]domain.PlaceResult, 10)
	for i := range places {
		places[i] = domain.PlaceResult{
			PlaceID:  string(rune('a' + i)),
			Name:     "Place " + string(rune('A'+i)),
			Location: domain.LatLng{Lat: -36.85 + float64(i)*0.01, Lng: 174.76},
		}
		if i%2 == 0 {
			places[i].Rating = fptr(3.0 + float64(i)*0.2)
			places[i].RatingCount = iptr(10 * (i + 1))
		}
	}
	return places
}

// --- Tests ---

func TestSearchService_FreshSearch(t *testing.T) {
	provider := &mockProvider{
		searchFn: func(ctx context.Context, query string, location *domain.LatLng, radius float64, openNow bool) ([]domain.PlaceResult, error) {
			if query != "pizza in Ponsonby" {
				t.Errorf("unexpected upstream query: %q", query)
			}
			return tenPlaces(), nil
		},
	}
	store := newTestStore(t)
	svc := usecases.NewSearchService(provider, store, nil)

	origin := &domain.LatLng{Lat: -36.85, Lng: 174.76}
	out, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "pizza near Ponsonby",
		LocationText: "Ponsonby",
		Origin:       origin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(out.Results))
	}
	if out.StateID == "" {
		t.Fatal("expected a state id")
	}
	if out.Center != *origin {
		t.Errorf("explicit origin must be the center, got %+v", out.Center)
	}
	for _, r := range out.Results {
		if !out.Bounds.Contains(r.Location) {
			t.Errorf("bounds do not contain %s", r.PlaceID)
		}
	}
	if provider.geocodeCalls != 0 {
		t.Errorf("no geocode expected when origin supplied, got %d calls", provider.geocodeCalls)
	}

	// The session is stored and readable.
	sess, ok := store.Get(out.StateID)
	if !ok {
		t.Fatal("session was not stored")
	}
	if sess.LastQuery != "pizza near Ponsonby" {
		t.Errorf("unexpected last query: %q", sess.LastQuery)
	}
}

func TestSearchService_GeocodeWhenNoOrigin(t *testing.T) {
	provider := &mockProvider{
		geocodeFn: func(ctx context.Context, address string) (domain.LatLng, error) {
			if address != "Ponsonby" {
				t.Errorf("unexpected geocode address: %q", address)
			}
			return domain.LatLng{Lat: -36.85, Lng: 174.74}, nil
		},
		searchFn: func(ctx context.Context, query string, location *domain.LatLng, radius float64, openNow bool) ([]domain.PlaceResult, error) {
			if location == nil || location.Lat != -36.85 {
				t.Errorf("expected geocoded search location, got %+v", location)
			}
			return tenPlaces(), nil
		},
	}
	svc := usecases.NewSearchService(provider, newTestStore(t), nil)

	_, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "pizza near Ponsonby",
		LocationText: "Ponsonby",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.geocodeCalls != 1 {
		t.Errorf("expected 1 geocode call, got %d", provider.geocodeCalls)
	}
}

func TestSearchService_GeocodeFailureIsFatal(t *testing.T) {
	provider := &mockProvider{
		geocodeFn: func(ctx context.Context, address string) (domain.LatLng, error) {
			return domain.LatLng{}, &domain.NotFoundError{Kind: "location", ID: address}
		},
	}
	svc := usecases.NewSearchService(provider, newTestStore(t), nil)

	_, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "pizza near nowhere",
		LocationText: "nowhere",
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if provider.searchCalls != 0 {
		t.Error("search must not run after a failed geocode")
	}
}

func TestSearchService_Refinement(t *testing.T) {
	provider := &mockProvider{
		searchFn: func(ctx context.Context, query string, location *domain.LatLng, radius float64, openNow bool) ([]domain.PlaceResult, error) {
			return tenPlaces(), nil
		},
	}
	store := newTestStore(t)
	svc := usecases.NewSearchService(provider, store, nil)

	origin := &domain.LatLng{Lat: -36.85, Lng: 174.76}
	fresh, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "pizza near Ponsonby",
		LocationText: "Ponsonby",
		Origin:       origin,
	})
	if err != nil {
		t.Fatalf("fresh search: %v", err)
	}

	refined, err := svc.Search(context.Background(), domain.SearchInput{
		StateID:   fresh.StateID,
		MinRating: fptr(4.0),
		SortBy:    domain.SortRating,
	})
	if err != nil {
		t.Fatalf("refinement: %v", err)
	}

	// No upstream re-fetch on refinement.
	if provider.searchCalls != 1 {
		t.Errorf("expected 1 upstream search, got %d", provider.searchCalls)
	}

	// New state id; the refined set is a filtered, sorted subset.
	if refined.StateID == fresh.StateID {
		t.Error("refinement must mint a new state id")
	}
	originalIDs := make(map[string]bool)
	for _, r := range fresh.Results {
		originalIDs[r.PlaceID] = true
	}
	for _, r := range refined.Results {
		if !originalIDs[r.PlaceID] {
			t.Errorf("refined result %s not in the original set", r.PlaceID)
		}
		if r.Rating == nil || *r.Rating < 4.0 {
			t.Errorf("refined result %s does not meet the rating filter", r.PlaceID)
		}
	}
	for i := 1; i < len(refined.Results); i++ {
		if *refined.Results[i-1].Rating < *refined.Results[i].Rating {
			t.Error("refined results are not sorted by rating")
		}
	}

	// The original session survives unfiltered.
	orig, ok := store.Get(fresh.StateID)
	if !ok {
		t.Fatal("original session must remain readable")
	}
	if len(orig.Results) != 10 {
		t.Errorf("original session mutated: %d results", len(orig.Results))
	}
}

func TestSearchService_RefinementUnknownSession(t *testing.T) {
	svc := usecases.NewSearchService(&mockProvider{}, newTestStore(t), nil)

	_, err := svc.Search(context.Background(), domain.SearchInput{StateID: "missing"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSearchService_LimitAfterFilterAndSort(t *testing.T) {
	// 30 rated places; the top-rated ones sit at the end of the upstream
	// order, so a limit applied too early would drop them.
	places := make([]domain.PlaceResult, 30)
	for i := range places {
		places[i] = domain.PlaceResult{
			PlaceID:  string(rune('a' + i)),
			Location: domain.LatLng{Lat: float64(i) * 0.001},
			Rating:   fptr(1.0 + float64(i)*0.1),
		}
	}
	provider := &mockProvider{
		searchFn: func(ctx context.Context, query string, location *domain.LatLng, radius float64, openNow bool) ([]domain.PlaceResult, error) {
			return places, nil
		},
	}
	svc := usecases.NewSearchService(provider, newTestStore(t), nil)

	out, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "cafes in Auckland",
		LocationText: "Auckland",
		Origin:       &domain.LatLng{},
		SortBy:       domain.SortRating,
		MaxResults:   5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(out.Results))
	}
	// The best-rated item is the last upstream one.
	if *out.Results[0].Rating < 3.9 {
		t.Errorf("limit ran before sort: top result rated %v", *out.Results[0].Rating)
	}
}

func TestSearchService_ValidationBeforeUpstream(t *testing.T) {
	provider := &mockProvider{}
	svc := usecases.NewSearchService(provider, newTestStore(t), nil)

	_, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "pizza",
		LocationText: "Ponsonby",
		RadiusMeters: 1,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if provider.searchCalls != 0 || provider.geocodeCalls != 0 {
		t.Error("invalid input must be rejected before any upstream call")
	}
}

func TestSearchService_UpstreamErrorPropagates(t *testing.T) {
	provider := &mockProvider{
		searchFn: func(ctx context.Context, query string, location *domain.LatLng, radius float64, openNow bool) ([]domain.PlaceResult, error) {
			return nil, &domain.UpstreamError{Status: "OVER_QUERY_LIMIT", Message: "quota exceeded"}
		},
	}
	svc := usecases.NewSearchService(provider, newTestStore(t), nil)

	_, err := svc.Search(context.Background(), domain.SearchInput{
		Query:        "pizza in Ponsonby",
		LocationText: "Ponsonby",
		Origin:       &domain.LatLng{},
	})

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ue.Status != "OVER_QUERY_LIMIT" {
		t.Errorf("upstream status lost in translation: %s", ue.Status)
	}
}
