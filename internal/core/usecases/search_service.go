package usecases

import (
	"context"
	"log/slog"

	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/core/ports"
)

// SearchService orchestrates place searches and refinements. A fresh search
// queries the upstream provider and stores the result set as a new session;
// a refinement reuses a prior session's result set and only re-runs the
// filter/sort/limit pipeline, so changing the view never costs another
// upstream query.
type SearchService struct {
	places   ports.PlaceProvider
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(places ports.PlaceProvider, sessions ports.SessionStore, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{places: places, sessions: sessions, logger: logger}
}

// Search handles a search_places call. A non-empty StateID refines the
// named session; otherwise the query goes upstream.
func (s *SearchService) Search(ctx context.Context, in domain.SearchInput) (*domain.SearchOutput, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.StateID != "" {
		return s.refine(ctx, in)
	}
	return s.freshSearch(ctx, in)
}

func (s *SearchService) freshSearch(ctx context.Context, in domain.SearchInput) (*domain.SearchOutput, error) {
	parsed := domain.ParseQuery(in.Query, in.LocationText)

	// An explicit origin is the search location. Without one, or for a
	// "near me" phrase, the location text must geocode; geocoding failure
	// is fatal for the call.
	searchLocation := in.Origin
	if searchLocation == nil || domain.IsNearMe(in.LocationText) {
		if in.Origin == nil {
			loc, err := s.places.Geocode(ctx, parsed.Location)
			if err != nil {
				return nil, err
			}
			searchLocation = &loc
		} else {
			searchLocation = in.Origin
		}
	}

	results, err := s.places.Search(ctx,
		domain.FormatSearchQuery(parsed.Entity, parsed.Location),
		searchLocation, in.RadiusMeters, in.OpenNow)
	if err != nil {
		return nil, err
	}

	s.logger.Info("fresh search",
		"query", in.Query,
		"location", parsed.Location,
		"results", len(results),
	)

	return s.finalize(in, results, searchLocation), nil
}

func (s *SearchService) refine(ctx context.Context, in domain.SearchInput) (*domain.SearchOutput, error) {
	sess, ok := s.sessions.Get(in.StateID)
	if !ok {
		return nil, &domain.NotFoundError{Kind: "session", ID: in.StateID}
	}

	s.logger.Info("refining search",
		"state_id", in.StateID,
		"base_results", len(sess.Results),
	)

	// Reuse the stored result set and center; no upstream re-fetch.
	center := sess.Center
	if in.Query == "" {
		in.Query = sess.LastQuery
	}
	return s.finalize(in, sess.Results, &center), nil
}

// finalize runs the shared tail of both paths: filter, sort, limit, then
// bounds/center over the final subset, and mints a new session. The old
// session of a refinement stays intact and expires on its own.
func (s *SearchService) finalize(in domain.SearchInput, results []domain.PlaceResult, origin *domain.LatLng) *domain.SearchOutput {
	if in.MinRating != nil {
		results = domain.FilterByRating(results, *in.MinRating)
	}
	results = domain.SortResults(results, in.SortBy, origin)
	results = domain.LimitResults(results, in.MaxResults)

	bounds := domain.ComputeBounds(results)
	center := domain.ComputeCenter(results, origin)

	stateID := s.sessions.GenerateID()
	s.sessions.Put(domain.SearchSession{
		StateID:   stateID,
		Results:   results,
		Center:    center,
		Bounds:    bounds,
		LastQuery: in.Query,
	})

	return &domain.SearchOutput{
		Center:  center,
		Bounds:  bounds,
		Results: results,
		StateID: stateID,
	}
}
