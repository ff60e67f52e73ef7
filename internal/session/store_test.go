package session

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localhub/localhub/internal/core/domain"
)

func newTestStore(t *testing.T, clock clockwork.Clock, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(clock)}, opts...)
	s := NewStore(opts...)
	t.Cleanup(s.Stop)
	return s
}

func sampleSession(stateID string) domain.SearchSession {
	rating := 4.5
	count := 120
	return domain.SearchSession{
		StateID: stateID,
		Results: []domain.PlaceResult{
			{
				PlaceID:     "p1",
				Name:        "Good Pizza",
				Location:    domain.LatLng{Lat: -36.85, Lng: 174.76},
				Address:     "1 Ponsonby Rd",
				Rating:      &rating,
				RatingCount: &count,
			},
		},
		Center:    domain.LatLng{Lat: -36.85, Lng: 174.76},
		Bounds:    domain.Bounds{NE: domain.LatLng{Lat: -36.85, Lng: 174.76}, SW: domain.LatLng{Lat: -36.85, Lng: 174.76}},
		LastQuery: "pizza near Ponsonby",
	}
}

func TestStore_PutGet(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestStore(t, clock)

	id := s.GenerateID()
	want := sampleSession(id)
	s.Put(want)

	got, ok := s.Get(id)
	require.True(t, ok)

	// CreatedAt is stamped on Put; everything else round-trips untouched.
	want.CreatedAt = clock.Now()
	assert.Equal(t, want, got)
}

func TestStore_GetUnknown(t *testing.T) {
	s := newTestStore(t, clockwork.NewFakeClock())

	_, ok := s.Get("no-such-id")
	assert.False(t, ok)
}

func TestStore_GenerateIDUnique(t *testing.T) {
	s := newTestStore(t, clockwork.NewFakeClock())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.GenerateID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}

func TestStore_AbsoluteExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestStore(t, clock, WithExpiry(30*time.Minute))

	id := s.GenerateID()
	s.Put(sampleSession(id))

	// Reads do not refresh the lifetime.
	clock.Advance(20 * time.Minute)
	_, ok := s.Get(id)
	require.True(t, ok)

	clock.Advance(11 * time.Minute)
	_, ok = s.Get(id)
	assert.False(t, ok, "an expired session is indistinguishable from never existed")
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t, clockwork.NewFakeClock())

	id := s.GenerateID()
	s.Put(sampleSession(id))
	s.Delete(id)

	_, ok := s.Get(id)
	assert.False(t, ok)
}

func TestStore_LenSweepsExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestStore(t, clock, WithExpiry(30*time.Minute))

	for i := 0; i < 5; i++ {
		s.Put(sampleSession(s.GenerateID()))
	}
	require.Equal(t, 5, s.Len())

	// All sessions pass their expiry window; Len must report 0 without any
	// of them being read again and without an explicit sweep call.
	clock.Advance(31 * time.Minute)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t, clockwork.NewFakeClock())

	s.Put(sampleSession(s.GenerateID()))
	s.Put(sampleSession(s.GenerateID()))
	s.Clear()

	assert.Equal(t, 0, s.Len())
}
