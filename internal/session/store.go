// Package session holds search sessions in memory, keyed by an opaque
// state id. A session has an absolute lifetime from creation; reads do not
// refresh it. Once expired, a session is indistinguishable from one that
// never existed.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/pkg/metrics"
)

const (
	// DefaultExpiry is the absolute session lifetime.
	DefaultExpiry = 30 * time.Minute
	// DefaultSweepInterval bounds memory growth for sessions that are
	// created but never revisited.
	DefaultSweepInterval = 5 * time.Minute
)

// Store is a thread-safe in-memory session store with periodic sweep.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]domain.SearchSession

	expiry time.Duration
	clock  clockwork.Clock
	logger *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// Option configures a Store.
type Option func(*options)

type options struct {
	expiry        time.Duration
	sweepInterval time.Duration
	clock         clockwork.Clock
	logger        *slog.Logger
}

// WithExpiry sets the absolute session lifetime.
func WithExpiry(d time.Duration) Option {
	return func(o *options) { o.expiry = d }
}

// WithSweepInterval sets how often expired sessions are swept.
func WithSweepInterval(d time.Duration) Option {
	return func(o *options) { o.sweepInterval = d }
}

// WithClock injects a time source, letting tests freeze time.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the store's logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewStore creates a session store and starts its background sweep.
// Callers own the lifecycle and must call Stop on shutdown.
func NewStore(opts ...Option) *Store {
	o := options{
		expiry:        DefaultExpiry,
		sweepInterval: DefaultSweepInterval,
		clock:         clockwork.NewRealClock(),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		sessions: make(map[string]domain.SearchSession),
		expiry:   o.expiry,
		clock:    o.clock,
		logger:   o.logger,
		stop:     make(chan struct{}),
	}
	go s.sweepLoop(o.sweepInterval)
	return s
}

// GenerateID returns a fresh opaque state id. Collision with a live session
// is treated as negligible; no security property is claimed.
func (s *Store) GenerateID() string {
	return uuid.NewString()
}

// Put stores the session under its StateID, stamping CreatedAt with the
// current time.
func (s *Store) Put(sess domain.SearchSession) {
	sess.CreatedAt = s.clock.Now()

	s.mu.Lock()
	s.sessions[sess.StateID] = sess
	s.mu.Unlock()

	metrics.SessionsCreated.Inc()
	metrics.ActiveSessions.Set(float64(s.count()))
}

// Get returns the session for stateID. An expired session is deleted on
// read and reported as absent, never as an error.
func (s *Store) Get(stateID string) (domain.SearchSession, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[stateID]
	s.mu.RUnlock()

	if !ok {
		return domain.SearchSession{}, false
	}
	if s.isExpired(sess) {
		s.mu.Lock()
		if cur, ok := s.sessions[stateID]; ok && s.isExpired(cur) {
			delete(s.sessions, stateID)
			metrics.SessionsExpired.Inc()
		}
		s.mu.Unlock()
		metrics.ActiveSessions.Set(float64(s.count()))
		return domain.SearchSession{}, false
	}
	return sess, true
}

// Delete removes the session for stateID.
func (s *Store) Delete(stateID string) {
	s.mu.Lock()
	delete(s.sessions, stateID)
	s.mu.Unlock()
	metrics.ActiveSessions.Set(float64(s.count()))
}

// Len sweeps expired sessions first, then reports the live session count.
func (s *Store) Len() int {
	s.sweep()
	return s.count()
}

// Clear removes all sessions.
func (s *Store) Clear() {
	s.mu.Lock()
	s.sessions = make(map[string]domain.SearchSession)
	s.mu.Unlock()
	metrics.ActiveSessions.Set(0)
}

// Stop ends the background sweep.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) isExpired(sess domain.SearchSession) bool {
	return s.clock.Now().Sub(sess.CreatedAt) > s.expiry
}

func (s *Store) sweepLoop(interval time.Duration) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) sweep() {
	s.mu.RLock()
	var expired []string
	for id, sess := range s.sessions {
		if s.isExpired(sess) {
			expired = append(expired, id)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return
	}

	s.mu.Lock()
	removed := 0
	for _, id := range expired {
		if sess, ok := s.sessions[id]; ok && s.isExpired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		metrics.SessionsExpired.Add(float64(removed))
		metrics.ActiveSessions.Set(float64(s.count()))
		s.logger.Debug("swept expired sessions", "removed", removed)
	}
}
