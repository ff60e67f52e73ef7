package ports

import "github.com/localhub/localhub/internal/core/domain"

// SessionStore holds search sessions by state id. Get reports absence for
// unknown and expired ids alike; callers decide whether absence is an error.
type SessionStore interface {
	GenerateID() string
	Put(sess domain.SearchSession)
	Get(stateID string) (domain.SearchSession, bool)
	Delete(stateID string)
	Len() int
}
