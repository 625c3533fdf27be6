package memory

import (
	"time"

	"advisor-portal-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// MarkFinalized flips the session into its terminal state. It returns false
// when the session was already finalized, so callers can refuse a second run.
func (r *SessionRepository) MarkFinalized(sessionID, userID, specificationID string) bool {
	if existing, found := r.Get(sessionID); found && existing.Finalized() {
		return false
	}
	r.Save(&store.Session{
		ID:              sessionID,
		UserID:          userID,
		State:           store.StateFinalized,
		SpecificationID: specificationID,
		FinalizedAt:     time.Now(),
	})
	return true
}

// IsFinalized reports whether the session already produced a specification.
func (r *SessionRepository) IsFinalized(sessionID string) bool {
	session, found := r.Get(sessionID)
	return found && session.Finalized()
}
