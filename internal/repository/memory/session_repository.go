package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"echosee-be/pkg/store"
)

// SessionRepository keeps live chat sessions in process memory. Sessions are
// never persisted; the TTL disposes of widgets that were closed without
// calling delete.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Save stores the session and refreshes its TTL.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
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
