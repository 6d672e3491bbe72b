package handlers

import (
	"context"
	"location-viewer/internal/platform/metrics"
	"location-viewer/internal/services"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const SessionCookie = "viewer_session"

type sessionEntry struct {
	viewer   *services.Viewer
	lastSeen time.Time
}

// SessionRegistry keeps the viewer of each open page in memory.
// Sessions idle longer than the idle timeout are dropped; nothing is persisted.
// With a positive limit, adding to a full registry evicts the least recently
// used session.
type SessionRegistry struct {
	mu       sync.Mutex
	idle     time.Duration
	limit    int
	now      func() time.Time
	sessions map[string]*sessionEntry
}

func NewSessionRegistry(idle time.Duration, limit int) *SessionRegistry {
	return &SessionRegistry{
		idle:     idle,
		limit:    limit,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Add stores v under a fresh session id and returns the id.
func (s *SessionRegistry) Add(v *services.Viewer) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	for s.limit > 0 && len(s.sessions) >= s.limit {
		s.evictOldestLocked()
	}
	s.sessions[id] = &sessionEntry{viewer: v, lastSeen: s.now()}
	metrics.SessionsActive.Set(float64(len(s.sessions)))
	return id
}

// Sweep drops every expired session.
func (s *SessionRegistry) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	metrics.SessionsActive.Set(float64(len(s.sessions)))
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *SessionRegistry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *SessionRegistry) Get(id string) (*services.Viewer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expiredLocked(e) {
		delete(s.sessions, id)
		metrics.SessionsActive.Set(float64(len(s.sessions)))
		return nil, false
	}

	e.lastSeen = s.now()
	return e.viewer, true
}

func (s *SessionRegistry) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	metrics.SessionsActive.Set(float64(len(s.sessions)))
}

func (s *SessionRegistry) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionRegistry) expiredLocked(e *sessionEntry) bool {
	return s.idle > 0 && s.now().Sub(e.lastSeen) > s.idle
}

func (s *SessionRegistry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}

func (s *SessionRegistry) sweepLocked() {
	for id, e := range s.sessions {
		if s.expiredLocked(e) {
			delete(s.sessions, id)
		}
	}
}

// lookup resolves the session of the request from its cookie.
func (s *SessionRegistry) lookup(r *http.Request) (string, *services.Viewer, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", nil, false
	}
	v, ok := s.Get(c.Value)
	return c.Value, v, ok
}
