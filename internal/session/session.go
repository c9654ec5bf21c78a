// Package session scopes the process's mutable caches — the access token and
// the accumulated recording collection — to an explicit object instead of
// ambient globals, so concurrent dashboard sessions and tests stay isolated.
//
// The token is held for the session lifetime without an expiry check; only a
// forced refresh replaces it before the process exits.
package session

import (
	"sync"

	"golang.org/x/oauth2"

	"github.com/danikagupta/zoomsize/internal/collector"
)

// Session holds the per-session cached token and recording collection.
type Session struct {
	mu         sync.RWMutex
	token      *oauth2.Token
	recordings collector.Collection
	loaded     bool
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Token returns the cached access token, if any.
func (s *Session) Token() (*oauth2.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != nil
}

// SetToken replaces the cached access token.
func (s *Session) SetToken(t *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = t
}

// Recordings returns the cached collection. The second return value
// distinguishes "never loaded" from an empty collection.
func (s *Session) Recordings() (collector.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordings, s.loaded
}

// SetRecordings unconditionally replaces the cached collection.
func (s *Session) SetRecordings(c collector.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordings = c
	s.loaded = true
}
