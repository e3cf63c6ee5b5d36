package client

import "sync"

// Session holds the bearer token issued at login. It replaces the original
// client's implicit global token storage with an explicit, injectable value
// guarded by an accessor/mutator pair.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession() *Session {
	return &Session{}
}

// Token returns the current bearer token, or the empty string when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the bearer token for subsequent requests.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear discards the stored token, logging the session out.
func (s *Session) Clear() {
	s.SetToken("")
}

// Authenticated reports whether a token is present. Navigation to protected
// views is gated on this.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
