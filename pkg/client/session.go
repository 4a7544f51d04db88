package client

import "sync"

// Session holds the bearer token between requests. Persisting it (browser
// storage, keychain, file) is the caller's concern; the client only reads
// and writes through this interface.
type Session interface {
	Token() string
	SetToken(token string)
}

// MemorySession is the default, process-local Session.
type MemorySession struct {
	mu    sync.Mutex
	token string
}

func NewMemorySession() *MemorySession {
	return &MemorySession{}
}

func (s *MemorySession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemorySession) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
