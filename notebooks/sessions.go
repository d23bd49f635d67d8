package notebooks

import "sync"

// Sessions is the per-process registry of notebook sessions, one per
// open document. Sessions never share environments or caches.
type Sessions struct {
	new NewSession

	mu sync.Mutex
	m  map[string]*Session
}

func (Module) Sessions(
	newSession NewSession,
) *Sessions {
	return &Sessions{
		new: newSession,
		m:   make(map[string]*Session),
	}
}

func (s *Sessions) Get(name string, buffer Buffer, sink Sink) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.m[name]
	if !ok {
		session = s.new(name, buffer, sink)
		s.m[name] = session
	}
	return session
}

// Drop disables and forgets the session for a closed document.
func (s *Sessions) Drop(name string) {
	s.mu.Lock()
	session, ok := s.m[name]
	delete(s.m, name)
	s.mu.Unlock()
	if ok {
		session.Disable()
	}
}
