package session

import "sync"

// Registry maps a room ID to at most one live session. Creation and removal
// can race with lookups from other connections, so the map is guarded.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Create registers a session for a room. It fails with ErrGameAlreadyExists
// when the room already has one, making double-starts a no-op.
func (r *Registry) Create(roomID string, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[roomID]; exists {
		return ErrGameAlreadyExists
	}
	r.sessions[roomID] = s
	return nil
}

// Find returns the room's session, or false when there is none
func (r *Registry) Find(roomID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[roomID]
	return s, ok
}

// Remove drops the room's session. The session itself calls this exactly
// once, on termination.
func (r *Registry) Remove(roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, roomID)
}

// Len reports how many sessions are live
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
