package idmanager

import "sync"

// Allocator is the call contract of an id source.
type Allocator interface {
	NewID() string
	Release(id string)
	ScopedID(key string) string
}

// Synchronized serialises access to a Manager shared across goroutines.
type Synchronized struct {
	mu      sync.Mutex
	manager *Manager
}

// NewSynchronized wraps manager with a mutex.
func NewSynchronized(manager *Manager) *Synchronized {
	return &Synchronized{manager: manager}
}

func (s *Synchronized) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.NewID()
}

func (s *Synchronized) Release(id string) {
	s.mu.Lock()
	s.manager.Release(id)
	s.mu.Unlock()
}

func (s *Synchronized) ScopedID(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.ScopedID(key)
}

func (s *Synchronized) NextScopedID(key string, counted bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.NextScopedID(key, counted)
}

// Close closes the underlying manager.
func (s *Synchronized) Close() {
	s.mu.Lock()
	s.manager.Close()
	s.mu.Unlock()
}

func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manager.Stats()
}

var (
	_ Allocator = (*Manager)(nil)
	_ Allocator = (*Synchronized)(nil)
)
