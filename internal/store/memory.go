// Package store keeps keyed records in memory.
package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps *T values mapped by a comparable key obtained from
// keySelector. It is safe for concurrent use.
type MemoryStore[K comparable, T any] struct {
	mu          sync.RWMutex
	records     map[K]*T
	keySelector func(*T) K
}

// NewMemoryStore creates a new MemoryStore.
func NewMemoryStore[K comparable, T any](keySelector func(*T) K) *MemoryStore[K, T] {
	return &MemoryStore[K, T]{
		records:     make(map[K]*T),
		keySelector: keySelector,
	}
}

// Save stores or overwrites a record.
func (s *MemoryStore[K, T]) Save(_ context.Context, v *T) error {
	if v == nil {
		return nil
	}
	key := s.keySelector(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = v
	return nil
}

// Load returns a record by key, or nil when absent.
func (s *MemoryStore[K, T]) Load(_ context.Context, key K) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[key], nil
}

// Delete removes a record and reports whether it existed.
func (s *MemoryStore[K, T]) Delete(_ context.Context, key K) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[key]
	delete(s.records, key)
	return ok, nil
}

// List returns all stored records. When less is non-nil the result is sorted
// with it.
func (s *MemoryStore[K, T]) List(_ context.Context, less func(a, b *T) bool) ([]*T, error) {
	s.mu.RLock()
	out := make([]*T, 0, len(s.records))
	for _, v := range s.records {
		out = append(out, v)
	}
	s.mu.RUnlock()
	if less != nil {
		sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out, nil
}

// Len returns the number of records.
func (s *MemoryStore[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
