package entity

import "sync"

// Store owns the in-memory collection for one entity type. Records are kept newest first.
type Store[T any] struct {
	mu    sync.RWMutex
	idOf  func(T) string
	items []T
}

// NewStore builds a store seeded with a copy of seed.
func NewStore[T any](idOf func(T) string, seed []T) *Store[T] {
	s := &Store[T]{idOf: idOf}
	s.Reset(seed)
	return s
}

// List returns a snapshot of the collection in display order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get looks up a record by id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add prepends record to the collection.
func (s *Store[T]) Add(record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T{record}, s.items...)
}

// Replace swaps the record stored under id, keeping its position. Unknown ids are a no-op
// reported by the false result.
func (s *Store[T]) Replace(id string, record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items[i] = record
	return true
}

// Remove deletes the record stored under id and returns it. Unknown ids are a no-op.
func (s *Store[T]) Remove(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return removed, true
}

// Reset replaces the whole collection with a copy of seed.
func (s *Store[T]) Reset(seed []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(seed))
	copy(s.items, seed)
}

func (s *Store[T]) indexOf(id string) int {
	for i, item := range s.items {
		if s.idOf(item) == id {
			return i
		}
	}
	return -1
}
