package listkit

import "sync"

/* ===============================
   Collection store
=================================*/

// Store owns the authoritative in-memory collection a view reads from.
// Readers get copies; only Reset/Add/Patch/Remove write, so a failed
// mutation upstream leaves the collection untouched.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) uint
}

func NewStore[T any](id func(T) uint) *Store[T] {
	return &Store[T]{id: id}
}

// Reset replaces the whole collection (initial fetch / reload).
func (s *Store[T]) Reset(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(items))
	copy(s.items, items)
}

// Snapshot returns a copy of the collection for filtering/projection.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) Get(id uint) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Patch applies fn to the record with the given id, in place.
// Reports whether a record was found.
func (s *Store[T]) Patch(id uint, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			fn(&s.items[i])
			return true
		}
	}
	return false
}

// Remove drops the record with the given id from the collection.
func (s *Store[T]) Remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
