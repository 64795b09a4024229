// Package state provides small in-process reactive containers. Each store
// holds one value, applies updates atomically, and notifies subscribers on
// every change. Stores are injectable (not ambient singletons) and scoped to
// the process lifetime.
package state

import "sync"

// Listener receives the new value after a store update.
type Listener[T any] func(T)

// Store is a mutex-protected value with change notification. Reads are safe
// from any goroutine; listeners are invoked synchronously inside Set/Update,
// so they must not call back into the store.
type Store[T any] struct {
	mu        sync.RWMutex
	value     T
	nextID    int
	listeners map[int]Listener[T]
}

func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{
		value:     initial,
		listeners: make(map[int]Listener[T]),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies all subscribers.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Update applies fn to the current value under the lock and notifies
// subscribers with the result.
func (s *Store[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	listeners := s.snapshotLocked()
	s.mu.Unlock()

	for _, l := range listeners {
		l(v)
	}
	return v
}

// Subscribe registers a listener for future changes. The returned function
// removes it.
func (s *Store[T]) Subscribe(fn Listener[T]) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store[T]) snapshotLocked() []Listener[T] {
	out := make([]Listener[T], 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l)
	}
	return out
}
