// Package session owns the session-token and theme-preference cache and the
// manager that keeps its three token mirrors (store, in-memory auth state,
// browser cookie) consistent.
package session

import (
	"context"
	"sync"
)

// Store persists the session token and theme preference under configurable
// keys. An absent value reads back as "" without error; tokens are stored
// opaque, with no shape validation.
type Store interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error

	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// MemoryStore is the fallback when no Redis is configured. It never fails,
// so a missing backend degrades to per-process caching instead of errors.
type MemoryStore struct {
	mu       sync.RWMutex
	tokenKey string
	themeKey string
	values   map[string]string
}

func NewMemoryStore(tokenKey, themeKey string) *MemoryStore {
	return &MemoryStore{
		tokenKey: tokenKey,
		themeKey: themeKey,
		values:   make(map[string]string),
	}
}

func (s *MemoryStore) GetToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[s.tokenKey], nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[s.tokenKey] = token
	return nil
}

func (s *MemoryStore) ClearToken(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, s.tokenKey)
	return nil
}

func (s *MemoryStore) GetTheme(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[s.themeKey], nil
}

func (s *MemoryStore) SetTheme(_ context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[s.themeKey] = theme
	return nil
}
