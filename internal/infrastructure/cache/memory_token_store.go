package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

// memoryTokenStore favors clarity over performance; a handful of live
// sessions never needs more.
type memoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{tokens: make(map[string]time.Time)}
}

func (s *memoryTokenStore) Store(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = time.Now().Add(ttl)
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.tokens[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.tokens, key)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.tokens, key)
	}
	return nil
}

func (s *memoryTokenStore) RevokeMatching(_ context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.tokens {
		if ok, _ := path.Match(pattern, key); ok {
			delete(s.tokens, key)
		}
	}
	return nil
}
