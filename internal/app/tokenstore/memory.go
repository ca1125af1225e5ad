package tokenstore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is used when redis is not configured. Expired entries are
// dropped lazily on lookup.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[tokenID] = time.Now().Add(ttl)

	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}

	if time.Now().After(deadline) {
		delete(s.revoked, tokenID)
		return false, nil
	}

	return true, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
