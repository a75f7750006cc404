package auth

import (
	"context"
	"sync"
)

// TokenStore holds the set of live admin tokens.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	// Issue records token as live.
	Issue(ctx context.Context, token string) error
	// Validate reports whether token is live.
	Validate(ctx context.Context, token string) bool
}

// MemoryTokenStore is a process-local TokenStore. Tokens never expire and are
// lost when the process exits.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewMemoryTokenStore returns an empty MemoryTokenStore.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]struct{})}
}

func (s *MemoryTokenStore) Issue(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
	return nil
}

func (s *MemoryTokenStore) Validate(_ context.Context, token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}
