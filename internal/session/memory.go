package session

import (
	"context" // Context for interface parity
	"sync"    // Mutex for the maps
	"time"    // Expiry bookkeeping
)

// MemoryStore is an in-process session store for development and tests.
// Entries expire lazily: an expired binding is dropped on the next lookup.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	users   map[string]memoryEntry // token -> user binding
	flashes map[string]string      // token -> pending flash
}

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// NewMemoryStore returns an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		users:   make(map[string]memoryEntry),
		flashes: make(map[string]string),
	}
}

// Bind associates the token with a user id for the store's TTL
func (s *MemoryStore) Bind(_ context.Context, token string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

// UserID resolves the token to a user id, refreshing the expiry on hit
func (s *MemoryStore) UserID(_ context.Context, token string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.users[token]
	if !ok {
		return 0, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.users, token) // Lazy expiry
		return 0, false, nil
	}
	entry.expiresAt = time.Now().Add(s.ttl) // Sliding expiry
	s.users[token] = entry
	return entry.userID, true, nil
}

// Clear drops the token's user binding
func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, token)
	return nil
}

// SetFlash stores the next-request status message
func (s *MemoryStore) SetFlash(_ context.Context, token, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[token] = msg
	return nil
}

// PopFlash reads and deletes the pending message
func (s *MemoryStore) PopFlash(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flashes[token]
	delete(s.flashes, token)
	return msg, nil
}
