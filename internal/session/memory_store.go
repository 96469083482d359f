package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store, used in tests and single-node setups
// where Redis is not available. Expiry is checked lazily on Get.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memEntry
}

type memEntry struct {
	data      Data
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memEntry)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*Data, error) {
	s.mu.RLock()
	e, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	d := e.data
	return &d, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, d *Data, ttl time.Duration) error {
	s.mu.Lock()
	s.sessions[sid] = memEntry{data: *d, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}

var _ Store = (*MemoryStore)(nil)
