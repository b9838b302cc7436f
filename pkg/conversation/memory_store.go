package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps session contexts in-process. Entries expire after an
// hour of inactivity so abandoned sessions do not accumulate. Stored
// contexts are immutable snapshots: Append replaces the entry with a fresh
// copy and Load hands out copies, so concurrent requests on one session
// never share a mutable Context.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x, found := s.cache.Get(sessionID); found {
		return Restore(x.(*Context).Exchanges()), nil
	}
	return NewContext(), nil
}

func (s *MemoryStore) Append(_ context.Context, sessionID, user, assistant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := NewContext()
	if x, found := s.cache.Get(sessionID); found {
		c = Restore(x.(*Context).Exchanges())
	}
	c.Append(user, assistant)
	s.cache.Set(sessionID, c, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Delete(sessionID)
	return nil
}
