package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the single-process fallback used when no Redis address is
// configured, and by tests. Expiry is checked lazily on access.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
}

type memorySession struct {
	identity Identity
	viewed   map[int64]struct{}
	expires  time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession)}
}

func (s *MemoryStore) get(sid string) *memorySession {
	sess, ok := s.sessions[sid]
	if !ok {
		return nil
	}
	if time.Now().After(sess.expires) {
		delete(s.sessions, sid)
		return nil
	}
	return sess
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	if sess == nil {
		return nil, nil
	}
	identity := sess.identity
	return &identity, nil
}

func (s *MemoryStore) Set(ctx context.Context, sid string, identity *Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	if sess == nil {
		sess = &memorySession{viewed: make(map[int64]struct{})}
		s.sessions[sid] = sess
	}
	sess.identity = *identity
	sess.expires = time.Now().Add(ttl)
	return nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func (s *MemoryStore) MarkViewed(ctx context.Context, sid string, videoId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	if sess == nil {
		return false, nil
	}
	if _, ok := sess.viewed[videoId]; ok {
		return false, nil
	}
	sess.viewed[videoId] = struct{}{}
	return true, nil
}

func (s *MemoryStore) HasViewed(ctx context.Context, sid string, videoId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	if sess == nil {
		return false, nil
	}
	_, ok := sess.viewed[videoId]
	return ok, nil
}
