package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// MemoryStore 进程内会话存储, 生命周期与进程一致
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (Data, bool, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()

	if !ok {
		return Data{}, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		// 惰性清理过期会话
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return Data{}, false, nil
	}
	return entry.data, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, sid string, data Data) error {
	s.mu.Lock()
	s.sessions[sid] = memoryEntry{
		data:      data,
		expiresAt: time.Now().Add(TTL),
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Touch(ctx context.Context, sid string) error {
	s.mu.Lock()
	if entry, ok := s.sessions[sid]; ok {
		entry.expiresAt = time.Now().Add(TTL)
		s.sessions[sid] = entry
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
