package storage

import (
	"context"
	"sync"
)

// Memory is a Storage kept entirely in process memory. Used for tests and
// for session slots that should not outlive the process.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Memory) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

func (s *Memory) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	return nil
}
