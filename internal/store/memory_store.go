package store

import "sync"

// MemoryStore is an in-process Store used by tests and throwaway local runs.
// It holds collections in a plain map; nothing survives the process.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]byte
	flags       map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]byte),
		flags:       make(map[string]bool),
	}
}

func (s *MemoryStore) GetCollection(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collections[name], nil
}

func (s *MemoryStore) SetCollection(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = data
	return nil
}

func (s *MemoryStore) GetFlag(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[name], nil
}

func (s *MemoryStore) SetFlag(name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[name] = value
	return nil
}
