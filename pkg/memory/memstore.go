package memory

import "sync"

// MemStore is an in-memory Store for tests and ephemeral runs.
type MemStore struct {
	mu   sync.Mutex
	name string
	set  bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Last() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.set, nil
}

func (s *MemStore) SetLast(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
	s.set = true
	return nil
}
