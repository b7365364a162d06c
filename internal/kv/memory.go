package kv

import "sync"

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

// NewMemoryStore returns a store seeded with a copy of initial.
func NewMemoryStore(initial map[string]string) *MemoryStore {
	values := make(map[string]string, len(initial))
	for key, value := range initial {
		values[key] = value
	}
	return &MemoryStore{values: values}
}

// Get returns the value for key.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	if err := ValidateKey(key); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value for key.
func (s *MemoryStore) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

// SetMany stores all entries.
func (s *MemoryStore) SetMany(entries map[string]string) error {
	for key := range entries {
		if err := ValidateKey(key); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string, len(entries))
	}
	for key, value := range entries {
		s.values[key] = value
	}
	s.writes++
	return nil
}

// Writes returns how many Set/SetMany calls have succeeded.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
