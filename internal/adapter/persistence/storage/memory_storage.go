package storage

import (
	"context"
	"sort"
	"sync"

	"vitrine_industrial/internal/usecase/interfaces"
)

// MemoryStorage is the process-local substrate, the server-side stand-in for
// browser local storage. The mutex only keeps the map itself consistent; two
// read-modify-write sequences on the same key still race and the last write wins.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ interfaces.IStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryStorage) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Keys lists the stored keys in lexical order.
func (s *MemoryStorage) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
