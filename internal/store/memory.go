package store

import (
	"context"
	"sync"
)

// MemoryStore — хранилище в памяти процесса. Используется в тестах
// и как драйвер "memory".
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) GetAll(_ context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *MemoryStore) SetAll(_ context.Context, collection string, document []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make([]byte, len(document))
	copy(doc, document)
	s.data[collection] = doc
	return nil
}
