package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore держит все коллекции в одном JSON-файле вида
// {"equipment": [...], "teams": [...], ...} и переписывает его целиком
// на каждую запись. Файловый аналог localStorage.
type FileStore struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог хранилища: %w", err)
	}

	s := &FileStore{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("не удалось прочитать файл хранилища: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("файл хранилища поврежден: %w", err)
		}
	}
	return s, nil
}

func (s *FileStore) GetAll(_ context.Context, collection string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.data[collection]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *FileStore) SetAll(_ context.Context, collection string, document []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := make(json.RawMessage, len(document))
	copy(doc, document)
	s.data[collection] = doc

	return s.flushLocked()
}

// flushLocked пишет во временный файл и атомарно подменяет основной,
// чтобы упавшая запись не оставила наполовину записанный документ.
func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
