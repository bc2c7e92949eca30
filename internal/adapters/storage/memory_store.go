package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// InMemoryStore keeps documents as marshalled JSON so it behaves exactly
// like the durable backends, corrupt-document handling included.
type InMemoryStore struct {
	docs map[string][]byte

	mu sync.RWMutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		docs: make(map[string][]byte),
	}
}

func (s *InMemoryStore) Load(ctx context.Context, key string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.docs[key]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	return json.Unmarshal(raw, out)
}

func (s *InMemoryStore) Save(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = raw
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}

// SeedRaw stores raw document text without validating it. Used by tests to
// simulate corrupt records.
func (s *InMemoryStore) SeedRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = raw
}
