package testutils

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemoryStore is an in-memory object store used in place of a real
// S3-compatible backend during tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// FailUpload, when set, makes every Upload call fail with this error.
	FailUpload error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	if m.FailUpload != nil {
		return m.FailUpload
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.objects, key)
	}
	return nil
}

func (m *MemoryStore) PublicURL(key string) string {
	return "http://store.test/" + key
}

func (m *MemoryStore) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return fmt.Sprintf("http://store.test/%s?signed=1", key), nil
}

// Has reports whether an object with the given key exists.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Count returns the number of stored objects.
func (m *MemoryStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Keys returns all stored object keys.
func (m *MemoryStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for key := range m.objects {
		keys = append(keys, key)
	}
	return keys
}
