package repository

import (
	"sync"
	"time"
)

// MockCache es un cache en memoria sin expiración, para desarrollo y tests.
type MockCache struct {
	mu   sync.Mutex
	Data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
	return nil
}
