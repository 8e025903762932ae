package db

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing and local development.
type MockRedisClient struct {
	data    map[string]string // Key-value store
	mu      sync.RWMutex      // Mutex for thread-safe operations
	context context.Context
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// SetWithTTL stores a key-value pair; the mock does not expire entries.
func (m *MockRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return m.Set(key, value)
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// Keys returns the stored keys matching the glob pattern.
func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Del removes a key from the mock Redis.
func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	// Always return nil (indicating Redis is "reachable").
	return nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}
