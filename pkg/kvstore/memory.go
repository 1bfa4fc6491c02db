package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is a process-local Store. Values round-trip through JSON so
// the backend behaves like Redis, serialization errors included.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get retrieves and unmarshals the value stored under key.
func (m *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("unmarshal value for %s: %w", key, err)
	}

	return true, nil
}

// Set marshals the provided value and stores it under key.
func (m *Memory) Set(_ context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	m.mu.Lock()
	m.data[key] = payload
	m.mu.Unlock()
	return nil
}

// Delete removes the key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// SetRaw stores a pre-encoded payload. Used by tests to simulate
// corrupted snapshots.
func (m *Memory) SetRaw(key string, payload []byte) {
	m.mu.Lock()
	m.data[key] = payload
	m.mu.Unlock()
}
