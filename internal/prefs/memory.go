package prefs

import (
	"context"
	"sync"
)

// NewMemory creates a new Memory instance.
func NewMemory() *Memory {
	return &Memory{
		mutex:  new(sync.RWMutex),
		values: make(map[string][]byte),
	}
}

// Memory is a process-local Store. Values do not survive the process.
type Memory struct {
	mutex  *sync.RWMutex
	values map[string][]byte
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	val, ok := m.values[key]
	if !ok {
		return nil, ErrKeyDNE
	}
	return append([]byte(nil), val...), nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mutex.Lock()
	delete(m.values, key)
	m.mutex.Unlock()
	return nil
}

// Ping implements Store.
func (m *Memory) Ping(context.Context) error { return nil }

// Close implements Store.
func (m *Memory) Close() error { return nil }
