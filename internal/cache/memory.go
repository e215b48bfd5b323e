package cache

import (
	"context"
	"sync"
)

// Memory is a process-local SeriesCache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Get(_ context.Context, productID string) (Entry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[productID]
	return e, ok, nil
}

func (m *Memory) Put(_ context.Context, productID string, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[productID] = e
	return nil
}

func (m *Memory) Delete(_ context.Context, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, productID)
	return nil
}

// Len returns the number of cached products.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
