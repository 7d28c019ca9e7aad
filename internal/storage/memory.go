package storage

import (
	"context"
	"sync"
)

// MemoryMedium keeps everything in a process-local map. Used by tests and
// usable as a throwaway dev backend.
type MemoryMedium struct {
	mu    sync.RWMutex
	items map[string][]byte

	// FailWrites makes every SetItem return ErrUnavailable, for tests that
	// exercise failure isolation.
	FailWrites bool
	// FailReads does the same for GetItem.
	FailReads bool
}

func NewMemory() *MemoryMedium {
	return &MemoryMedium{items: make(map[string][]byte)}
}

func (m *MemoryMedium) GetItem(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads {
		return nil, ErrUnavailable
	}
	value, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryMedium) SetItem(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[key] = stored
	return nil
}

func (m *MemoryMedium) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	delete(m.items, key)
	return nil
}
