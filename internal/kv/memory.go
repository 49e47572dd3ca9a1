package kv

import (
	"context"
	"fmt"
	"sync"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// Memory is an in-process Store. It is the zero-config default backend and
// the injectable test double for every store test in this repo.
//
// MaxBytes, when > 0, bounds the total size of stored values so tests can
// exercise quota-exceeded behaviour.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]string
	maxBytes int
}

// NewMemory returns an empty unbounded in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// NewMemoryWithLimit returns an in-memory store that rejects writes once the
// total stored bytes would exceed maxBytes.
func NewMemoryWithLimit(maxBytes int) *Memory {
	return &Memory{data: make(map[string]string), maxBytes: maxBytes}
}

// Get returns the value stored under key, or ok=false when absent.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set overwrites the value stored under key.
// Returns a domain.ErrStorageQuota-wrapped error when the size limit would
// be exceeded; the previous value is left intact in that case.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxBytes > 0 {
		total := len(value)
		for k, v := range m.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > m.maxBytes {
			return fmt.Errorf("kv.Memory.Set %q: %w", key, domain.ErrStorageQuota)
		}
	}

	m.data[key] = value
	return nil
}

var _ Store = (*Memory)(nil)
