package newsletter

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps subscribers in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	subscribers map[string]Subscriber
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subscribers: make(map[string]Subscriber)}
}

func (m *MemoryStore) Add(_ context.Context, s Subscriber) (bool, error) {
	key := Normalize(s.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.subscribers[key]; exists {
		return false, nil
	}
	s.Email = key
	m.subscribers[key] = s
	return true, nil
}

func (m *MemoryStore) List(_ context.Context) ([]Subscriber, error) {
	m.mu.RLock()
	out := make([]Subscriber, 0, len(m.subscribers))
	for _, s := range m.subscribers {
		out = append(out, s)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *MemoryStore) Close() error {
	return nil
}
