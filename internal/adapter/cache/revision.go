package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRevisions keeps the newest preview revision per résumé in process.
type MemoryRevisions struct {
	mu     sync.Mutex
	latest map[uuid.UUID]int64
}

func NewMemoryRevisions() *MemoryRevisions {
	return &MemoryRevisions{latest: make(map[uuid.UUID]int64)}
}

func (m *MemoryRevisions) Claim(_ context.Context, resumeID uuid.UUID, rev int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.latest[resumeID]; ok && cur >= rev {
		return false, nil
	}
	m.latest[resumeID] = rev
	return true, nil
}

func (m *MemoryRevisions) IsLatest(_ context.Context, resumeID uuid.UUID, rev int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.latest[resumeID]
	return !ok || rev >= cur, nil
}
