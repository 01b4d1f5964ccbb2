package memory

import (
	"context"
	"sync"

	"manshurat/internal/core/store"
	storePort "manshurat/internal/ports/store"
)

// SnapshotStore is the single owner of the current snapshot. Updates are
// applied one at a time; readers always see a complete snapshot.
type SnapshotStore struct {
	mu      sync.RWMutex
	current *store.Snapshot
}

var _ storePort.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore starts from initial, or from an empty snapshot when nil.
func NewSnapshotStore(initial *store.Snapshot) *SnapshotStore {
	if initial == nil {
		initial = &store.Snapshot{}
	}
	return &SnapshotStore{current: initial}
}

func (m *SnapshotStore) Current(_ context.Context) *store.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update swaps in the snapshot returned by fn. When fn fails the current
// snapshot is kept.
func (m *SnapshotStore) Update(ctx context.Context, fn storePort.UpdateFunc) (*store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := fn(m.current)
	if err != nil {
		return m.current, err
	}
	if next != nil {
		m.current = next
	}
	return m.current, nil
}
