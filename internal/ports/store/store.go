package store

import (
	"context"

	"manshurat/internal/core/store"
)

// UpdateFunc derives the next snapshot from the current one. Returning an
// error discards the result.
type UpdateFunc func(s *store.Snapshot) (*store.Snapshot, error)

// SnapshotStore holds the current snapshot and serializes updates to it.
type SnapshotStore interface {
	Current(ctx context.Context) *store.Snapshot
	Update(ctx context.Context, fn UpdateFunc) (*store.Snapshot, error)
}
