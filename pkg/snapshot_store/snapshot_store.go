package snapshot_store

import (
	"context"
)

// SnapshotStore persists one opaque snapshot payload per task per checkpoint
// epoch. The owning task is the only writer for its taskID; recovery reads
// happen after the task is gone.
type SnapshotStore interface {
	StoreSnapshot(ctx context.Context, taskID string, epoch uint32, payload []byte) error
	// GetSnapshot returns common_errors.ErrSnapshotNotFound when no snapshot
	// exists for the epoch.
	GetSnapshot(ctx context.Context, taskID string, epoch uint32) ([]byte, error)
	// LatestEpoch returns the highest epoch with a stored snapshot for the
	// task; common_errors.ErrSnapshotNotFound when there is none.
	LatestEpoch(ctx context.Context, taskID string) (uint32, error)
}
