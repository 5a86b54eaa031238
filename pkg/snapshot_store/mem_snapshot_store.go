package snapshot_store

import (
	"context"
	"fmt"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/utils/syncutils"
)

// MemorySnapshotStore keeps snapshots in process memory. Used by tests and
// the demo when no external backend is configured.
type MemorySnapshotStore struct {
	mux    syncutils.RWMutex
	snaps  map[string][]byte
	latest map[string]uint32
}

var _ = SnapshotStore(&MemorySnapshotStore{})

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		snaps:  make(map[string][]byte),
		latest: make(map[string]uint32),
	}
}

func snapKey(taskID string, epoch uint32) string {
	return fmt.Sprintf("%s_%#x", taskID, epoch)
}

func (ms *MemorySnapshotStore) StoreSnapshot(ctx context.Context, taskID string, epoch uint32, payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	ms.mux.Lock()
	defer ms.mux.Unlock()
	ms.snaps[snapKey(taskID, epoch)] = cp
	if cur, ok := ms.latest[taskID]; !ok || epoch > cur {
		ms.latest[taskID] = epoch
	}
	return nil
}

func (ms *MemorySnapshotStore) GetSnapshot(ctx context.Context, taskID string, epoch uint32) ([]byte, error) {
	ms.mux.RLock()
	defer ms.mux.RUnlock()
	payload, ok := ms.snaps[snapKey(taskID, epoch)]
	if !ok {
		return nil, common_errors.ErrSnapshotNotFound
	}
	return payload, nil
}

func (ms *MemorySnapshotStore) LatestEpoch(ctx context.Context, taskID string) (uint32, error) {
	ms.mux.RLock()
	defer ms.mux.RUnlock()
	epoch, ok := ms.latest[taskID]
	if !ok {
		return 0, common_errors.ErrSnapshotNotFound
	}
	return epoch, nil
}
