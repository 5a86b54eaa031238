package store

import (
	"context"

	"streamrun/pkg/commtypes"
)

// KeyValueTable is the per-task key value state exposed to operators. Keys
// and values are opaque bytes; implementations keep everything in memory and
// rely on checkpoint snapshots for durability.
type KeyValueTable interface {
	Name() string
	Get(ctx context.Context, key []byte) ([]byte, bool, error)
	// Put with a nil value deletes the key.
	Put(ctx context.Context, key []byte, value []byte) error
	Delete(ctx context.Context, key []byte) error
	// Range iterates keys in [from, to) in key order; nil bounds are open.
	Range(ctx context.Context, from []byte, to []byte, iterFunc func(key []byte, value []byte) error) error
	ApproximateNumEntries() (uint64, error)
	Snapshot() commtypes.TableSnapshot
	Restore(snap commtypes.TableSnapshot) error
}
