package store

import (
	"bytes"
	"context"

	"github.com/zhangyunhao116/skipmap"

	"streamrun/pkg/commtypes"
)

// SkipmapKeyValueTable is an ordered key value table on a lock-free skipmap.
// It tolerates a harness goroutine reading while the task loop writes.
type SkipmapKeyValueTable struct {
	store *skipmap.FuncMap[[]byte, []byte]
	name  string
}

var _ = KeyValueTable(&SkipmapKeyValueTable{})

func NewSkipmapKeyValueTable(name string) *SkipmapKeyValueTable {
	return &SkipmapKeyValueTable{
		name: name,
		store: skipmap.NewFunc[[]byte, []byte](func(a, b []byte) bool {
			return bytes.Compare(a, b) < 0
		}),
	}
}

func (st *SkipmapKeyValueTable) Name() string {
	return st.name
}

func (st *SkipmapKeyValueTable) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	ret, exists := st.store.Load(key)
	return ret, exists, nil
}

func (st *SkipmapKeyValueTable) Put(ctx context.Context, key []byte, value []byte) error {
	if value == nil {
		st.store.Delete(key)
	} else {
		st.store.Store(key, value)
	}
	return nil
}

func (st *SkipmapKeyValueTable) Delete(ctx context.Context, key []byte) error {
	st.store.Delete(key)
	return nil
}

func (st *SkipmapKeyValueTable) ApproximateNumEntries() (uint64, error) {
	return uint64(st.store.Len()), nil
}

func (st *SkipmapKeyValueTable) Range(ctx context.Context, from []byte, to []byte,
	iterFunc func(key []byte, value []byte) error,
) error {
	var iterErr error
	st.store.Range(func(key []byte, value []byte) bool {
		if from != nil && bytes.Compare(key, from) < 0 {
			return true
		}
		if to != nil && bytes.Compare(key, to) >= 0 {
			return false
		}
		if err := iterFunc(key, value); err != nil {
			iterErr = err
			return false
		}
		return true
	})
	return iterErr
}

func (st *SkipmapKeyValueTable) Snapshot() commtypes.TableSnapshot {
	snap := commtypes.TableSnapshot{
		Name:   st.name,
		Kind:   uint8(TABLE_KEY_VALUE),
		Keys:   make([][]byte, 0, st.store.Len()),
		Values: make([][]byte, 0, st.store.Len()),
	}
	st.store.Range(func(key []byte, value []byte) bool {
		k := make([]byte, len(key))
		copy(k, key)
		v := make([]byte, len(value))
		copy(v, value)
		snap.Keys = append(snap.Keys, k)
		snap.Values = append(snap.Values, v)
		return true
	})
	return snap
}

func (st *SkipmapKeyValueTable) Restore(snap commtypes.TableSnapshot) error {
	st.store.Range(func(key []byte, value []byte) bool {
		st.store.Delete(key)
		return true
	})
	for i, k := range snap.Keys {
		st.store.Store(k, snap.Values[i])
	}
	return nil
}
