package store

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/google/btree"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/utils/syncutils"
)

type kvPair struct {
	key []byte
	val []byte
}

// BTreeKeyValueTable keeps entries ordered by key, which makes snapshots
// deterministic and Range cheap.
type BTreeKeyValueTable struct {
	mux   syncutils.Mutex
	store *btree.BTreeG[kvPair]
	name  string
}

var _ = KeyValueTable(&BTreeKeyValueTable{})

func NewBTreeKeyValueTable(name string) *BTreeKeyValueTable {
	return &BTreeKeyValueTable{
		name: name,
		store: btree.NewG(2, btree.LessFunc[kvPair](func(a, b kvPair) bool {
			return bytes.Compare(a.key, b.key) < 0
		})),
	}
}

func (st *BTreeKeyValueTable) Name() string {
	return st.name
}

func (st *BTreeKeyValueTable) Get(ctx context.Context, key []byte) ([]byte, bool, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	ret, exists := st.store.Get(kvPair{key: key})
	return ret.val, exists, nil
}

func (st *BTreeKeyValueTable) Put(ctx context.Context, key []byte, value []byte) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	if value == nil {
		st.store.Delete(kvPair{key: key})
	} else {
		st.store.ReplaceOrInsert(kvPair{key: key, val: value})
	}
	return nil
}

func (st *BTreeKeyValueTable) Delete(ctx context.Context, key []byte) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.store.Delete(kvPair{key: key})
	return nil
}

func (st *BTreeKeyValueTable) ApproximateNumEntries() (uint64, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	return uint64(st.store.Len()), nil
}

func (st *BTreeKeyValueTable) Range(ctx context.Context, from []byte, to []byte,
	iterFunc func(key []byte, value []byte) error,
) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	iter := btree.ItemIteratorG[kvPair](func(kv kvPair) bool {
		err := iterFunc(kv.key, kv.val)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[Error] Range: %v\n", err)
			return false
		}
		return true
	})
	if from == nil && to == nil {
		st.store.Ascend(iter)
	} else if from == nil {
		st.store.AscendLessThan(kvPair{key: to}, iter)
	} else if to == nil {
		st.store.AscendGreaterOrEqual(kvPair{key: from}, iter)
	} else {
		st.store.AscendRange(kvPair{key: from}, kvPair{key: to}, iter)
	}
	return nil
}

func (st *BTreeKeyValueTable) Snapshot() commtypes.TableSnapshot {
	st.mux.Lock()
	defer st.mux.Unlock()
	snap := commtypes.TableSnapshot{
		Name:   st.name,
		Kind:   uint8(TABLE_KEY_VALUE),
		Keys:   make([][]byte, 0, st.store.Len()),
		Values: make([][]byte, 0, st.store.Len()),
	}
	st.store.Ascend(btree.ItemIteratorG[kvPair](func(kv kvPair) bool {
		k := make([]byte, len(kv.key))
		copy(k, kv.key)
		v := make([]byte, len(kv.val))
		copy(v, kv.val)
		snap.Keys = append(snap.Keys, k)
		snap.Values = append(snap.Values, v)
		return true
	}))
	return snap
}

func (st *BTreeKeyValueTable) Restore(snap commtypes.TableSnapshot) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	st.store.Clear(false)
	for i, k := range snap.Keys {
		st.store.ReplaceOrInsert(kvPair{key: k, val: snap.Values[i]})
	}
	return nil
}
