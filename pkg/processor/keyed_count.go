package processor

import (
	"context"
	"encoding/binary"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
	"streamrun/pkg/store"
)

const COUNTS_TABLE = "counts"

// KeyedCountOperator maintains a per-key count in the counts table and emits
// the updated count downstream for every consumed row. Counts are accumulated
// in memory between barriers and flushed into the table on checkpoint, so the
// snapshot cut sees exactly the pre-barrier totals.
type KeyedCountOperator struct {
	operator.BaseOperator
	name  string
	dirty map[string]uint64
}

func NewKeyedCountOperator(name string) *KeyedCountOperator {
	return &KeyedCountOperator{name: name, dirty: make(map[string]uint64)}
}

func (o *KeyedCountOperator) Name() string { return o.name }

func (o *KeyedCountOperator) Tables() map[string]store.TableConfig {
	return map[string]store.TableConfig{
		COUNTS_TABLE: {Name: COUNTS_TABLE, Kind: store.TABLE_KEY_VALUE},
	}
}

func encodeCount(c uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, c)
	return buf
}

func DecodeCount(v []byte) uint64 {
	if len(v) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(v)
}

func (o *KeyedCountOperator) currentCount(ctx context.Context, tctx *exec_context.TaskContext, key []byte) (uint64, error) {
	if c, ok := o.dirty[string(key)]; ok {
		return c, nil
	}
	kv, err := tctx.TableMgr().GetKeyValueTable(COUNTS_TABLE)
	if err != nil {
		return 0, err
	}
	v, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	return DecodeCount(v), nil
}

func (o *KeyedCountOperator) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	n := tctx.NumOutPartitions()
	parts := make([]*commtypes.RowBatch, n)
	for _, r := range batch.Rows {
		c, err := o.currentCount(ctx, tctx, r.Key)
		if err != nil {
			return err
		}
		c++
		o.dirty[string(r.Key)] = c
		idx := tctx.PartitionForKey(r.Key)
		if parts[idx] == nil {
			parts[idx] = &commtypes.RowBatch{}
		}
		parts[idx].Rows = append(parts[idx].Rows, commtypes.Row{Key: r.Key, Value: encodeCount(c), TsMs: r.TsMs})
	}
	for idx, pb := range parts {
		if pb == nil {
			continue
		}
		if err := tctx.SendToPartition(ctx, idx, commtypes.DataMessage(pb)); err != nil {
			return err
		}
	}
	return nil
}

// HandleCheckpoint flushes the in-memory deltas so the table snapshot carries
// every count up to the barrier.
func (o *KeyedCountOperator) HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error {
	kv, err := tctx.TableMgr().GetKeyValueTable(COUNTS_TABLE)
	if err != nil {
		return err
	}
	ctx := context.Background()
	for k, c := range o.dirty {
		if err := kv.Put(ctx, []byte(k), encodeCount(c)); err != nil {
			return err
		}
	}
	o.dirty = make(map[string]uint64)
	return nil
}

var _ = operator.StreamOperator(&KeyedCountOperator{})
