package processor

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/store"
)

func newTestTctx(t *testing.T, tables map[string]store.TableConfig, numOut int) (*exec_context.TaskContext, []chan commtypes.StreamMessage) {
	t.Helper()
	tm, err := store.NewTableManager("test-0", tables, nil, commtypes.MSGP)
	require.NoError(t, err)
	outs := make([]chan commtypes.StreamMessage, numOut)
	outputs := make([]chan<- commtypes.StreamMessage, numOut)
	for i := range outs {
		outs[i] = make(chan commtypes.StreamMessage, 64)
		outputs[i] = outs[i]
	}
	tctx := exec_context.NewTaskContext(exec_context.TaskContextArgs{
		Info:      commtypes.TaskInfo{OperatorID: "test", SubtaskIdx: 0, Parallelism: 1},
		Outputs:   outputs,
		TableMgr:  tm,
		NumInputs: 1,
	})
	return tctx, outs
}

func drain(ch chan commtypes.StreamMessage) []commtypes.Row {
	var rows []commtypes.Row
	for {
		select {
		case m := <-ch:
			if m.Batch != nil {
				rows = append(rows, m.Batch.Rows...)
			}
		default:
			return rows
		}
	}
}

func batchOf(kvs ...string) *commtypes.RowBatch {
	b := &commtypes.RowBatch{}
	for i := 0; i+1 < len(kvs); i += 2 {
		b.Rows = append(b.Rows, commtypes.Row{Key: []byte(kvs[i]), Value: []byte(kvs[i+1])})
	}
	return b
}

func TestMapOperatorTransformsAndForwards(t *testing.T) {
	op := NewMapOperator("upper", MapperFunc(func(r commtypes.Row) (commtypes.Row, error) {
		return commtypes.Row{Key: r.Key, Value: bytes.ToUpper(r.Value), TsMs: r.TsMs}, nil
	}))
	tctx, outs := newTestTctx(t, nil, 1)
	err := op.ProcessBatch(context.Background(), 0, 1, batchOf("a", "x", "b", "y"), tctx)
	require.NoError(t, err)
	rows := drain(outs[0])
	require.Len(t, rows, 2)
	require.Equal(t, "X", string(rows[0].Value))
	require.Equal(t, "Y", string(rows[1].Value))
}

func TestFilterOperatorDropsRows(t *testing.T) {
	op := NewFilterOperator("nonempty", PredicateFunc(func(r *commtypes.Row) (bool, error) {
		return len(r.Value) > 0, nil
	}))
	tctx, outs := newTestTctx(t, nil, 1)
	err := op.ProcessBatch(context.Background(), 0, 1, batchOf("a", "x", "b", "", "c", "z"), tctx)
	require.NoError(t, err)
	rows := drain(outs[0])
	require.Len(t, rows, 2)
	require.Equal(t, "a", string(rows[0].Key))
	require.Equal(t, "c", string(rows[1].Key))
}

func TestKeyedCountAccumulatesAndFlushesOnCheckpoint(t *testing.T) {
	op := NewKeyedCountOperator("count")
	tctx, outs := newTestTctx(t, op.Tables(), 1)
	ctx := context.Background()

	err := op.ProcessBatch(ctx, 0, 1, batchOf("a", "", "b", "", "a", ""), tctx)
	require.NoError(t, err)
	rows := drain(outs[0])
	require.Len(t, rows, 3)
	counts := map[string]uint64{}
	for _, r := range rows {
		counts[string(r.Key)] = DecodeCount(r.Value)
	}
	require.Equal(t, uint64(2), counts["a"])
	require.Equal(t, uint64(1), counts["b"])

	// before the checkpoint the table must not see the deltas
	kv, err := tctx.TableMgr().GetKeyValueTable(COUNTS_TABLE)
	require.NoError(t, err)
	_, ok, err := kv.Get(ctx, []byte("a"))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, op.HandleCheckpoint(commtypes.CheckpointBarrier{Epoch: 1}, tctx))
	v, ok, err := kv.Get(ctx, []byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(2), DecodeCount(v))

	// counting continues from the flushed state
	require.NoError(t, op.ProcessBatch(ctx, 0, 1, batchOf("a", ""), tctx))
	rows = drain(outs[0])
	require.Len(t, rows, 1)
	require.Equal(t, uint64(3), DecodeCount(rows[0].Value))
}

func TestNoOpForwardsUnchanged(t *testing.T) {
	op := NewNoOpOperator("noop")
	tctx, outs := newTestTctx(t, nil, 1)
	b := batchOf("a", "x")
	require.NoError(t, op.ProcessBatch(context.Background(), 0, 1, b, tctx))
	rows := drain(outs[0])
	require.Len(t, rows, 1)
	require.Equal(t, "x", string(rows[0].Value))
}
