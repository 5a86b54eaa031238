package stream_task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/require"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
	"streamrun/pkg/snapshot_store"
	"streamrun/pkg/store"
	"streamrun/pkg/utils/syncutils"
)

// recordingOp logs every callback so tests can assert ordering across the
// data, barrier, watermark and control paths.
type recordingOp struct {
	operator.BaseOperator
	mu      syncutils.Mutex
	events  []string
	tables  map[string]store.TableConfig
	onStart func(ctx context.Context, tctx *exec_context.TaskContext) error
}

func (o *recordingOp) record(ev string) {
	o.mu.Lock()
	o.events = append(o.events, ev)
	o.mu.Unlock()
}

func (o *recordingOp) Events() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	evs := make([]string, len(o.events))
	copy(evs, o.events)
	return evs
}

func (o *recordingOp) Name() string { return "recording" }

func (o *recordingOp) Tables() map[string]store.TableConfig { return o.tables }

func (o *recordingOp) TickInterval() time.Duration { return time.Hour }

func (o *recordingOp) OnStart(ctx context.Context, tctx *exec_context.TaskContext) error {
	if o.onStart != nil {
		return o.onStart(ctx, tctx)
	}
	return nil
}

func (o *recordingOp) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	for _, r := range batch.Rows {
		o.record(fmt.Sprintf("batch:%d:%s", partitionIdx, r.Value))
	}
	return nil
}

func (o *recordingOp) HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error {
	o.record(fmt.Sprintf("checkpoint:%d", b.Epoch))
	return nil
}

func (o *recordingOp) HandleWatermark(wm commtypes.Watermark, tctx *exec_context.TaskContext) (optional.Option[commtypes.Watermark], error) {
	o.record(fmt.Sprintf("wm:%s", wm))
	return optional.Some(wm), nil
}

func (o *recordingOp) HandleTimer(key uint64, value []byte, tctx *exec_context.TaskContext) error {
	o.record(fmt.Sprintf("timer:%d:%s", key, value))
	return nil
}

func (o *recordingOp) HandleCommit(epoch uint32, data map[string]map[uint32][]byte, tctx *exec_context.TaskContext) error {
	o.record(fmt.Sprintf("commit:%d", epoch))
	return nil
}

func (o *recordingOp) OnClose(final optional.Option[commtypes.SignalMessage], tctx *exec_context.TaskContext) error {
	if final.IsSome() {
		o.record(fmt.Sprintf("close:%s", final.Unwrap()))
	} else {
		o.record("close:none")
	}
	return nil
}

type taskHarness struct {
	inputs  []chan commtypes.StreamMessage
	out     chan commtypes.StreamMessage
	control chan commtypes.ControlMessage
	resp    chan commtypes.ControlResp
	ss      *snapshot_store.MemorySnapshotStore
	task    *StreamTask
	op      *recordingOp
}

func newTaskHarness(t *testing.T, op *recordingOp, numInputs int) *taskHarness {
	t.Helper()
	return newTaskHarnessWith(t, op, op, numInputs)
}

// newTaskHarnessWith runs logic as the task's operator while rec receives the
// recorded callbacks; they differ when a test wraps recordingOp.
func newTaskHarnessWith(t *testing.T, logic operator.StreamOperator, rec *recordingOp, numInputs int) *taskHarness {
	t.Helper()
	h := &taskHarness{
		out:     make(chan commtypes.StreamMessage, 128),
		control: make(chan commtypes.ControlMessage, 16),
		resp:    make(chan commtypes.ControlResp, 128),
		ss:      snapshot_store.NewMemorySnapshotStore(),
		op:      rec,
	}
	inputs := make([]<-chan commtypes.StreamMessage, numInputs)
	for i := 0; i < numInputs; i++ {
		ch := make(chan commtypes.StreamMessage, 32)
		h.inputs = append(h.inputs, ch)
		inputs[i] = ch
	}
	task, err := NewStreamTaskBuilder().
		TaskInfo(commtypes.TaskInfo{OperatorID: "op", OperatorName: "recording", SubtaskIdx: 0, Parallelism: 1}).
		Operator(logic).
		Inputs(inputs).
		Outputs([]chan<- commtypes.StreamMessage{h.out}).
		Control(h.control, h.resp).
		SnapshotStore(h.ss).
		Build()
	require.NoError(t, err)
	h.task = task
	return h
}

func (h *taskHarness) sendData(partition int, value string, tsMs int64) {
	h.inputs[partition] <- commtypes.DataMessage(&commtypes.RowBatch{
		Rows: []commtypes.Row{{Key: []byte(value), Value: []byte(value), TsMs: tsMs}},
	})
}

func (h *taskHarness) sendSignal(partition int, sig commtypes.SignalMessage) {
	h.inputs[partition] <- commtypes.SignalOf(sig)
}

func (h *taskHarness) closeInputs() {
	for _, ch := range h.inputs {
		close(ch)
	}
}

func (h *taskHarness) drainOut() []commtypes.StreamMessage {
	var msgs []commtypes.StreamMessage
	for {
		select {
		case m := <-h.out:
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}

// drainEvents separates checkpoint events from the finished report.
func (h *taskHarness) drainEvents() ([]commtypes.CheckpointEvent, bool) {
	var evs []commtypes.CheckpointEvent
	finished := false
	for {
		select {
		case r := <-h.resp:
			switch r.Kind {
			case commtypes.RESP_CHECKPOINT_EVENT:
				evs = append(evs, *r.CheckpointEvent)
			case commtypes.RESP_TASK_FINISHED:
				finished = true
			}
		default:
			return evs, finished
		}
	}
}

func (h *taskHarness) waitWatermarks(t *testing.T, n uint64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.task.Counters().Watermarks.GetCount() >= n
	}, 2*time.Second, time.Millisecond)
}

func (h *taskHarness) waitBarriers(t *testing.T, n uint64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.task.Counters().Barriers.GetCount() >= n
	}, 2*time.Second, time.Millisecond)
}

func indexOf(evs []string, ev string) int {
	for i, e := range evs {
		if e == ev {
			return i
		}
	}
	return -1
}

func TestBarrierAlignmentWithholdsPostBarrierData(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	b := commtypes.CheckpointBarrier{Epoch: 1}
	h.sendData(0, "a", 1)
	h.sendSignal(0, commtypes.BarrierSignal(b))
	h.sendData(0, "c", 2)
	h.sendData(1, "b", 1)
	h.sendSignal(1, commtypes.BarrierSignal(b))
	h.closeInputs()

	require.NoError(t, h.task.Start(context.Background()))

	evs := op.Events()
	// nothing past partition 0's barrier may be consumed before the epoch
	// completes on both partitions
	chk := indexOf(evs, "checkpoint:1")
	late := indexOf(evs, "batch:0:c")
	require.GreaterOrEqual(t, chk, 0, "checkpoint did not run: %v", evs)
	require.GreaterOrEqual(t, late, 0, "post-barrier batch never consumed: %v", evs)
	require.Less(t, chk, late, "post-barrier batch leaked into the snapshot cut: %v", evs)

	ckEvs, finished := h.drainEvents()
	require.True(t, finished)
	require.Len(t, ckEvs, 4)
	require.Equal(t, commtypes.CHKPT_STARTED_ALIGNMENT, ckEvs[0].EventType)
	require.Equal(t, commtypes.CHKPT_STARTED_CHECKPOINTING, ckEvs[1].EventType)
	require.Equal(t, commtypes.CHKPT_FINISHED_OPERATOR_SETUP, ckEvs[2].EventType)
	require.Equal(t, commtypes.CHKPT_FINISHED_SYNC, ckEvs[3].EventType)
	for _, ev := range ckEvs {
		require.Equal(t, uint32(1), ev.Epoch)
	}

	// downstream: exactly one barrier, and nothing terminal since the inputs
	// closed without signaling an end
	var barriers, terminals int
	for _, m := range h.drainOut() {
		require.True(t, m.IsSignal())
		switch m.Signal.Kind {
		case commtypes.BARRIER:
			barriers++
			require.Equal(t, b, m.Signal.Barrier)
		case commtypes.STOP, commtypes.END_OF_DATA:
			terminals++
		}
	}
	require.Equal(t, 1, barriers)
	require.Equal(t, 0, terminals)

	ep, err := h.ss.LatestEpoch(context.Background(), "op-0")
	require.NoError(t, err)
	require.Equal(t, uint32(1), ep)
}

func TestThenStopBarrierTerminates(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 1)

	b := commtypes.CheckpointBarrier{Epoch: 4, ThenStop: true}
	h.sendData(0, "a", 1)
	h.sendSignal(0, commtypes.BarrierSignal(b))
	// never consumed: the then-stop barrier ends the task
	h.sendData(0, "zombie", 2)

	require.NoError(t, h.task.Start(context.Background()))

	evs := op.Events()
	require.Equal(t, -1, indexOf(evs, "batch:0:zombie"), "consumed past a then-stop barrier: %v", evs)
	require.GreaterOrEqual(t, indexOf(evs, "checkpoint:4"), 0)
	require.Equal(t, "close:none", evs[len(evs)-1])

	out := h.drainOut()
	require.Len(t, out, 1)
	require.Equal(t, commtypes.BARRIER, out[0].Signal.Kind)
	require.True(t, out[0].Signal.Barrier.ThenStop)
}

func TestStopDominatesEndOfData(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	h.sendSignal(0, commtypes.EndOfDataSignal())
	h.sendSignal(1, commtypes.StopSignal())

	require.NoError(t, h.task.Start(context.Background()))

	out := h.drainOut()
	require.Len(t, out, 1)
	require.Equal(t, commtypes.STOP, out[0].Signal.Kind)
}

func TestAllEndOfDataForwardsEndOfData(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	h.sendSignal(0, commtypes.EndOfDataSignal())
	h.sendSignal(1, commtypes.EndOfDataSignal())

	require.NoError(t, h.task.Start(context.Background()))

	out := h.drainOut()
	require.Len(t, out, 1)
	require.Equal(t, commtypes.END_OF_DATA, out[0].Signal.Kind)
}

func TestExhaustionWithoutSignalsForwardsNothing(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	h.sendData(0, "a", 1)
	h.closeInputs()

	require.NoError(t, h.task.Start(context.Background()))

	// a bare channel close is exhaustion, not a graceful end of stream
	require.Empty(t, h.drainOut())
	evs := op.Events()
	require.Equal(t, "close:none", evs[len(evs)-1])
}

func TestPartialEndOfDataIsExhaustion(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	// only one of two partitions signals an end; the other just closes
	h.sendSignal(0, commtypes.EndOfDataSignal())
	close(h.inputs[1])

	require.NoError(t, h.task.Start(context.Background()))
	require.Empty(t, h.drainOut())
}

// flushOnCloseOp holds its output until the task closes, the way a buffering
// sink would.
type flushOnCloseOp struct {
	recordingOp
}

func (o *flushOnCloseOp) OnClose(final optional.Option[commtypes.SignalMessage], tctx *exec_context.TaskContext) error {
	batch := &commtypes.RowBatch{Rows: []commtypes.Row{{Key: []byte("f"), Value: []byte("flushed"), TsMs: 9}}}
	if err := tctx.Broadcast(context.Background(), commtypes.DataMessage(batch)); err != nil {
		return err
	}
	return o.recordingOp.OnClose(final, tctx)
}

func TestCloseFlushPrecedesTerminalSignal(t *testing.T) {
	op := &flushOnCloseOp{}
	h := newTaskHarnessWith(t, op, &op.recordingOp, 1)

	h.sendSignal(0, commtypes.EndOfDataSignal())
	require.NoError(t, h.task.Start(context.Background()))

	out := h.drainOut()
	require.Len(t, out, 2)
	require.False(t, out[0].IsSignal(), "close flush must land before the terminal signal")
	require.Equal(t, "flushed", string(out[0].Batch.Rows[0].Value))
	require.Equal(t, commtypes.END_OF_DATA, out[1].Signal.Kind)
}

func TestWatermarkMergeSuppressesNonAdvancing(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	done := make(chan error, 1)
	go func() { done <- h.task.Start(context.Background()) }()

	// the loop picks freely among ready partitions, so gate each send on the
	// previous one being consumed to pin the merge order
	h.sendSignal(0, commtypes.WatermarkSignal(commtypes.EventTimeWatermark(10)))
	h.waitWatermarks(t, 1)
	h.sendSignal(1, commtypes.WatermarkSignal(commtypes.EventTimeWatermark(20)))
	h.waitWatermarks(t, 2)
	h.sendSignal(0, commtypes.WatermarkSignal(commtypes.EventTimeWatermark(30)))
	h.waitWatermarks(t, 3)
	h.closeInputs()
	require.NoError(t, <-done)

	var wms []int64
	for _, m := range h.drainOut() {
		if m.IsSignal() && m.Signal.Kind == commtypes.WATERMARK {
			wms = append(wms, m.Signal.Watermark.TsMs)
		}
	}
	// 20 on partition 1 does not move the min; 30 on partition 0 moves it to 20
	require.Equal(t, []int64{10, 20}, wms)
}

func TestTimersFireOnWatermarkAdvance(t *testing.T) {
	op := &recordingOp{
		tables: map[string]store.TableConfig{
			"timers": {Name: "timers", Kind: store.TABLE_TIMER},
		},
	}
	op.onStart = func(ctx context.Context, tctx *exec_context.TaskContext) error {
		tt, err := tctx.TableMgr().GetTimerTable("timers")
		if err != nil {
			return err
		}
		tt.Register(5, 1, []byte("early"))
		tt.Register(15, 2, []byte("late"))
		return nil
	}
	h := newTaskHarness(t, op, 1)

	h.sendSignal(0, commtypes.WatermarkSignal(commtypes.EventTimeWatermark(10)))
	h.sendSignal(0, commtypes.WatermarkSignal(commtypes.EventTimeWatermark(20)))
	h.closeInputs()

	require.NoError(t, h.task.Start(context.Background()))

	evs := op.Events()
	first := indexOf(evs, "timer:1:early")
	second := indexOf(evs, "timer:2:late")
	require.GreaterOrEqual(t, first, 0, "timer at 5 did not fire: %v", evs)
	require.GreaterOrEqual(t, second, 0, "timer at 15 did not fire: %v", evs)
	require.Less(t, first, indexOf(evs, "wm:Watermark(10)"), "timers fire before the watermark is handled")
	require.Greater(t, second, indexOf(evs, "wm:Watermark(10)"))
}

func TestWrongEpochBarrierIgnoredMidAlignment(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 2)

	done := make(chan error, 1)
	go func() { done <- h.task.Start(context.Background()) }()

	// epoch 1 must be the one in flight before the stray epoch 2 arrives
	h.sendSignal(0, commtypes.BarrierSignal(commtypes.CheckpointBarrier{Epoch: 1}))
	h.waitBarriers(t, 1)
	h.sendSignal(1, commtypes.BarrierSignal(commtypes.CheckpointBarrier{Epoch: 2}))
	h.waitBarriers(t, 2)
	h.sendSignal(1, commtypes.BarrierSignal(commtypes.CheckpointBarrier{Epoch: 1}))
	h.waitBarriers(t, 3)
	h.closeInputs()
	require.NoError(t, <-done)

	evs := op.Events()
	require.GreaterOrEqual(t, indexOf(evs, "checkpoint:1"), 0, "epoch 1 never completed: %v", evs)
	require.Equal(t, -1, indexOf(evs, "checkpoint:2"), "rejected epoch checkpointed: %v", evs)
	require.Equal(t, uint64(1), h.task.Counters().Checkpoints.GetCount())
}

func TestControlCommitHandledWhileStreaming(t *testing.T) {
	op := &recordingOp{}
	h := newTaskHarness(t, op, 1)

	h.control <- commtypes.CommitControl(7, map[string]map[uint32][]byte{
		"t": {0: []byte("x")},
	})
	// not valid for an operator task: logged and ignored, the loop goes on
	h.control <- commtypes.CheckpointControl(commtypes.CheckpointBarrier{Epoch: 9})
	h.control <- commtypes.NoOpControl()

	done := make(chan error, 1)
	go func() { done <- h.task.Start(context.Background()) }()

	require.Eventually(t, func() bool {
		return indexOf(op.Events(), "commit:7") >= 0
	}, 2*time.Second, time.Millisecond, "commit never reached the operator")

	h.sendData(0, "a", 1)
	require.Eventually(t, func() bool {
		return indexOf(op.Events(), "batch:0:a") >= 0
	}, 2*time.Second, time.Millisecond, "data starved after control traffic")

	h.sendSignal(0, commtypes.StopSignal())
	require.NoError(t, <-done)
	require.Equal(t, -1, indexOf(op.Events(), "checkpoint:9"))
}
