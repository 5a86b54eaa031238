package exec_context

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"

	"streamrun/pkg/checkpt"
	"streamrun/pkg/common_errors"
	"streamrun/pkg/commtypes"
	"streamrun/pkg/hashfuncs"
	"streamrun/pkg/store"
	"streamrun/pkg/watermark"
)

// TaskContext is the per-task handle operators use to emit downstream, reach
// their tables and talk to the control plane. One TaskContext belongs to one
// task goroutine; it is not safe for concurrent use.
type TaskContext struct {
	info      commtypes.TaskInfo
	outputs   []chan<- commtypes.StreamMessage
	controlRx <-chan commtypes.ControlMessage
	respTx    chan<- commtypes.ControlResp
	tableMgr  *store.TableManager
	wms       *watermark.Holder
	counter   *checkpt.AlignmentCounter
}

type TaskContextArgs struct {
	Info      commtypes.TaskInfo
	Outputs   []chan<- commtypes.StreamMessage
	ControlRx <-chan commtypes.ControlMessage
	RespTx    chan<- commtypes.ControlResp
	TableMgr  *store.TableManager
	NumInputs int
}

func NewTaskContext(args TaskContextArgs) *TaskContext {
	return &TaskContext{
		info:      args.Info,
		outputs:   args.Outputs,
		controlRx: args.ControlRx,
		respTx:    args.RespTx,
		tableMgr:  args.TableMgr,
		wms:       watermark.NewHolder(args.NumInputs),
		counter:   checkpt.NewAlignmentCounter(args.NumInputs),
	}
}

func (tctx *TaskContext) TaskInfo() commtypes.TaskInfo {
	return tctx.info
}

func (tctx *TaskContext) TableMgr() *store.TableManager {
	return tctx.tableMgr
}

func (tctx *TaskContext) Watermarks() *watermark.Holder {
	return tctx.wms
}

func (tctx *TaskContext) Counters() *checkpt.AlignmentCounter {
	return tctx.counter
}

func (tctx *TaskContext) ControlRx() <-chan commtypes.ControlMessage {
	return tctx.controlRx
}

func (tctx *TaskContext) NumOutPartitions() int {
	return len(tctx.outputs)
}

// PartitionForKey routes a key to one downstream partition; stable across
// restarts.
func (tctx *TaskContext) PartitionForKey(key []byte) int {
	return hashfuncs.PartitionForKey(key, len(tctx.outputs))
}

// SendToPartition delivers one message to a single downstream partition,
// blocking until the receiver drains it. That blocking is the backpressure
// path: a slow consumer stalls this task instead of growing a buffer.
func (tctx *TaskContext) SendToPartition(ctx context.Context, partitionIdx int, msg commtypes.StreamMessage) error {
	if partitionIdx < 0 || partitionIdx >= len(tctx.outputs) {
		return xerrors.Errorf("send to partition %d of %d: %w",
			partitionIdx, len(tctx.outputs), common_errors.ErrPartitionOutOfRange)
	}
	select {
	case tctx.outputs[partitionIdx] <- msg:
		return nil
	case <-ctx.Done():
		return xerrors.Errorf("send to partition %d: %w", partitionIdx, common_errors.ErrShuttingDown)
	}
}

// Broadcast delivers one message to every downstream partition. Barriers,
// watermarks and termination signals fan out this way.
func (tctx *TaskContext) Broadcast(ctx context.Context, msg commtypes.StreamMessage) error {
	for idx := range tctx.outputs {
		if err := tctx.SendToPartition(ctx, idx, msg); err != nil {
			return err
		}
	}
	return nil
}

// SendCheckpointEvent reports one lifecycle event of the in-flight checkpoint
// to the control plane. With no control plane attached the event is dropped.
func (tctx *TaskContext) SendCheckpointEvent(epoch uint32, eventType commtypes.CheckpointEventType) {
	if tctx.respTx == nil {
		return
	}
	tctx.respTx <- commtypes.CheckpointEventResp(commtypes.CheckpointEvent{
		TimeMs:     time.Now().UnixMilli(),
		OperatorID: tctx.info.OperatorID,
		SubtaskIdx: tctx.info.SubtaskIdx,
		Epoch:      epoch,
		EventType:  eventType,
	})
}

// ReportTaskFinished tells the control plane this subtask ran to completion.
func (tctx *TaskContext) ReportTaskFinished() {
	if tctx.respTx == nil {
		return
	}
	tctx.respTx <- commtypes.TaskFinishedResp(tctx.info.OperatorID, tctx.info.SubtaskIdx)
}

// StartCheckpoint is the source-side checkpoint entry: report the start, let
// the source flush via flush, then persist and forward the barrier. Sources
// have no barriers to align and no operator setup phase, so only the start
// and sync events are reported. Returns whether the barrier asked the task to
// stop afterwards.
func (tctx *TaskContext) StartCheckpoint(ctx context.Context, b commtypes.CheckpointBarrier, flush func() error) (bool, error) {
	tctx.SendCheckpointEvent(b.Epoch, commtypes.CHKPT_STARTED_CHECKPOINTING)
	if flush != nil {
		if err := flush(); err != nil {
			return false, err
		}
	}
	return tctx.RunCheckpoint(ctx, b)
}

// RunCheckpoint persists the task's tables under the barrier's epoch,
// reports completion and forwards the barrier downstream.
func (tctx *TaskContext) RunCheckpoint(ctx context.Context, b commtypes.CheckpointBarrier) (bool, error) {
	wm := optional.None[commtypes.Watermark]()
	if tctx.wms != nil {
		wm = tctx.wms.LastPresent()
	}
	if err := tctx.tableMgr.Checkpoint(ctx, b, wm); err != nil {
		return false, xerrors.Errorf("checkpoint epoch %d: %w", b.Epoch, err)
	}
	tctx.SendCheckpointEvent(b.Epoch, commtypes.CHKPT_FINISHED_SYNC)
	if err := tctx.Broadcast(ctx, commtypes.SignalOf(commtypes.BarrierSignal(b))); err != nil {
		return false, err
	}
	log.Debug().Str("task", tctx.info.String()).Uint32("epoch", b.Epoch).
		Bool("then_stop", b.ThenStop).Msg("checkpoint done")
	return b.ThenStop, nil
}

// LoadCompacted folds an externally compacted table payload into the live
// tables.
func (tctx *TaskContext) LoadCompacted(ctx context.Context, p *commtypes.CompactionPayload) error {
	return tctx.tableMgr.LoadCompacted(ctx, p)
}
