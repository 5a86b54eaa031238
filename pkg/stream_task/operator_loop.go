package stream_task

import (
	"context"
	"reflect"
	"time"

	"github.com/gammazero/deque"
	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/commtypes"
	"streamrun/pkg/env_config"
	"streamrun/pkg/input_queue"
)

// Positions of the non-data cases in the select arena; data cases follow.
const (
	caseCtxDone = iota
	caseControl
	caseTick
	caseFuture
	numFixedCases
)

// operatorLoop is the single cooperative scheduling point of an operator
// task. One reflect.Select over the context, the control channel, the tick
// timer, the operator's future channel and every unblocked input partition;
// exactly one event is handled per iteration, so operator callbacks never run
// concurrently with each other.
func (t *StreamTask) operatorLoop(ctx context.Context, mux *input_queue.Multiplexer) (optional.Option[commtypes.SignalMessage], error) {
	none := optional.None[commtypes.SignalMessage]()
	ticker := time.NewTicker(t.op.TickInterval())
	defer ticker.Stop()
	fixed := make([]reflect.SelectCase, numFixedCases)
	fixed[caseCtxDone] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())}
	fixed[caseControl] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(t.tctx.ControlRx())}
	fixed[caseTick] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ticker.C)}
	fixed[caseFuture] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(t.op.FutureChan())}

	// queues withheld while their partition is aligned but others are not
	held := deque.New[*input_queue.PartitionQueue]()
	var tick uint64
	stopSeen := false
	eodCount := 0

	for {
		cases := append(fixed[:numFixedCases:numFixedCases], mux.Cases()...)
		chosen, recv, recvOK := reflect.Select(cases)
		switch chosen {
		case caseCtxDone:
			return none, xerrors.Errorf("operator loop: %w", common_errors.ErrShuttingDown)
		case caseControl:
			if !recvOK {
				return none, common_errors.ErrControlChannelClosed
			}
			if err := t.handleControl(ctx, recv.Interface().(commtypes.ControlMessage)); err != nil {
				return none, err
			}
		case caseTick:
			if env_config.REPORT_STATS && t.counters.AfterWarmup() && t.reportTimer.Check() {
				t.counters.ReportAll()
				t.reportTimer.Mark()
			}
			if err := t.op.HandleTick(tick, t.tctx); err != nil {
				return none, err
			}
			tick++
			t.counters.Ticks.Tick(1)
		case caseFuture:
			if !recvOK {
				// closed future channel would spin the loop; disarm it
				fixed[caseFuture].Chan = reflect.ValueOf((<-chan interface{})(nil))
				continue
			}
			if err := t.op.HandleFutureResult(recv.Interface(), t.tctx); err != nil {
				return none, err
			}
		default:
			q := mux.Take(chosen - numFixedCases)
			if !recvOK {
				mux.MarkClosed(q)
				if mux.AllClosed() {
					return t.finalSignal(stopSeen, eodCount), nil
				}
				continue
			}
			msg := recv.Interface().(commtypes.StreamMessage)
			if !msg.IsSignal() {
				if err := t.handleBatch(ctx, q.Index(), msg.Batch); err != nil {
					return none, err
				}
				mux.Push(q)
				continue
			}
			switch msg.Signal.Kind {
			case commtypes.BARRIER:
				terminate, err := t.handleBarrier(ctx, mux, held, q, msg.Signal.Barrier)
				if err != nil {
					return none, err
				}
				if terminate {
					// the then-stop barrier was already forwarded downstream
					return none, nil
				}
			case commtypes.WATERMARK:
				if err := t.handleWatermark(ctx, q.Index(), msg.Signal.Watermark); err != nil {
					return none, err
				}
				mux.Push(q)
			case commtypes.STOP:
				stopSeen = true
				mux.MarkClosed(q)
				if mux.AllClosed() {
					return t.finalSignal(stopSeen, eodCount), nil
				}
			case commtypes.END_OF_DATA:
				eodCount++
				mux.MarkClosed(q)
				if mux.AllClosed() {
					return t.finalSignal(stopSeen, eodCount), nil
				}
			}
		}
	}
}

// finalSignal decides what to forward once every input terminated: Stop wins
// when the inputs disagree, EndOfData requires every partition to have said
// so, and a partition whose channel closed without a terminal signal leaves
// nothing to forward.
func (t *StreamTask) finalSignal(stopSeen bool, eodCount int) optional.Option[commtypes.SignalMessage] {
	if stopSeen {
		return optional.Some(commtypes.StopSignal())
	}
	if eodCount == len(t.inputs) {
		return optional.Some(commtypes.EndOfDataSignal())
	}
	return optional.None[commtypes.SignalMessage]()
}

func (t *StreamTask) handleControl(ctx context.Context, cm commtypes.ControlMessage) error {
	switch cm.Kind {
	case commtypes.CTRL_COMMIT:
		return t.op.HandleCommit(cm.Commit.Epoch, cm.Commit.Data, t.tctx)
	case commtypes.CTRL_LOAD_COMPACTED:
		return t.tctx.LoadCompacted(ctx, cm.Compacted)
	case commtypes.CTRL_CHECKPOINT, commtypes.CTRL_STOP:
		// only source tasks accept these; operators get barriers and stop
		// signals in-band
		log.Error().Str("task", t.info.String()).Stringer("kind", cm.Kind).
			Msg("control message not valid for an operator task")
		return nil
	case commtypes.CTRL_NO_OP:
		return nil
	default:
		log.Error().Str("task", t.info.String()).Stringer("kind", cm.Kind).
			Msg("unknown control message")
		return nil
	}
}

func (t *StreamTask) handleBatch(ctx context.Context, partitionIdx int, batch *commtypes.RowBatch) error {
	t.counters.BatchesIn.Tick(1)
	t.counters.RowsIn.Tick(uint32(batch.Len()))
	return t.op.ProcessBatch(ctx, partitionIdx, len(t.inputs), batch, t.tctx)
}

// handleBarrier advances the alignment for one input partition. When the
// partition is the last to align the checkpoint runs inline; until then the
// partition's queue is withheld from the multiplexer so nothing past its
// barrier is consumed.
func (t *StreamTask) handleBarrier(ctx context.Context, mux *input_queue.Multiplexer,
	held *deque.Deque[*input_queue.PartitionQueue], q *input_queue.PartitionQueue,
	b commtypes.CheckpointBarrier,
) (bool, error) {
	t.counters.Barriers.Tick(1)
	counter := t.tctx.Counters()
	if counter.AllClear() {
		t.tctx.SendCheckpointEvent(b.Epoch, commtypes.CHKPT_STARTED_ALIGNMENT)
	}
	if counter.Mark(q.Index(), b) {
		t.tctx.SendCheckpointEvent(b.Epoch, commtypes.CHKPT_STARTED_CHECKPOINTING)
		if err := t.op.HandleCheckpoint(b, t.tctx); err != nil {
			return false, err
		}
		t.tctx.SendCheckpointEvent(b.Epoch, commtypes.CHKPT_FINISHED_OPERATOR_SETUP)
		thenStop, err := t.tctx.RunCheckpoint(ctx, b)
		if err != nil {
			return false, err
		}
		t.counters.Checkpoints.Tick(1)
		for held.Len() > 0 {
			mux.Push(held.PopFront())
		}
		mux.Push(q)
		return thenStop, nil
	}
	if counter.IsBlocked(q.Index()) {
		held.PushBack(q)
		return false, nil
	}
	// barrier was rejected (epoch mismatch); keep consuming the partition
	mux.Push(q)
	return false, nil
}

// handleWatermark merges one partition's watermark and, when the merged value
// advances, fires expired timers and lets the operator transform the
// watermark before it goes downstream.
func (t *StreamTask) handleWatermark(ctx context.Context, partitionIdx int, wm commtypes.Watermark) error {
	t.counters.Watermarks.Tick(1)
	changed, err := t.tctx.Watermarks().Set(partitionIdx, wm)
	if err != nil {
		return err
	}
	if changed.IsNone() {
		return nil
	}
	merged := changed.Unwrap()
	if !merged.IsIdle() {
		for _, tt := range t.tctx.TableMgr().TimerTables() {
			for _, e := range tt.ExpireBefore(merged.TsMs) {
				if err := t.op.HandleTimer(e.Key, e.Value, t.tctx); err != nil {
					return err
				}
			}
		}
	}
	out, err := t.op.HandleWatermark(merged, t.tctx)
	if err != nil {
		return err
	}
	if out.IsSome() {
		if err := t.tctx.Broadcast(ctx, commtypes.SignalOf(commtypes.WatermarkSignal(out.Unwrap()))); err != nil {
			return err
		}
		t.counters.MessagesOut.Tick(1)
	}
	return nil
}
