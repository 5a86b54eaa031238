package operator

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/store"
)

// DEFAULT_TICK_INTERVAL is used when an operator does not override
// TickInterval.
const DEFAULT_TICK_INTERVAL = 60 * time.Second

// StreamOperator is the event-driven unit of logic the execution loop
// drives. Callback errors are the operator's own responsibility: the loop
// does not catch or retry them, they terminate the task.
type StreamOperator interface {
	Name() string
	// Tables declares the operator's storage needs; consumed read-only by
	// the table manager at task construction.
	Tables() map[string]store.TableConfig
	TickInterval() time.Duration
	OnStart(ctx context.Context, tctx *exec_context.TaskContext) error
	// ProcessBatch handles one data batch from the given input partition.
	ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
		batch *commtypes.RowBatch, tctx *exec_context.TaskContext) error
	// HandleWatermark is invoked when the merged watermark advances; the
	// returned watermark, if any, is broadcast downstream.
	HandleWatermark(wm commtypes.Watermark, tctx *exec_context.TaskContext) (optional.Option[commtypes.Watermark], error)
	// HandleCheckpoint runs after alignment completes and before the
	// snapshot commit: the chance to flush in-memory state into the tables.
	HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error
	HandleCommit(epoch uint32, data map[string]map[uint32][]byte, tctx *exec_context.TaskContext) error
	// HandleTimer fires for each timer-table entry expired by a watermark
	// advance.
	HandleTimer(key uint64, value []byte, tctx *exec_context.TaskContext) error
	HandleTick(tick uint64, tctx *exec_context.TaskContext) error
	// FutureChan exposes the operator's self-declared background task; nil
	// means there is none.
	FutureChan() <-chan interface{}
	HandleFutureResult(res interface{}, tctx *exec_context.TaskContext) error
	OnClose(final optional.Option[commtypes.SignalMessage], tctx *exec_context.TaskContext) error
}

// BaseOperator supplies the no-op defaults; concrete operators embed it and
// override what they need.
type BaseOperator struct{}

func (BaseOperator) Tables() map[string]store.TableConfig {
	return nil
}

func (BaseOperator) TickInterval() time.Duration {
	return DEFAULT_TICK_INTERVAL
}

func (BaseOperator) OnStart(ctx context.Context, tctx *exec_context.TaskContext) error {
	return nil
}

// HandleWatermark forwards the merged watermark unchanged.
func (BaseOperator) HandleWatermark(wm commtypes.Watermark, tctx *exec_context.TaskContext) (optional.Option[commtypes.Watermark], error) {
	return optional.Some(wm), nil
}

func (BaseOperator) HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error {
	return nil
}

func (BaseOperator) HandleCommit(epoch uint32, data map[string]map[uint32][]byte, tctx *exec_context.TaskContext) error {
	log.Warn().Uint32("epoch", epoch).Msg("operator received a commit it does not handle")
	return nil
}

func (BaseOperator) HandleTimer(key uint64, value []byte, tctx *exec_context.TaskContext) error {
	return nil
}

func (BaseOperator) HandleTick(tick uint64, tctx *exec_context.TaskContext) error {
	return nil
}

func (BaseOperator) FutureChan() <-chan interface{} {
	return nil
}

func (BaseOperator) HandleFutureResult(res interface{}, tctx *exec_context.TaskContext) error {
	return nil
}

func (BaseOperator) OnClose(final optional.Option[commtypes.SignalMessage], tctx *exec_context.TaskContext) error {
	return nil
}
