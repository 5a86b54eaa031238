package stream_task

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/input_queue"
	"streamrun/pkg/operator"
	"streamrun/pkg/stats"
)

const DEFAULT_REPORT_DURATION = 30 * time.Second

// StreamTask is one running parallel subtask: either a source driving its own
// loop, or an operator driven by the shared execution loop over its input
// partitions. Construct with NewStreamTaskBuilder.
type StreamTask struct {
	info        commtypes.TaskInfo
	op          operator.StreamOperator
	src         operator.SourceOperator
	inputs      []<-chan commtypes.StreamMessage
	tctx        *exec_context.TaskContext
	counters    *stats.TaskCounters
	reportTimer stats.ReportTimer
}

func (t *StreamTask) IsSource() bool {
	return t.src != nil
}

func (t *StreamTask) Name() string {
	if t.IsSource() {
		return t.src.Name()
	}
	return t.op.Name()
}

func (t *StreamTask) Counters() *stats.TaskCounters {
	return t.counters
}

func (t *StreamTask) TaskContext() *exec_context.TaskContext {
	return t.tctx
}

// Start runs the task to completion: OnStart, the execution loop, OnClose,
// then the final downstream signal and the finished report. The close hook
// runs before the broadcast so anything it flushes still precedes the
// terminal signal downstream. On error the task exits without closing down
// cleanly and without reporting finished; the control plane treats the
// silence as failure.
func (t *StreamTask) Start(ctx context.Context) error {
	log.Info().Str("task", t.info.String()).Str("name", t.Name()).
		Bool("source", t.IsSource()).Msg("task starting")
	t.counters.StartWarmup()
	var final optional.Option[commtypes.SignalMessage]
	var err error
	if t.IsSource() {
		final, err = t.runSource(ctx)
	} else {
		final, err = t.runOperator(ctx)
	}
	if err != nil {
		log.Error().Err(err).Str("task", t.info.String()).Msg("task failed")
		return err
	}
	if t.IsSource() {
		err = t.src.OnClose(t.tctx)
	} else {
		err = t.op.OnClose(final, t.tctx)
	}
	if err != nil {
		return xerrors.Errorf("close %s: %w", t.info, err)
	}
	if final.IsSome() {
		if err := t.tctx.Broadcast(ctx, commtypes.SignalOf(final.Unwrap())); err != nil {
			return err
		}
	}
	t.counters.ReportAll()
	log.Info().Str("task", t.info.String()).Msg("task finished")
	t.tctx.ReportTaskFinished()
	return nil
}

func (t *StreamTask) runSource(ctx context.Context) (optional.Option[commtypes.SignalMessage], error) {
	none := optional.None[commtypes.SignalMessage]()
	if err := t.src.OnStart(ctx, t.tctx); err != nil {
		return none, err
	}
	ft, err := t.src.Run(ctx, t.tctx)
	if err != nil {
		return none, err
	}
	switch ft {
	case operator.FINISH_GRACEFUL:
		return optional.Some(commtypes.EndOfDataSignal()), nil
	case operator.FINISH_STOP:
		return optional.Some(commtypes.StopSignal()), nil
	default:
		return none, nil
	}
}

func (t *StreamTask) runOperator(ctx context.Context) (optional.Option[commtypes.SignalMessage], error) {
	if err := t.op.OnStart(ctx, t.tctx); err != nil {
		return optional.None[commtypes.SignalMessage](), err
	}
	mux := input_queue.NewMultiplexer()
	for idx, ch := range t.inputs {
		mux.Push(input_queue.NewPartitionQueue(idx, ch))
	}
	return t.operatorLoop(ctx, mux)
}
