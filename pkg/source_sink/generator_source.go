package source_sink

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
)

// NextBatch produces the source's next batch and an optional watermark to
// assert after it; ok is false once the source is drained.
type NextBatch func() (batch *commtypes.RowBatch, wm optional.Option[commtypes.Watermark], ok bool)

// GeneratorSource drives a pipeline from an in-process generator function.
// Its Run loop interleaves producing with polling the control channel, so a
// checkpoint or stop request is honored between batches, never mid-batch.
type GeneratorSource struct {
	operator.BaseSource
	name     string
	next     NextBatch
	interval time.Duration
}

func NewGeneratorSource(name string, next NextBatch, interval time.Duration) *GeneratorSource {
	return &GeneratorSource{name: name, next: next, interval: interval}
}

func (s *GeneratorSource) Name() string { return s.name }

func (s *GeneratorSource) Run(ctx context.Context, tctx *exec_context.TaskContext) (operator.SourceFinishType, error) {
	for {
		select {
		case cm, ok := <-tctx.ControlRx():
			if !ok {
				return operator.FINISH_STOP, nil
			}
			ft, terminate, err := s.handleControl(ctx, tctx, cm)
			if err != nil {
				return operator.FINISH_NONE, err
			}
			if terminate {
				return ft, nil
			}
			continue
		case <-ctx.Done():
			return operator.FINISH_NONE, ctx.Err()
		default:
		}
		batch, wm, ok := s.next()
		if !ok {
			return operator.FINISH_GRACEFUL, nil
		}
		if err := s.emit(ctx, tctx, batch, wm); err != nil {
			return operator.FINISH_NONE, err
		}
		if s.interval > 0 {
			time.Sleep(s.interval)
		}
	}
}

// handleControl applies one control message. terminate tells Run to return
// the given finish type; a then-stop checkpoint terminates with FINISH_NONE
// because the forwarded barrier is already the terminal signal downstream.
func (s *GeneratorSource) handleControl(ctx context.Context, tctx *exec_context.TaskContext,
	cm commtypes.ControlMessage,
) (operator.SourceFinishType, bool, error) {
	switch cm.Kind {
	case commtypes.CTRL_CHECKPOINT:
		thenStop, err := tctx.StartCheckpoint(ctx, cm.Barrier, func() error {
			return s.HandleCheckpoint(cm.Barrier, tctx)
		})
		if err != nil {
			return operator.FINISH_NONE, false, err
		}
		return operator.FINISH_NONE, thenStop, nil
	case commtypes.CTRL_STOP:
		if cm.StopMode == commtypes.STOP_GRACEFUL {
			// drain what the generator already has pending as one last batch
			if batch, wm, ok := s.next(); ok {
				if err := s.emit(ctx, tctx, batch, wm); err != nil {
					return operator.FINISH_NONE, false, err
				}
			}
		}
		return operator.FINISH_STOP, true, nil
	case commtypes.CTRL_LOAD_COMPACTED:
		return operator.FINISH_NONE, false, tctx.LoadCompacted(ctx, cm.Compacted)
	case commtypes.CTRL_COMMIT:
		log.Warn().Str("source", s.name).Uint32("epoch", cm.Commit.Epoch).
			Msg("source ignores commit directives")
		return operator.FINISH_NONE, false, nil
	default:
		return operator.FINISH_NONE, false, nil
	}
}

// emit routes each row to its key's partition, preserving per-key order, then
// broadcasts the watermark if the generator asserted one.
func (s *GeneratorSource) emit(ctx context.Context, tctx *exec_context.TaskContext,
	batch *commtypes.RowBatch, wm optional.Option[commtypes.Watermark],
) error {
	if batch.Len() > 0 {
		n := tctx.NumOutPartitions()
		parts := make([]*commtypes.RowBatch, n)
		for _, r := range batch.Rows {
			idx := tctx.PartitionForKey(r.Key)
			if parts[idx] == nil {
				parts[idx] = &commtypes.RowBatch{}
			}
			parts[idx].Rows = append(parts[idx].Rows, r)
		}
		for idx, pb := range parts {
			if pb == nil {
				continue
			}
			if err := tctx.SendToPartition(ctx, idx, commtypes.DataMessage(pb)); err != nil {
				return err
			}
		}
	}
	if wm.IsSome() {
		return tctx.Broadcast(ctx, commtypes.SignalOf(commtypes.WatermarkSignal(wm.Unwrap())))
	}
	return nil
}
