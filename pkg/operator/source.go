package operator

import (
	"context"
	"fmt"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/store"
)

type SourceFinishType uint8

const (
	FINISH_NONE = SourceFinishType(iota)
	FINISH_GRACEFUL
	FINISH_STOP
)

func (t SourceFinishType) String() string {
	switch t {
	case FINISH_NONE:
		return "None"
	case FINISH_GRACEFUL:
		return "Graceful"
	case FINISH_STOP:
		return "Stop"
	default:
		return fmt.Sprintf("SourceFinishType(%d)", uint8(t))
	}
}

// SourceOperator produces the stream instead of consuming one, so it owns its
// own loop: Run blocks until the source drains (FINISH_GRACEFUL), is stopped
// by the control plane (FINISH_STOP) or fails. Run is responsible for polling
// the control channel and honoring checkpoint and stop requests in-band.
type SourceOperator interface {
	Name() string
	Tables() map[string]store.TableConfig
	OnStart(ctx context.Context, tctx *exec_context.TaskContext) error
	Run(ctx context.Context, tctx *exec_context.TaskContext) (SourceFinishType, error)
	HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error
	OnClose(tctx *exec_context.TaskContext) error
}

// BaseSource supplies the no-op defaults except Run, which every source must
// implement itself.
type BaseSource struct{}

func (BaseSource) Tables() map[string]store.TableConfig {
	return nil
}

func (BaseSource) OnStart(ctx context.Context, tctx *exec_context.TaskContext) error {
	return nil
}

func (BaseSource) HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error {
	return nil
}

func (BaseSource) OnClose(tctx *exec_context.TaskContext) error {
	return nil
}
