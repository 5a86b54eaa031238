package stream_task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
	"streamrun/pkg/snapshot_store"
)

// oneCheckpointSource takes one checkpoint off the control channel and then
// drains.
type oneCheckpointSource struct {
	operator.BaseSource
}

func (s *oneCheckpointSource) Name() string { return "src" }

func (s *oneCheckpointSource) Run(ctx context.Context, tctx *exec_context.TaskContext) (operator.SourceFinishType, error) {
	cm := <-tctx.ControlRx()
	if _, err := tctx.StartCheckpoint(ctx, cm.Barrier, nil); err != nil {
		return operator.FINISH_NONE, err
	}
	return operator.FINISH_GRACEFUL, nil
}

func TestSourceCheckpointSkipsOperatorEvents(t *testing.T) {
	out := make(chan commtypes.StreamMessage, 16)
	control := make(chan commtypes.ControlMessage, 1)
	resp := make(chan commtypes.ControlResp, 16)
	task, err := NewStreamTaskBuilder().
		TaskInfo(commtypes.TaskInfo{OperatorID: "src", OperatorName: "src", SubtaskIdx: 0, Parallelism: 1}).
		Source(&oneCheckpointSource{}).
		Outputs([]chan<- commtypes.StreamMessage{out}).
		Control(control, resp).
		SnapshotStore(snapshot_store.NewMemorySnapshotStore()).
		Build()
	require.NoError(t, err)

	control <- commtypes.CheckpointControl(commtypes.CheckpointBarrier{Epoch: 2})
	require.NoError(t, task.Start(context.Background()))

	var evs []commtypes.CheckpointEventType
	finished := false
	for drained := false; !drained; {
		select {
		case r := <-resp:
			switch r.Kind {
			case commtypes.RESP_CHECKPOINT_EVENT:
				require.Equal(t, uint32(2), r.CheckpointEvent.Epoch)
				evs = append(evs, r.CheckpointEvent.EventType)
			case commtypes.RESP_TASK_FINISHED:
				finished = true
			}
		default:
			drained = true
		}
	}
	require.True(t, finished)
	// a source has nothing to align and no operator setup phase
	require.Equal(t, []commtypes.CheckpointEventType{
		commtypes.CHKPT_STARTED_CHECKPOINTING,
		commtypes.CHKPT_FINISHED_SYNC,
	}, evs)

	// the barrier went downstream, followed by the graceful end
	require.Equal(t, commtypes.BARRIER, (<-out).Signal.Kind)
	require.Equal(t, commtypes.END_OF_DATA, (<-out).Signal.Kind)
}
