package commtypes

import "fmt"

type ControlMessageKind uint8

const (
	CTRL_CHECKPOINT = ControlMessageKind(iota)
	CTRL_STOP
	CTRL_COMMIT
	CTRL_LOAD_COMPACTED
	CTRL_NO_OP
)

func (k ControlMessageKind) String() string {
	switch k {
	case CTRL_CHECKPOINT:
		return "Checkpoint"
	case CTRL_STOP:
		return "Stop"
	case CTRL_COMMIT:
		return "Commit"
	case CTRL_LOAD_COMPACTED:
		return "LoadCompacted"
	case CTRL_NO_OP:
		return "NoOp"
	default:
		return fmt.Sprintf("ControlMessageKind(%d)", uint8(k))
	}
}

type StopMode uint8

const (
	STOP_GRACEFUL = StopMode(iota)
	STOP_IMMEDIATE
)

// CommitDirective distributes committed side-effect payloads for an epoch:
// table id -> producing subtask -> opaque bytes.
type CommitDirective struct {
	Epoch uint32
	Data  map[string]map[uint32][]byte
}

// CompactionPayload carries externally compacted table data to fold into a
// task's live state: table name -> opaque compacted bytes.
type CompactionPayload struct {
	OperatorID string
	Tables     map[string][]byte
}

// ControlMessage is what the control plane sends to a task. Checkpoint and
// Stop are only legal for source tasks; operators receive those in-band.
type ControlMessage struct {
	Kind      ControlMessageKind
	Barrier   CheckpointBarrier
	StopMode  StopMode
	Commit    *CommitDirective
	Compacted *CompactionPayload
}

func CheckpointControl(b CheckpointBarrier) ControlMessage {
	return ControlMessage{Kind: CTRL_CHECKPOINT, Barrier: b}
}

func StopControl(mode StopMode) ControlMessage {
	return ControlMessage{Kind: CTRL_STOP, StopMode: mode}
}

func CommitControl(epoch uint32, data map[string]map[uint32][]byte) ControlMessage {
	return ControlMessage{Kind: CTRL_COMMIT, Commit: &CommitDirective{Epoch: epoch, Data: data}}
}

func LoadCompactedControl(p *CompactionPayload) ControlMessage {
	return ControlMessage{Kind: CTRL_LOAD_COMPACTED, Compacted: p}
}

func NoOpControl() ControlMessage {
	return ControlMessage{Kind: CTRL_NO_OP}
}

type CheckpointEventType uint8

// The four checkpoint events of one epoch, in the order a task must emit
// them.
const (
	CHKPT_STARTED_ALIGNMENT = CheckpointEventType(iota)
	CHKPT_STARTED_CHECKPOINTING
	CHKPT_FINISHED_OPERATOR_SETUP
	CHKPT_FINISHED_SYNC
)

func (t CheckpointEventType) String() string {
	switch t {
	case CHKPT_STARTED_ALIGNMENT:
		return "StartedAlignment"
	case CHKPT_STARTED_CHECKPOINTING:
		return "StartedCheckpointing"
	case CHKPT_FINISHED_OPERATOR_SETUP:
		return "FinishedOperatorSetup"
	case CHKPT_FINISHED_SYNC:
		return "FinishedSync"
	default:
		return fmt.Sprintf("CheckpointEventType(%d)", uint8(t))
	}
}

type CheckpointEvent struct {
	TimeMs     int64
	OperatorID string
	SubtaskIdx int
	Epoch      uint32
	EventType  CheckpointEventType
}

type TaskFinished struct {
	OperatorID string
	SubtaskIdx int
}

type ControlRespKind uint8

const (
	RESP_CHECKPOINT_EVENT = ControlRespKind(iota)
	RESP_TASK_FINISHED
)

// ControlResp is what a task reports back to the control plane.
type ControlResp struct {
	Kind            ControlRespKind
	CheckpointEvent *CheckpointEvent
	TaskFinished    *TaskFinished
}

func CheckpointEventResp(ev CheckpointEvent) ControlResp {
	e := ev
	return ControlResp{Kind: RESP_CHECKPOINT_EVENT, CheckpointEvent: &e}
}

func TaskFinishedResp(operatorId string, subtaskIdx int) ControlResp {
	return ControlResp{
		Kind:         RESP_TASK_FINISHED,
		TaskFinished: &TaskFinished{OperatorID: operatorId, SubtaskIdx: subtaskIdx},
	}
}
