package stream_task

import (
	"golang.org/x/xerrors"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
	"streamrun/pkg/snapshot_store"
	"streamrun/pkg/stats"
	"streamrun/pkg/store"
)

type StreamTaskBuilder struct {
	task        *StreamTask
	outputs     []chan<- commtypes.StreamMessage
	controlRx   <-chan commtypes.ControlMessage
	respTx      chan<- commtypes.ControlResp
	ss          snapshot_store.SnapshotStore
	serdeFormat commtypes.SerdeFormat
}

type SetTaskInfo interface {
	TaskInfo(info commtypes.TaskInfo) SetTaskLogic
}

type SetTaskLogic interface {
	Operator(op operator.StreamOperator) BuildStreamTask
	Source(src operator.SourceOperator) BuildStreamTask
	Node(n OperatorNode) BuildStreamTask
}

type BuildStreamTask interface {
	Inputs(inputs []<-chan commtypes.StreamMessage) BuildStreamTask
	Outputs(outputs []chan<- commtypes.StreamMessage) BuildStreamTask
	Control(rx <-chan commtypes.ControlMessage, respTx chan<- commtypes.ControlResp) BuildStreamTask
	SnapshotStore(ss snapshot_store.SnapshotStore) BuildStreamTask
	SerdeFormat(f commtypes.SerdeFormat) BuildStreamTask
	Build() (*StreamTask, error)
}

func NewStreamTaskBuilder() SetTaskInfo {
	return &StreamTaskBuilder{
		task:        &StreamTask{},
		serdeFormat: commtypes.MSGP,
	}
}

func (b *StreamTaskBuilder) TaskInfo(info commtypes.TaskInfo) SetTaskLogic {
	b.task.info = info
	return b
}

func (b *StreamTaskBuilder) Operator(op operator.StreamOperator) BuildStreamTask {
	b.task.op = op
	return b
}

func (b *StreamTaskBuilder) Source(src operator.SourceOperator) BuildStreamTask {
	b.task.src = src
	return b
}

func (b *StreamTaskBuilder) Node(n OperatorNode) BuildStreamTask {
	b.task.op = n.op
	b.task.src = n.src
	return b
}

func (b *StreamTaskBuilder) Inputs(inputs []<-chan commtypes.StreamMessage) BuildStreamTask {
	b.task.inputs = inputs
	return b
}

func (b *StreamTaskBuilder) Outputs(outputs []chan<- commtypes.StreamMessage) BuildStreamTask {
	b.outputs = outputs
	return b
}

func (b *StreamTaskBuilder) Control(rx <-chan commtypes.ControlMessage, respTx chan<- commtypes.ControlResp) BuildStreamTask {
	b.controlRx = rx
	b.respTx = respTx
	return b
}

func (b *StreamTaskBuilder) SnapshotStore(ss snapshot_store.SnapshotStore) BuildStreamTask {
	b.ss = ss
	return b
}

func (b *StreamTaskBuilder) SerdeFormat(f commtypes.SerdeFormat) BuildStreamTask {
	b.serdeFormat = f
	return b
}

func (b *StreamTaskBuilder) Build() (*StreamTask, error) {
	t := b.task
	var tables map[string]store.TableConfig
	if t.IsSource() {
		if len(t.inputs) != 0 {
			return nil, xerrors.New("a source task takes no inputs")
		}
		tables = t.src.Tables()
	} else {
		if t.op == nil {
			return nil, xerrors.New("a task needs an operator or a source")
		}
		if len(t.inputs) == 0 {
			return nil, xerrors.New("an operator task needs at least one input")
		}
		tables = t.op.Tables()
	}
	tm, err := store.NewTableManager(t.info.String(), tables, b.ss, b.serdeFormat)
	if err != nil {
		return nil, err
	}
	t.tctx = exec_context.NewTaskContext(exec_context.TaskContextArgs{
		Info:      t.info,
		Outputs:   b.outputs,
		ControlRx: b.controlRx,
		RespTx:    b.respTx,
		TableMgr:  tm,
		NumInputs: len(t.inputs),
	})
	t.counters = stats.NewTaskCounters(t.info.String())
	t.reportTimer = stats.NewReportTimer(DEFAULT_REPORT_DURATION)
	return t, nil
}
