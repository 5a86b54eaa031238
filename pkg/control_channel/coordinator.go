package control_channel

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/commtypes"
	"streamrun/pkg/utils/syncutils"
)

const (
	CONTROL_CHANNEL_CAPACITY = 16
	RESP_CHANNEL_CAPACITY    = 256
)

type taskHandle struct {
	tx       chan commtypes.ControlMessage
	info     commtypes.TaskInfo
	isSource bool
}

// Coordinator is the control plane of one pipeline run: it owns the control
// channel of every task and the shared response channel, injects checkpoints
// and stop requests at the sources, and tracks checkpoint completion and task
// termination from the responses. Register every task before Start; the
// monitor goroutine runs until Stop.
type Coordinator struct {
	mu          syncutils.Mutex
	tasks       map[string]*taskHandle
	resp        chan commtypes.ControlResp
	quit        chan struct{}
	monitorDone chan struct{}
	progress    *checkpointProgress
	epochDone   map[uint32]chan struct{}
	finished    map[string]bool
	allFinished chan struct{}
	epoch       atomic.Uint32
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		tasks:       make(map[string]*taskHandle),
		resp:        make(chan commtypes.ControlResp, RESP_CHANNEL_CAPACITY),
		quit:        make(chan struct{}),
		monitorDone: make(chan struct{}),
		progress:    newCheckpointProgress(),
		epochDone:   make(map[uint32]chan struct{}),
		finished:    make(map[string]bool),
		allFinished: make(chan struct{}),
	}
}

// RegisterTask wires one task into the coordinator and returns the channel
// pair to build the task with.
func (c *Coordinator) RegisterTask(info commtypes.TaskInfo, isSource bool) (chan commtypes.ControlMessage, chan commtypes.ControlResp) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := &taskHandle{
		tx:       make(chan commtypes.ControlMessage, CONTROL_CHANNEL_CAPACITY),
		info:     info,
		isSource: isSource,
	}
	c.tasks[info.String()] = h
	return h.tx, c.resp
}

func (c *Coordinator) NumTasks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tasks)
}

// Start launches the response monitor.
func (c *Coordinator) Start() {
	go c.monitor()
}

// Stop shuts the monitor down and waits for it to drain.
func (c *Coordinator) Stop() {
	close(c.quit)
	<-c.monitorDone
}

func (c *Coordinator) monitor() {
	defer close(c.monitorDone)
	for {
		select {
		case r := <-c.resp:
			c.handleResp(r)
		case <-c.quit:
			return
		}
	}
}

func (c *Coordinator) handleResp(r commtypes.ControlResp) {
	switch r.Kind {
	case commtypes.RESP_CHECKPOINT_EVENT:
		ev := *r.CheckpointEvent
		taskID := commtypes.TaskInfo{OperatorID: ev.OperatorID, SubtaskIdx: ev.SubtaskIdx}.String()
		log.Debug().Str("task", taskID).Uint32("epoch", ev.Epoch).
			Stringer("event", ev.EventType).Msg("checkpoint event")
		c.progress.observe(taskID, ev)
		if ev.EventType == commtypes.CHKPT_FINISHED_SYNC {
			c.maybeCompleteEpoch(ev.Epoch)
		}
	case commtypes.RESP_TASK_FINISHED:
		tf := r.TaskFinished
		taskID := commtypes.TaskInfo{OperatorID: tf.OperatorID, SubtaskIdx: tf.SubtaskIdx}.String()
		log.Info().Str("task", taskID).Msg("task reported finished")
		c.mu.Lock()
		c.finished[taskID] = true
		if len(c.finished) == len(c.tasks) {
			select {
			case <-c.allFinished:
			default:
				close(c.allFinished)
			}
		}
		c.mu.Unlock()
	}
}

func (c *Coordinator) taskIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.tasks))
	for id := range c.tasks {
		ids = append(ids, id)
	}
	return ids
}

func (c *Coordinator) maybeCompleteEpoch(epoch uint32) {
	if !c.progress.epochSynced(epoch, c.taskIDs()) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := c.epochDoneLocked(epoch)
	select {
	case <-ch:
	default:
		close(ch)
	}
}

func (c *Coordinator) epochDoneLocked(epoch uint32) chan struct{} {
	ch, ok := c.epochDone[epoch]
	if !ok {
		ch = make(chan struct{})
		c.epochDone[epoch] = ch
	}
	return ch
}

func (c *Coordinator) sendToSources(ctx context.Context, cm commtypes.ControlMessage) error {
	c.mu.Lock()
	handles := make([]*taskHandle, 0, len(c.tasks))
	for _, h := range c.tasks {
		if h.isSource {
			handles = append(handles, h)
		}
	}
	c.mu.Unlock()
	if len(handles) == 0 {
		return xerrors.New("no source tasks registered")
	}
	for _, h := range handles {
		select {
		case h.tx <- cm:
		case <-ctx.Done():
			return xerrors.Errorf("control to %s: %w", h.info, common_errors.ErrShuttingDown)
		}
	}
	return nil
}

// InjectCheckpoint assigns the next epoch and asks every source to emit its
// barrier. It returns the epoch so callers can wait on it.
func (c *Coordinator) InjectCheckpoint(ctx context.Context, thenStop bool) (uint32, error) {
	epoch := c.epoch.Add(1)
	b := commtypes.CheckpointBarrier{Epoch: epoch, ThenStop: thenStop}
	log.Info().Uint32("epoch", epoch).Bool("then_stop", thenStop).Msg("injecting checkpoint")
	if err := c.sendToSources(ctx, commtypes.CheckpointControl(b)); err != nil {
		return 0, err
	}
	return epoch, nil
}

// StopGraceful asks the sources to drain in-flight work and forward a stop
// signal; StopImmediate asks them to cut off right away.
func (c *Coordinator) StopGraceful(ctx context.Context) error {
	return c.sendToSources(ctx, commtypes.StopControl(commtypes.STOP_GRACEFUL))
}

func (c *Coordinator) StopImmediate(ctx context.Context) error {
	return c.sendToSources(ctx, commtypes.StopControl(commtypes.STOP_IMMEDIATE))
}

// DistributeCommit fans a committed epoch's side-effect payloads out to every
// operator task.
func (c *Coordinator) DistributeCommit(ctx context.Context, epoch uint32, data map[string]map[uint32][]byte) error {
	c.mu.Lock()
	handles := make([]*taskHandle, 0, len(c.tasks))
	for _, h := range c.tasks {
		if !h.isSource {
			handles = append(handles, h)
		}
	}
	c.mu.Unlock()
	for _, h := range handles {
		select {
		case h.tx <- commtypes.CommitControl(epoch, data):
		case <-ctx.Done():
			return xerrors.Errorf("commit to %s: %w", h.info, common_errors.ErrShuttingDown)
		}
	}
	return nil
}

// SendLoadCompacted delivers an externally compacted table payload to one
// task.
func (c *Coordinator) SendLoadCompacted(ctx context.Context, taskID string, p *commtypes.CompactionPayload) error {
	c.mu.Lock()
	h, ok := c.tasks[taskID]
	c.mu.Unlock()
	if !ok {
		return xerrors.Errorf("load compacted: unknown task %s", taskID)
	}
	select {
	case h.tx <- commtypes.LoadCompactedControl(p):
		return nil
	case <-ctx.Done():
		return xerrors.Errorf("load compacted to %s: %w", taskID, common_errors.ErrShuttingDown)
	}
}

// WaitCheckpointDone blocks until every task reported FinishedSync for the
// epoch.
func (c *Coordinator) WaitCheckpointDone(ctx context.Context, epoch uint32) error {
	c.mu.Lock()
	ch := c.epochDoneLocked(epoch)
	c.mu.Unlock()
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return xerrors.Errorf("wait checkpoint %d: %w", epoch, ctx.Err())
	}
}

// WaitAllFinished blocks until every registered task reported finished.
func (c *Coordinator) WaitAllFinished(ctx context.Context) error {
	select {
	case <-c.allFinished:
		return nil
	case <-ctx.Done():
		return xerrors.Errorf("wait tasks finished: %w", ctx.Err())
	}
}
