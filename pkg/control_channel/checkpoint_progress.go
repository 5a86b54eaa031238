package control_channel

import (
	"github.com/rs/zerolog/log"
	"github.com/zhangyunhao116/skipmap"
	"github.com/zhangyunhao116/skipset"

	"streamrun/pkg/commtypes"
)

// checkpointProgress tracks per-task checkpoint events for the coordinator:
// which epochs each task has fully synced, and whether events of one epoch
// arrive in protocol order. The synced sets are lock-free so the monitor
// goroutine can update them while callers poll.
type checkpointProgress struct {
	// task id -> set of epochs the task reported FinishedSync for
	synced *skipmap.StringMap[*skipset.Uint32Set]
	// task id -> last event seen for the task's in-flight epoch
	lastEvent map[string]commtypes.CheckpointEvent
}

func newCheckpointProgress() *checkpointProgress {
	return &checkpointProgress{
		synced:    skipmap.NewString[*skipset.Uint32Set](),
		lastEvent: make(map[string]commtypes.CheckpointEvent),
	}
}

// observe validates the event against the task's previous one and records a
// FinishedSync. Out-of-order events are a task bug; they are logged and still
// recorded so one misbehaving task cannot wedge the epoch bookkeeping.
func (p *checkpointProgress) observe(taskID string, ev commtypes.CheckpointEvent) {
	last, seen := p.lastEvent[taskID]
	if seen && last.Epoch == ev.Epoch && ev.EventType <= last.EventType {
		log.Error().Str("task", taskID).Uint32("epoch", ev.Epoch).
			Stringer("got", ev.EventType).Stringer("last", last.EventType).
			Msg("checkpoint events out of order")
	}
	p.lastEvent[taskID] = ev
	if ev.EventType == commtypes.CHKPT_FINISHED_SYNC {
		epochs, _ := p.synced.LoadOrStore(taskID, skipset.NewUint32())
		epochs.Add(ev.Epoch)
	}
}

// epochSynced reports whether every listed task finished syncing the epoch.
func (p *checkpointProgress) epochSynced(epoch uint32, taskIDs []string) bool {
	for _, id := range taskIDs {
		epochs, ok := p.synced.Load(id)
		if !ok || !epochs.Contains(epoch) {
			return false
		}
	}
	return true
}
