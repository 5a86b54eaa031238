package stats

import "time"

const DEFAULT_WARMUP_DURATION = 10 * time.Second

// TaskCounters groups the per-task counters the execution loop ticks while
// consuming input. AtomicCounter is used so harness code may read them from
// another goroutine while the task runs.
type TaskCounters struct {
	BatchesIn   AtomicCounter
	RowsIn      AtomicCounter
	MessagesOut AtomicCounter
	Watermarks  AtomicCounter
	Barriers    AtomicCounter
	Checkpoints AtomicCounter
	Ticks       AtomicCounter

	warmup Warmup
}

func NewTaskCounters(taskId string) *TaskCounters {
	return &TaskCounters{
		BatchesIn:   NewAtomicCounter(taskId + "_batches_in"),
		RowsIn:      NewAtomicCounter(taskId + "_rows_in"),
		MessagesOut: NewAtomicCounter(taskId + "_messages_out"),
		Watermarks:  NewAtomicCounter(taskId + "_watermarks"),
		Barriers:    NewAtomicCounter(taskId + "_barriers"),
		Checkpoints: NewAtomicCounter(taskId + "_checkpoints"),
		Ticks:       NewAtomicCounter(taskId + "_ticks"),
		warmup:      NewWarmupChecker(DEFAULT_WARMUP_DURATION),
	}
}

// StartWarmup marks the task's start; periodic reporting stays quiet until
// the warmup window passes so startup noise does not skew the rates.
func (c *TaskCounters) StartWarmup() {
	c.warmup.StartWarmup()
}

func (c *TaskCounters) AfterWarmup() bool {
	c.warmup.Check()
	return c.warmup.AfterWarmup()
}

func (c *TaskCounters) ReportAll() {
	c.BatchesIn.Report()
	c.RowsIn.Report()
	c.MessagesOut.Report()
	c.Watermarks.Report()
	c.Barriers.Report()
	c.Checkpoints.Report()
	c.Ticks.Report()
}
