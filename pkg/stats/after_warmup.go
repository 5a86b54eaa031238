package stats

import (
	"time"

	"streamrun/pkg/debug"
)

type Warmup struct {
	initial          time.Time
	afterWarmupStart time.Time
	warmupTime       time.Duration
	afterWarmup      bool
}

func NewWarmupChecker(warmupTime time.Duration) Warmup {
	afterWarmup := false
	if warmupTime == 0 {
		afterWarmup = true
	}
	return Warmup{
		warmupTime:  warmupTime,
		afterWarmup: afterWarmup,
	}
}

func (w *Warmup) Check() {
	if !w.afterWarmup && time.Since(w.initial) >= w.warmupTime {
		w.afterWarmup = true
		w.afterWarmupStart = time.Now()
	}
}

func (w *Warmup) AfterWarmup() bool {
	return w.afterWarmup
}

func (w *Warmup) StartWarmup() {
	w.initial = time.Now()
	if w.afterWarmup {
		w.afterWarmupStart = w.initial
	}
}

func (w *Warmup) GetStartTime() time.Time {
	return w.initial
}

func (w *Warmup) ElapsedAfterWarmup() time.Duration {
	return time.Since(w.afterWarmupStart)
}

func (w *Warmup) ElapsedSinceInitial() time.Duration {
	debug.Assert(!w.initial.IsZero(), "Warmup not started")
	return time.Since(w.initial)
}
