package store

import (
	"github.com/zhangyunhao116/skipmap"

	"streamrun/pkg/commtypes"
)

// TimerEntry is one registered event-time timer.
type TimerEntry struct {
	Value []byte
	TsMs  int64
	Key   uint64
}

type timerKey struct {
	tsMs int64
	key  uint64
}

func timerKeyLess(a, b timerKey) bool {
	if a.tsMs != b.tsMs {
		return a.tsMs < b.tsMs
	}
	return a.key < b.key
}

// TimerTable holds event-time timers ordered by firing time. The execution
// loop expires entries when the merged watermark advances past them.
// Registering the same (tsMs, key) twice overwrites the value.
type TimerTable struct {
	entries *skipmap.FuncMap[timerKey, []byte]
	name    string
}

func NewTimerTable(name string) *TimerTable {
	return &TimerTable{
		name:    name,
		entries: skipmap.NewFunc[timerKey, []byte](timerKeyLess),
	}
}

func (tt *TimerTable) Name() string {
	return tt.name
}

func (tt *TimerTable) Register(tsMs int64, key uint64, value []byte) {
	tt.entries.Store(timerKey{tsMs: tsMs, key: key}, value)
}

func (tt *TimerTable) Len() int {
	return tt.entries.Len()
}

// ExpireBefore removes and returns, in firing order, every timer with
// TsMs <= tsMs.
func (tt *TimerTable) ExpireBefore(tsMs int64) []TimerEntry {
	var fired []TimerEntry
	tt.entries.Range(func(k timerKey, value []byte) bool {
		if k.tsMs > tsMs {
			return false
		}
		fired = append(fired, TimerEntry{TsMs: k.tsMs, Key: k.key, Value: value})
		return true
	})
	for _, e := range fired {
		tt.entries.Delete(timerKey{tsMs: e.TsMs, key: e.Key})
	}
	return fired
}

func (tt *TimerTable) Snapshot() commtypes.TableSnapshot {
	snap := commtypes.TableSnapshot{
		Name:      tt.name,
		Kind:      uint8(TABLE_TIMER),
		TimerTss:  make([]int64, 0, tt.entries.Len()),
		TimerKeys: make([]uint64, 0, tt.entries.Len()),
		Values:    make([][]byte, 0, tt.entries.Len()),
	}
	tt.entries.Range(func(k timerKey, value []byte) bool {
		v := make([]byte, len(value))
		copy(v, value)
		snap.TimerTss = append(snap.TimerTss, k.tsMs)
		snap.TimerKeys = append(snap.TimerKeys, k.key)
		snap.Values = append(snap.Values, v)
		return true
	})
	return snap
}

func (tt *TimerTable) Restore(snap commtypes.TableSnapshot) error {
	tt.entries.Range(func(k timerKey, value []byte) bool {
		tt.entries.Delete(k)
		return true
	})
	for i, ts := range snap.TimerTss {
		tt.entries.Store(timerKey{tsMs: ts, key: snap.TimerKeys[i]}, snap.Values[i])
	}
	return nil
}
