package input_queue

import (
	"reflect"

	"streamrun/pkg/data_structure"
	"streamrun/pkg/debug"
)

// Multiplexer merges the task's partition queues into one readiness set.
// Consuming an item removes the queue from the active set; the caller must
// Push it again to keep consuming from that partition. Withholding the Push
// is how per-partition backpressure (barrier alignment blocking) works.
//
// Messages of a single partition are delivered in channel order; across
// partitions whichever queue is ready may be chosen.
type Multiplexer struct {
	active     []*PartitionQueue
	cases      []reflect.SelectCase
	closed     data_structure.IntSet
	registered data_structure.IntSet
}

func NewMultiplexer() *Multiplexer {
	return &Multiplexer{
		closed:     data_structure.NewIntSet(),
		registered: data_structure.NewIntSet(),
	}
}

// Push (re-)registers a queue into the active set.
func (m *Multiplexer) Push(q *PartitionQueue) {
	debug.Assert(!m.closed.Has(q.Index()), "pushed a closed partition queue")
	m.registered.Add(q.Index())
	m.active = append(m.active, q)
	m.cases = append(m.cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(q.Chan()),
	})
}

// Cases returns the select cases of the active set, parallel to the queue
// order used by Take. The slice is only rebuilt when membership changes.
func (m *Multiplexer) Cases() []reflect.SelectCase {
	return m.cases
}

// Take removes the queue at the given active-set position and returns it.
// caseIdx is the position within Cases, not the partition index.
func (m *Multiplexer) Take(caseIdx int) *PartitionQueue {
	debug.Assert(caseIdx >= 0 && caseIdx < len(m.active), "multiplexer case index out of range")
	q := m.active[caseIdx]
	last := len(m.active) - 1
	m.active[caseIdx] = m.active[last]
	m.active = m.active[:last]
	m.cases[caseIdx] = m.cases[last]
	m.cases = m.cases[:last]
	return q
}

// MarkClosed records that a queue's underlying channel closed. The queue
// must already have been taken out of the active set.
func (m *Multiplexer) MarkClosed(q *PartitionQueue) {
	m.closed.Add(q.Index())
}

// AllClosed reports exhaustion: every queue ever registered has closed. A
// queue held aside by the caller is not exhausted.
func (m *Multiplexer) AllClosed() bool {
	if len(m.registered) == 0 {
		return false
	}
	for idx := range m.registered {
		if !m.closed.Has(idx) {
			return false
		}
	}
	return true
}

func (m *Multiplexer) NumActive() int {
	return len(m.active)
}
