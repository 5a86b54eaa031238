package input_queue

import (
	"streamrun/pkg/commtypes"
)

// PartitionQueue wraps one raw input channel as a restartable pull source.
// The partition index is fixed at construction and identifies the upstream
// partition for the lifetime of the task.
type PartitionQueue struct {
	ch  <-chan commtypes.StreamMessage
	idx int
}

func NewPartitionQueue(idx int, ch <-chan commtypes.StreamMessage) *PartitionQueue {
	return &PartitionQueue{idx: idx, ch: ch}
}

func (q *PartitionQueue) Index() int {
	return q.idx
}

func (q *PartitionQueue) Chan() <-chan commtypes.StreamMessage {
	return q.ch
}
