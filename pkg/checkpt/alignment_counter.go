package checkpt

import (
	"github.com/rs/zerolog/log"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/data_structure"
)

// AlignmentCounter tracks which input partitions have delivered the barrier
// of the in-flight checkpoint epoch. A partition that has delivered its
// barrier is blocked: its post-barrier messages must not be consumed until
// every partition has aligned, or they would leak into the snapshot cut.
type AlignmentCounter struct {
	marked        data_structure.IntSet
	epoch         uint32
	numPartitions int
}

func NewAlignmentCounter(numPartitions int) *AlignmentCounter {
	return &AlignmentCounter{
		marked:        data_structure.NewIntSet(),
		numPartitions: numPartitions,
	}
}

// Mark records that partitionIdx delivered the barrier. It returns true
// exactly once per epoch, on the transition when the last distinct partition
// reports; the counter then resets to all-clear. A duplicate barrier from an
// already-marked partition does not count. A barrier for a different epoch
// while an alignment is in flight is an upstream protocol violation; it is
// logged and ignored.
func (c *AlignmentCounter) Mark(partitionIdx int, b commtypes.CheckpointBarrier) bool {
	if len(c.marked) == 0 {
		c.epoch = b.Epoch
	} else if b.Epoch != c.epoch {
		log.Error().
			Uint32("in_flight_epoch", c.epoch).
			Uint32("got_epoch", b.Epoch).
			Int("partition", partitionIdx).
			Msg("barrier for a different epoch while alignment in flight")
		return false
	}
	if c.marked.Has(partitionIdx) {
		return false
	}
	c.marked.Add(partitionIdx)
	if len(c.marked) == c.numPartitions {
		c.marked = data_structure.NewIntSet()
		return true
	}
	return false
}

// IsBlocked reports whether the partition already delivered the in-flight
// epoch's barrier and must be withheld from consumption.
func (c *AlignmentCounter) IsBlocked(partitionIdx int) bool {
	return c.marked.Has(partitionIdx)
}

// AllClear reports that no partition is withheld, i.e. there is no alignment
// in flight.
func (c *AlignmentCounter) AllClear() bool {
	return len(c.marked) == 0
}
