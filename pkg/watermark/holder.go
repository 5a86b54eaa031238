package watermark

import (
	"github.com/moznion/go-optional"
	"golang.org/x/xerrors"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/common_errors"
)

// Holder keeps the last watermark seen per input partition and the merged
// value, the minimum event time over partitions that have reported and are
// not idle. Watermarks are expected to be non-decreasing per partition; a
// regression is the upstream's contract violation and is stored as-is.
type Holder struct {
	last   []optional.Option[commtypes.Watermark]
	merged optional.Option[commtypes.Watermark]
}

func NewHolder(numPartitions int) *Holder {
	return &Holder{
		last:   make([]optional.Option[commtypes.Watermark], numPartitions),
		merged: optional.None[commtypes.Watermark](),
	}
}

// Set stores the partition's watermark and recomputes the merged value. It
// returns Some only when the merged value changed, so callers can suppress
// redundant downstream propagation.
func (h *Holder) Set(partitionIdx int, wm commtypes.Watermark) (optional.Option[commtypes.Watermark], error) {
	if partitionIdx < 0 || partitionIdx >= len(h.last) {
		return optional.None[commtypes.Watermark](),
			xerrors.Errorf("watermark for partition %d of %d: %w",
				partitionIdx, len(h.last), common_errors.ErrPartitionOutOfRange)
	}
	h.last[partitionIdx] = optional.Some(wm)
	merged := h.mergeAll()
	if merged.IsNone() {
		return optional.None[commtypes.Watermark](), nil
	}
	if h.merged.IsSome() && h.merged.Unwrap() == merged.Unwrap() {
		return optional.None[commtypes.Watermark](), nil
	}
	h.merged = merged
	return merged, nil
}

// LastPresent returns the current merged watermark; None before any
// partition reported.
func (h *Holder) LastPresent() optional.Option[commtypes.Watermark] {
	return h.merged
}

func (h *Holder) mergeAll() optional.Option[commtypes.Watermark] {
	reported := false
	haveMin := false
	var min int64
	for _, wm := range h.last {
		if wm.IsNone() {
			continue
		}
		reported = true
		w := wm.Unwrap()
		if w.IsIdle() {
			continue
		}
		if !haveMin || w.TsMs < min {
			haveMin = true
			min = w.TsMs
		}
	}
	if !reported {
		return optional.None[commtypes.Watermark]()
	}
	if !haveMin {
		// every reported partition is idle
		return optional.Some(commtypes.IdleWatermark())
	}
	return optional.Some(commtypes.EventTimeWatermark(min))
}
