package processor

import (
	"context"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
)

// FilterOperator forwards only the rows the predicate asserts, keeping the
// upstream keying so rows stay on their partition.
type FilterOperator struct {
	operator.BaseOperator
	name string
	pred Predicate
}

func NewFilterOperator(name string, pred Predicate) *FilterOperator {
	return &FilterOperator{name: name, pred: pred}
}

func (o *FilterOperator) Name() string { return o.name }

func (o *FilterOperator) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	n := tctx.NumOutPartitions()
	parts := make([]*commtypes.RowBatch, n)
	for _, r := range batch.Rows {
		r := r
		keep, err := o.pred.Assert(&r)
		if err != nil {
			return err
		}
		if !keep {
			continue
		}
		idx := tctx.PartitionForKey(r.Key)
		if parts[idx] == nil {
			parts[idx] = &commtypes.RowBatch{}
		}
		parts[idx].Rows = append(parts[idx].Rows, r)
	}
	for idx, pb := range parts {
		if pb == nil {
			continue
		}
		if err := tctx.SendToPartition(ctx, idx, commtypes.DataMessage(pb)); err != nil {
			return err
		}
	}
	return nil
}

var _ = operator.StreamOperator(&FilterOperator{})
