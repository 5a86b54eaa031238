package processor

import (
	"context"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
)

// MapOperator applies a row transform and forwards the result, re-keyed to
// the transformed row's key.
type MapOperator struct {
	operator.BaseOperator
	name   string
	mapper Mapper
}

func NewMapOperator(name string, mapper Mapper) *MapOperator {
	return &MapOperator{name: name, mapper: mapper}
}

func (o *MapOperator) Name() string { return o.name }

func (o *MapOperator) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	n := tctx.NumOutPartitions()
	parts := make([]*commtypes.RowBatch, n)
	for _, r := range batch.Rows {
		mapped, err := o.mapper.Map(r)
		if err != nil {
			return err
		}
		idx := tctx.PartitionForKey(mapped.Key)
		if parts[idx] == nil {
			parts[idx] = &commtypes.RowBatch{}
		}
		parts[idx].Rows = append(parts[idx].Rows, mapped)
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

var _ = operator.StreamOperator(&MapOperator{})
