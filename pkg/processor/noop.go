package processor

import (
	"context"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
)

// NoOpOperator forwards batches unchanged on the partition they arrived on.
// Useful as a pass-through stage when wiring pipelines.
type NoOpOperator struct {
	operator.BaseOperator
	name string
}

func NewNoOpOperator(name string) *NoOpOperator {
	return &NoOpOperator{name: name}
}

func (o *NoOpOperator) Name() string { return o.name }

func (o *NoOpOperator) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	return tctx.SendToPartition(ctx, partitionIdx%tctx.NumOutPartitions(), commtypes.DataMessage(batch))
}

var _ = operator.StreamOperator(&NoOpOperator{})
