package source_sink

import (
	"context"

	"github.com/gammazero/deque"
	"github.com/moznion/go-optional"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
	"streamrun/pkg/utils/syncutils"
)

// CollectSink buffers everything it consumes. It is the terminal operator for
// tests and demos; Rows may be read from another goroutine once the task
// finished.
type CollectSink struct {
	operator.BaseOperator
	mu   syncutils.Mutex
	name string
	buf  *deque.Deque[commtypes.Row]
	wms  []commtypes.Watermark
}

func NewCollectSink(name string) *CollectSink {
	return &CollectSink{name: name, buf: deque.New[commtypes.Row]()}
}

func (s *CollectSink) Name() string { return s.name }

func (s *CollectSink) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	s.mu.Lock()
	for _, r := range batch.Rows {
		s.buf.PushBack(r)
	}
	s.mu.Unlock()
	return nil
}

func (s *CollectSink) HandleWatermark(wm commtypes.Watermark, tctx *exec_context.TaskContext) (optional.Option[commtypes.Watermark], error) {
	s.mu.Lock()
	s.wms = append(s.wms, wm)
	s.mu.Unlock()
	return optional.Some(wm), nil
}

// Rows drains and returns everything collected so far in arrival order.
func (s *CollectSink) Rows() []commtypes.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]commtypes.Row, 0, s.buf.Len())
	for s.buf.Len() > 0 {
		rows = append(rows, s.buf.PopFront())
	}
	return rows
}

// Watermarks returns the watermarks observed so far.
func (s *CollectSink) Watermarks() []commtypes.Watermark {
	s.mu.Lock()
	defer s.mu.Unlock()
	wms := make([]commtypes.Watermark, len(s.wms))
	copy(wms, s.wms)
	return wms
}
