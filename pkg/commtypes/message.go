//go:generate msgp
//msgp:ignore StreamMessage SignalMessage RowBatchJSONSerde RowBatchMsgpSerde RowBatchJSONSerdeG RowBatchMsgpSerdeG
package commtypes

import "fmt"

// Row is one record. The real engine moves columnar batches; Row keeps just
// enough shape (key, opaque value, event time) for routing, watermarking and
// the boundary sources/sinks.
type Row struct {
	Key   []byte `json:"k,omitempty" msg:"k"`
	Value []byte `json:"v,omitempty" msg:"v"`
	TsMs  int64  `json:"ts,omitempty" msg:"ts"`
}

type RowBatch struct {
	Rows []Row `json:"rows,omitempty" msg:"rows"`
}

func (b *RowBatch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Rows)
}

// MaxTsMs returns the largest event time in the batch; ok is false for an
// empty batch.
func (b *RowBatch) MaxTsMs() (int64, bool) {
	if b.Len() == 0 {
		return 0, false
	}
	max := b.Rows[0].TsMs
	for _, r := range b.Rows[1:] {
		if r.TsMs > max {
			max = r.TsMs
		}
	}
	return max, true
}

type SignalKind uint8

const (
	BARRIER = SignalKind(iota)
	WATERMARK
	STOP
	END_OF_DATA
)

func (k SignalKind) String() string {
	switch k {
	case BARRIER:
		return "Barrier"
	case WATERMARK:
		return "Watermark"
	case STOP:
		return "Stop"
	case END_OF_DATA:
		return "EndOfData"
	default:
		return fmt.Sprintf("SignalKind(%d)", uint8(k))
	}
}

// SignalMessage is the in-band control variant of a stream message. Barrier
// and Watermark are only meaningful for the matching kind.
type SignalMessage struct {
	Kind      SignalKind
	Barrier   CheckpointBarrier
	Watermark Watermark
}

func BarrierSignal(b CheckpointBarrier) SignalMessage {
	return SignalMessage{Kind: BARRIER, Barrier: b}
}

func WatermarkSignal(w Watermark) SignalMessage {
	return SignalMessage{Kind: WATERMARK, Watermark: w}
}

func StopSignal() SignalMessage {
	return SignalMessage{Kind: STOP}
}

func EndOfDataSignal() SignalMessage {
	return SignalMessage{Kind: END_OF_DATA}
}

func (s SignalMessage) String() string {
	switch s.Kind {
	case BARRIER:
		return fmt.Sprintf("Signal(%s)", s.Barrier)
	case WATERMARK:
		return fmt.Sprintf("Signal(%s)", s.Watermark)
	default:
		return fmt.Sprintf("Signal(%s)", s.Kind)
	}
}

// StreamMessage is what travels on the partition channels between tasks.
// Exactly one of Batch and Signal is set.
type StreamMessage struct {
	Batch  *RowBatch
	Signal *SignalMessage
}

func DataMessage(b *RowBatch) StreamMessage {
	return StreamMessage{Batch: b}
}

func SignalOf(s SignalMessage) StreamMessage {
	sig := s
	return StreamMessage{Signal: &sig}
}

func (m StreamMessage) IsSignal() bool {
	return m.Signal != nil
}
