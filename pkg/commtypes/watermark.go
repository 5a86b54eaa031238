//go:generate msgp
//msgp:ignore WatermarkJSONSerde WatermarkMsgpSerde WatermarkJSONSerdeG WatermarkMsgpSerdeG
package commtypes

import "fmt"

type WatermarkKind uint8

const (
	WATERMARK_EVENT_TIME = WatermarkKind(iota)
	WATERMARK_IDLE
)

// Watermark asserts that no record with event time at or below TsMs will
// arrive on the partition it was observed on. An idle watermark means the
// partition has nothing to assert and must not hold back the merged value.
type Watermark struct {
	TsMs int64         `json:"ts,omitempty" msg:"ts"`
	Kind WatermarkKind `json:"kind,omitempty" msg:"kind"`
}

func EventTimeWatermark(tsMs int64) Watermark {
	return Watermark{TsMs: tsMs, Kind: WATERMARK_EVENT_TIME}
}

func IdleWatermark() Watermark {
	return Watermark{Kind: WATERMARK_IDLE}
}

func (w Watermark) IsIdle() bool {
	return w.Kind == WATERMARK_IDLE
}

func (w Watermark) String() string {
	if w.Kind == WATERMARK_IDLE {
		return "Watermark(Idle)"
	}
	return fmt.Sprintf("Watermark(%d)", w.TsMs)
}
