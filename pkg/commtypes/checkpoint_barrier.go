//go:generate msgp
//msgp:ignore CheckpointBarrierJSONSerde CheckpointBarrierMsgpSerde CheckpointBarrierJSONSerdeG CheckpointBarrierMsgpSerdeG
package commtypes

import "fmt"

// CheckpointBarrier is the in-band snapshot marker. The same epoch must reach
// a task on every input partition before its alignment completes.
type CheckpointBarrier struct {
	Epoch    uint32 `json:"ep" msg:"ep"`
	ThenStop bool   `json:"tstop,omitempty" msg:"tstop"`
}

func (b CheckpointBarrier) String() string {
	return fmt.Sprintf("CheckpointBarrier(epoch=%d, thenStop=%v)", b.Epoch, b.ThenStop)
}
