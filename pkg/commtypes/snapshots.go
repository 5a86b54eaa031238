//go:generate msgp
//msgp:ignore SnapshotManifestJSONSerde SnapshotManifestMsgpSerde SnapshotManifestJSONSerdeG SnapshotManifestMsgpSerdeG
package commtypes

// TableSnapshot captures one table's full contents at a barrier. Key/value
// tables fill Keys/Values; timer tables fill TimerTss/TimerKeys/Values.
type TableSnapshot struct {
	Name      string   `json:"name" msg:"name"`
	Kind      uint8    `json:"kind" msg:"kind"`
	Keys      [][]byte `json:"keys,omitempty" msg:"keys"`
	Values    [][]byte `json:"vals,omitempty" msg:"vals"`
	TimerTss  []int64  `json:"ttss,omitempty" msg:"ttss"`
	TimerKeys []uint64 `json:"tkeys,omitempty" msg:"tkeys"`
}

// SnapshotManifest is the unit persisted per task per epoch. WmPresent guards
// Wm since a task may checkpoint before any watermark arrived.
type SnapshotManifest struct {
	Barrier   CheckpointBarrier `json:"barrier" msg:"barrier"`
	WmPresent bool              `json:"wmp" msg:"wmp"`
	Wm        Watermark         `json:"wm" msg:"wm"`
	TakenAtMs int64             `json:"takenat" msg:"takenat"`
	Tables    []TableSnapshot   `json:"tables,omitempty" msg:"tables"`
}
