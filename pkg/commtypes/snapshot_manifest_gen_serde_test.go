package commtypes

import (
	"testing"
)

func TestSerdeSnapshotManifest(t *testing.T) {
	jsonSerdeG := SnapshotManifestJSONSerdeG{}
	jsonSerde := SnapshotManifestJSONSerde{}
	msgSerdeG := SnapshotManifestMsgpSerdeG{}
	msgSerde := SnapshotManifestMsgpSerde{}
	v := SnapshotManifest{
		Barrier:   CheckpointBarrier{Epoch: 7},
		WmPresent: true,
		Wm:        EventTimeWatermark(1000),
		TakenAtMs: 1662000000123,
		Tables: []TableSnapshot{
			{
				Name:   "counts",
				Kind:   0,
				Keys:   [][]byte{[]byte("a"), []byte("b")},
				Values: [][]byte{[]byte("1"), []byte("2")},
			},
			{
				Name:      "timers",
				Kind:      1,
				TimerTss:  []int64{5, 9},
				TimerKeys: []uint64{11, 12},
				Values:    [][]byte{[]byte("t0"), []byte("t1")},
			},
		},
	}
	GenTestEncodeDecodeDeep[SnapshotManifest](v, t, jsonSerdeG, jsonSerde)
	GenTestEncodeDecodeDeep[SnapshotManifest](v, t, msgSerdeG, msgSerde)
}
