package hashfuncs

import (
	"github.com/spaolacci/murmur3"

	"streamrun/pkg/debug"
)

// PartitionForKey routes a record key to one of numPartitions downstream
// partitions. Keyed routing must be stable across task restarts, so the hash
// function is fixed rather than seeded per process.
func PartitionForKey(key []byte, numPartitions int) int {
	debug.Assert(numPartitions > 0, "numPartitions must be positive")
	if numPartitions == 1 {
		return 0
	}
	h := murmur3.Sum32(key)
	return int(h % uint32(numPartitions))
}

// PartitionForKeyString is PartitionForKey for string keys without forcing a
// copy at the call site.
func PartitionForKeyString(key string, numPartitions int) int {
	debug.Assert(numPartitions > 0, "numPartitions must be positive")
	if numPartitions == 1 {
		return 0
	}
	h := murmur3.Sum32([]byte(key))
	return int(h % uint32(numPartitions))
}
