package env_config

import (
	"fmt"
	"os"
)

var (
	SKIPMAP_KV    = checkSkipmapKV()
	DUMP_SNAPSHOT = checkDumpSnapshot()
	REPORT_STATS  = checkReportStats()
)

func boolFromEnv(name string) bool {
	s := os.Getenv(name)
	return s == "true" || s == "1"
}

// SKIPMAP_KV backs key value tables with the skipmap implementation instead
// of the btree one.
func checkSkipmapKV() bool {
	skipmapKV := boolFromEnv("SKIPMAP_KV")
	fmt.Fprintf(os.Stderr, "skipmap kv: %v\n", skipmapKV)
	return skipmapKV
}

func checkDumpSnapshot() bool {
	dumpSnapshot := boolFromEnv("DUMP_SNAPSHOT")
	fmt.Fprintf(os.Stderr, "dump snapshot: %v\n", dumpSnapshot)
	return dumpSnapshot
}

func checkReportStats() bool {
	reportStats := boolFromEnv("REPORT_STATS")
	fmt.Fprintf(os.Stderr, "report stats: %v\n", reportStats)
	return reportStats
}

// SnapshotBackend selects the snapshot store implementation: "redis",
// "minio" or "" / "mem" for the in-memory store.
func SnapshotBackend() string {
	return os.Getenv("SNAPSHOT_BACKEND")
}
