package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/control_channel"
	"streamrun/pkg/env_config"
	"streamrun/pkg/processor"
	"streamrun/pkg/snapshot_store"
	"streamrun/pkg/source_sink"
	"streamrun/pkg/stream_task"
)

var (
	FLAGS_events          int
	FLAGS_keys            int
	FLAGS_checkpoint_secs int
	FLAGS_duration        int
	FLAGS_serde           string
)

func serdeFormat() commtypes.SerdeFormat {
	if FLAGS_serde == "json" {
		return commtypes.JSON
	}
	return commtypes.MSGP
}

func snapshotStore(ctx context.Context) (snapshot_store.SnapshotStore, error) {
	switch env_config.SnapshotBackend() {
	case "redis":
		return snapshot_store.NewRedisSnapshotStore(), nil
	case "minio":
		mc, err := snapshot_store.NewMinioSnapshotStore()
		if err != nil {
			return nil, err
		}
		if err := mc.CreateSnapshotBucket(ctx); err != nil {
			return nil, err
		}
		return mc, nil
	default:
		return snapshot_store.NewMemorySnapshotStore(), nil
	}
}

// eventGen emits one row per call round-robining over the key space, with
// event time advancing one ms per row.
func eventGen() source_sink.NextBatch {
	seq := 0
	return func() (*commtypes.RowBatch, optional.Option[commtypes.Watermark], bool) {
		if seq >= FLAGS_events {
			return nil, optional.None[commtypes.Watermark](), false
		}
		key := []byte("key" + strconv.Itoa(seq%FLAGS_keys))
		ts := int64(seq)
		seq++
		batch := &commtypes.RowBatch{Rows: []commtypes.Row{{Key: key, Value: key, TsMs: ts}}}
		return batch, optional.Some(commtypes.EventTimeWatermark(ts)), true
	}
}

func run(ctx context.Context) error {
	ss, err := snapshotStore(ctx)
	if err != nil {
		return err
	}
	coord := control_channel.NewCoordinator()

	gen := source_sink.NewGeneratorSource("gen", eventGen(), 0)
	count := processor.NewKeyedCountOperator("count")
	sink := source_sink.NewCollectSink("sink")

	srcToCount := make(chan commtypes.StreamMessage, 1024)
	countToSink := make(chan commtypes.StreamMessage, 1024)

	srcInfo := commtypes.TaskInfo{OperatorID: "gen", OperatorName: "gen", SubtaskIdx: 0, Parallelism: 1}
	srcRx, srcResp := coord.RegisterTask(srcInfo, true)
	srcTask, err := stream_task.NewStreamTaskBuilder().
		TaskInfo(srcInfo).
		Source(gen).
		Outputs([]chan<- commtypes.StreamMessage{srcToCount}).
		Control(srcRx, srcResp).
		SnapshotStore(ss).
		SerdeFormat(serdeFormat()).
		Build()
	if err != nil {
		return err
	}

	countInfo := commtypes.TaskInfo{OperatorID: "count", OperatorName: "count", SubtaskIdx: 0, Parallelism: 1}
	countRx, countResp := coord.RegisterTask(countInfo, false)
	countTask, err := stream_task.NewStreamTaskBuilder().
		TaskInfo(countInfo).
		Operator(count).
		Inputs([]<-chan commtypes.StreamMessage{srcToCount}).
		Outputs([]chan<- commtypes.StreamMessage{countToSink}).
		Control(countRx, countResp).
		SnapshotStore(ss).
		SerdeFormat(serdeFormat()).
		Build()
	if err != nil {
		return err
	}

	sinkInfo := commtypes.TaskInfo{OperatorID: "sink", OperatorName: "sink", SubtaskIdx: 0, Parallelism: 1}
	sinkRx, sinkResp := coord.RegisterTask(sinkInfo, false)
	sinkTask, err := stream_task.NewStreamTaskBuilder().
		TaskInfo(sinkInfo).
		Operator(sink).
		Inputs([]<-chan commtypes.StreamMessage{countToSink}).
		Control(sinkRx, sinkResp).
		SnapshotStore(ss).
		SerdeFormat(serdeFormat()).
		Build()
	if err != nil {
		return err
	}

	coord.Start()
	defer coord.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srcTask.Start(gctx) })
	g.Go(func() error { return countTask.Start(gctx) })
	g.Go(func() error { return sinkTask.Start(gctx) })

	ticker := time.NewTicker(time.Duration(FLAGS_checkpoint_secs) * time.Second)
	defer ticker.Stop()
	deadline := time.After(time.Duration(FLAGS_duration) * time.Second)
	done := make(chan error, 1)
	go func() { done <- coord.WaitAllFinished(ctx) }()

	for {
		select {
		case <-ticker.C:
			epoch, err := coord.InjectCheckpoint(ctx, false)
			if err != nil {
				return err
			}
			if err := coord.WaitCheckpointDone(ctx, epoch); err != nil {
				return err
			}
			log.Info().Uint32("epoch", epoch).Msg("checkpoint complete")
		case <-deadline:
			log.Info().Msg("duration reached, stopping gracefully")
			if err := coord.StopGraceful(ctx); err != nil {
				return err
			}
			if err := coord.WaitAllFinished(ctx); err != nil {
				return err
			}
			if err := g.Wait(); err != nil {
				return err
			}
			report(sink)
			return nil
		case err := <-done:
			// the generator drained on its own
			if err != nil {
				return err
			}
			if err := g.Wait(); err != nil {
				return err
			}
			report(sink)
			return nil
		}
	}
}

func report(sink *source_sink.CollectSink) {
	counts := make(map[string]uint64)
	for _, r := range sink.Rows() {
		counts[string(r.Key)] = processor.DecodeCount(r.Value)
	}
	for k, c := range counts {
		fmt.Fprintf(os.Stderr, "%s: %d\n", k, c)
	}
}

func main() {
	flag.IntVar(&FLAGS_events, "events", 100000, "number of events to generate")
	flag.IntVar(&FLAGS_keys, "keys", 100, "distinct key count")
	flag.IntVar(&FLAGS_checkpoint_secs, "checkpoint_every", 5, "seconds between checkpoints")
	flag.IntVar(&FLAGS_duration, "duration", 60, "max run duration in seconds")
	flag.StringVar(&FLAGS_serde, "serde", "msgp", "serde format: msgp or json")
	flag.Parse()

	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}
}
