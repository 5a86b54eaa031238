package source_sink

import (
	"context"
	"sync/atomic"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
)

const KAFKA_FLUSH_TIMEOUT_MS = 30 * 1000

// KafkaSink writes every consumed row to a kafka topic. Produces are async;
// HandleCheckpoint flushes so a finished epoch implies the rows of its cut
// were acked by the broker.
type KafkaSink struct {
	operator.BaseOperator
	name     string
	broker   string
	topic    string
	flushMs  int
	producer *kafka.Producer
	acked    int32
}

func NewKafkaSink(name string, broker string, topic string, flushMs int) *KafkaSink {
	return &KafkaSink{name: name, broker: broker, topic: topic, flushMs: flushMs}
}

func (s *KafkaSink) Name() string { return s.name }

func (s *KafkaSink) OnStart(ctx context.Context, tctx *exec_context.TaskContext) error {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":                     s.broker,
		"go.produce.channel.size":               100000,
		"go.events.channel.size":                100000,
		"acks":                                  "all",
		"batch.size":                            131072,
		"linger.ms":                             s.flushMs,
		"max.in.flight.requests.per.connection": 5,
	})
	if err != nil {
		return err
	}
	s.producer = p
	go s.processReturnEvents()
	return nil
}

func (s *KafkaSink) processReturnEvents() {
	for e := range s.producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				log.Error().Msgf("delivery failed: %v", ev.TopicPartition)
			}
			atomic.AddInt32(&s.acked, 1)
		default:
		}
	}
}

func (s *KafkaSink) ProcessBatch(ctx context.Context, partitionIdx int, numPartitions int,
	batch *commtypes.RowBatch, tctx *exec_context.TaskContext,
) error {
	for _, r := range batch.Rows {
		err := s.producer.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &s.topic, Partition: kafka.PartitionAny},
			Key:            r.Key,
			Value:          r.Value,
		}, nil)
		if err != nil {
			return xerrors.Errorf("produce to %s: %w", s.topic, err)
		}
	}
	return nil
}

func (s *KafkaSink) HandleCheckpoint(b commtypes.CheckpointBarrier, tctx *exec_context.TaskContext) error {
	for remaining := s.producer.Flush(KAFKA_FLUSH_TIMEOUT_MS); remaining != 0; {
		remaining = s.producer.Flush(KAFKA_FLUSH_TIMEOUT_MS)
	}
	return nil
}

func (s *KafkaSink) OnClose(final optional.Option[commtypes.SignalMessage], tctx *exec_context.TaskContext) error {
	if s.producer != nil {
		s.producer.Flush(KAFKA_FLUSH_TIMEOUT_MS)
		s.producer.Close()
	}
	return nil
}

// Acked returns how many produced rows the broker has acknowledged.
func (s *KafkaSink) Acked() int32 {
	return atomic.LoadInt32(&s.acked)
}

var _ = operator.StreamOperator(&KafkaSink{})
