package source_sink

import (
	"context"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/moznion/go-optional"
	"github.com/rs/zerolog/log"

	"streamrun/pkg/commtypes"
	"streamrun/pkg/exec_context"
	"streamrun/pkg/operator"
)

const (
	KAFKA_POLL_TIMEOUT_MS  = 100
	KAFKA_SOURCE_BATCH_MAX = 1024
)

// KafkaSource feeds a pipeline from a kafka topic. Event time is the kafka
// message timestamp; the source asserts a watermark at the max timestamp seen
// after every batch, and an idle watermark when a poll comes back empty.
type KafkaSource struct {
	operator.BaseSource
	name     string
	broker   string
	topic    string
	groupID  string
	consumer *kafka.Consumer
	maxTsMs  int64
	idle     bool
}

func NewKafkaSource(name string, broker string, topic string, groupID string) *KafkaSource {
	return &KafkaSource{name: name, broker: broker, topic: topic, groupID: groupID, maxTsMs: -1}
}

func (s *KafkaSource) Name() string { return s.name }

func (s *KafkaSource) OnStart(ctx context.Context, tctx *exec_context.TaskContext) error {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": s.broker,
		"group.id":          s.groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return err
	}
	if err := c.SubscribeTopics([]string{s.topic}, nil); err != nil {
		c.Close()
		return err
	}
	s.consumer = c
	return nil
}

func (s *KafkaSource) Run(ctx context.Context, tctx *exec_context.TaskContext) (operator.SourceFinishType, error) {
	gen := NewGeneratorSource(s.name, s.poll, 0)
	return gen.Run(ctx, tctx)
}

// poll pulls up to one batch worth of messages off the consumer.
func (s *KafkaSource) poll() (*commtypes.RowBatch, optional.Option[commtypes.Watermark], bool) {
	batch := &commtypes.RowBatch{}
	for len(batch.Rows) < KAFKA_SOURCE_BATCH_MAX {
		ev := s.consumer.Poll(KAFKA_POLL_TIMEOUT_MS)
		if ev == nil {
			break
		}
		switch m := ev.(type) {
		case *kafka.Message:
			if m.TopicPartition.Error != nil {
				log.Error().Msgf("consume failed: %v", m.TopicPartition)
				continue
			}
			ts := m.Timestamp.UnixMilli()
			if ts > s.maxTsMs {
				s.maxTsMs = ts
			}
			batch.Rows = append(batch.Rows, commtypes.Row{Key: m.Key, Value: m.Value, TsMs: ts})
		case kafka.Error:
			log.Error().Msgf("kafka error: %v", m)
		}
	}
	if len(batch.Rows) == 0 {
		if s.idle {
			return batch, optional.None[commtypes.Watermark](), true
		}
		s.idle = true
		return batch, optional.Some(commtypes.IdleWatermark()), true
	}
	s.idle = false
	return batch, optional.Some(commtypes.EventTimeWatermark(s.maxTsMs)), true
}

func (s *KafkaSource) OnClose(tctx *exec_context.TaskContext) error {
	if s.consumer != nil {
		return s.consumer.Close()
	}
	return nil
}

var _ = operator.SourceOperator(&KafkaSource{})
