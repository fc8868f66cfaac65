package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"sales-insight-backend/config"
	"sales-insight-backend/internal/model"
)

// AuditProducer publishes one event per AI question. Publishing never fails the
// request: errors are logged and dropped.
type AuditProducer interface {
	Publish(ctx context.Context, event model.AIAuditEvent)
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaAuditProducer struct {
	writer messageWriter
	topic  string
}

type noopAuditProducer struct{}

// NewAuditProducer returns a no-op producer when no brokers are configured.
func NewAuditProducer(lc fx.Lifecycle, cfg *config.Config) AuditProducer {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.AuditTopic == "" {
		log.Info().Msg("Kafka audit trail disabled (no brokers configured)")
		return noopAuditProducer{}
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.AuditTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 500 * time.Millisecond,
		Async:        true,
	})
	writer.Completion = func(messages []kafka.Message, err error) {
		if err != nil {
			log.Error().Err(err).Int("message_count", len(messages)).Msg("Failed to deliver audit events to Kafka")
		}
	}

	p := newKafkaAuditProducer(writer, cfg.Kafka.AuditTopic)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing Kafka audit producer")
			return p.Close()
		},
	})
	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.AuditTopic).Msg("Kafka audit producer initialized")
	return p
}

func newKafkaAuditProducer(writer messageWriter, topic string) *kafkaAuditProducer {
	return &kafkaAuditProducer{
		writer: writer,
		topic:  topic,
	}
}

func (p *kafkaAuditProducer) Publish(ctx context.Context, event model.AIAuditEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to marshal audit event for Kafka")
		return
	}

	// The writer is async; the request context may already be done by the time
	// the batch is flushed.
	err = p.writer.WriteMessages(context.WithoutCancel(ctx), kafka.Message{
		Key:   []byte(event.ID),
		Value: value,
	})
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to write audit event to Kafka")
		return
	}
	log.Debug().Str("event_id", event.ID).Str("topic", p.topic).Str("outcome", event.Outcome).Msg("Queued audit event")
}

func (p *kafkaAuditProducer) Close() error {
	return p.writer.Close()
}

func (noopAuditProducer) Publish(context.Context, model.AIAuditEvent) {}
func (noopAuditProducer) Close() error                                { return nil }
