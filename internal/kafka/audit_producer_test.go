package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"sales-insight-backend/config"
	"sales-insight-backend/internal/model"
)

type fakeWriter struct {
	messages []kafka.Message
	ctxErr   error
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.ctxErr = ctx.Err()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaAuditProducer_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := newKafkaAuditProducer(writer, "audit")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event := model.AIAuditEvent{
		ID:        "evt-1",
		RequestID: "req-1",
		Time:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Question:  "Who leads?",
		Answer:    "Bob",
		Outcome:   model.AuditOutcomeAnswered,
		LatencyMS: 42,
	}
	p.Publish(ctx, event)

	require.Len(t, writer.messages, 1)
	assert.NoError(t, writer.ctxErr, "cancelled request context must not reach the writer")
	assert.Equal(t, []byte("evt-1"), writer.messages[0].Key)

	var decoded model.AIAuditEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestKafkaAuditProducer_WriteErrorIsSwallowed(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaAuditProducer(writer, "audit")

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), model.AIAuditEvent{ID: "evt-2"})
	})
	assert.Empty(t, writer.messages)
}

func TestNewAuditProducer_DisabledWithoutBrokers(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	p := NewAuditProducer(lc, &config.Config{})

	_, ok := p.(noopAuditProducer)
	assert.True(t, ok)
	assert.NotPanics(t, func() { p.Publish(context.Background(), model.AIAuditEvent{}) })
	assert.NoError(t, p.Close())
}

func TestNewAuditProducer_WithBrokers(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Kafka.AuditTopic = "audit"

	lc := fxtest.NewLifecycle(t)
	p := NewAuditProducer(lc, cfg)

	_, ok := p.(*kafkaAuditProducer)
	require.True(t, ok)

	lc.RequireStart()
	lc.RequireStop()
}
