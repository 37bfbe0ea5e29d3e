package event

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themepark/ticketing/internal/domain"
)

type fakeWriter struct {
	failures int
	calls    int
	written  []kafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("broker unavailable")
	}
	f.written = append(f.written, msgs...)
	return nil
}

type fakeDlq struct {
	err      error
	messages []domain.KafkaMessage
}

func (f *fakeDlq) InsertDLQ(_ context.Context, km domain.KafkaMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, km)
	return nil
}

func newTestPublisher(writer messageWriter, dlq dlqRepository) *paymentPublisher {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	pp := NewPaymentPublisher(writer, "ticketing.payments", dlq, logger)
	pp.backoff = 0
	return pp
}

func events() []domain.PaymentEvent {
	paidAt := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	return []domain.PaymentEvent{
		{CycleID: "c", CustomerID: 4, Name: "Alice", Tickets: 3, Counter: 1, Required: 45, Tendered: 45, PaidAt: paidAt},
		{CycleID: "c", CustomerID: 7, Name: "Bob", Tickets: 8, Counter: 3, Required: 120, Tendered: 150, Change: 30, PaidAt: paidAt},
	}
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one message per payment", func(t *testing.T) {
		writer := &fakeWriter{}
		pp := newTestPublisher(writer, nil)

		require.NoError(t, pp.Publish(ctx, events()))
		require.Len(t, writer.written, 2)
		assert.Equal(t, "7", string(writer.written[1].Key))

		var got domain.PaymentEvent
		require.NoError(t, json.Unmarshal(writer.written[1].Value, &got))
		assert.Equal(t, "Bob", got.Name)
		assert.Equal(t, 30, got.Change)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		writer := &fakeWriter{failures: 2}
		dlq := &fakeDlq{}
		pp := newTestPublisher(writer, dlq)

		require.NoError(t, pp.Publish(ctx, events()))
		assert.Equal(t, 3, writer.calls)
		assert.Empty(t, dlq.messages)
	})

	t.Run("parks messages in the dlq", func(t *testing.T) {
		writer := &fakeWriter{failures: 10}
		dlq := &fakeDlq{}
		pp := newTestPublisher(writer, dlq)

		require.NoError(t, pp.Publish(ctx, events()))
		assert.Equal(t, 3, writer.calls)
		require.Len(t, dlq.messages, 2)
		assert.Equal(t, "4", dlq.messages[0].Key)
		assert.Equal(t, 3, dlq.messages[0].Attempts)
		assert.Equal(t, "ticketing.payments", dlq.messages[0].Topic)
	})

	t.Run("fails without a dlq", func(t *testing.T) {
		pp := newTestPublisher(&fakeWriter{failures: 10}, nil)
		assert.Error(t, pp.Publish(ctx, events()))
	})

	t.Run("fails when the dlq fails", func(t *testing.T) {
		pp := newTestPublisher(&fakeWriter{failures: 10}, &fakeDlq{err: errors.New("db down")})
		assert.Error(t, pp.Publish(ctx, events()))
	})

	t.Run("empty batch", func(t *testing.T) {
		writer := &fakeWriter{}
		require.NoError(t, newTestPublisher(writer, nil).Record(ctx, nil))
		assert.Zero(t, writer.calls)
	})
}
