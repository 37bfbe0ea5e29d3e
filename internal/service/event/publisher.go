package event

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

func (pp *paymentPublisher) Record(ctx context.Context, events []domain.PaymentEvent) error {
	return pp.Publish(ctx, events)
}

// Publish writes one message per payment, keyed by customer id. Failed writes are
// retried with a linear backoff and finally parked in the dlq.
func (pp *paymentPublisher) Publish(ctx context.Context, events []domain.PaymentEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return errors.Wrap(err, "failed to marshal payment event")
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(strconv.Itoa(event.CustomerID)),
			Value: payload,
			Time:  event.PaidAt,
		})
	}

	var lastErr error
retry:
	for attempt := 0; attempt < pp.retries; attempt++ {
		writeCtx, cancel := context.WithTimeout(ctx, constant.KafkaWriteTimeout)
		lastErr = pp.writer.WriteMessages(writeCtx, messages...)
		cancel()
		if lastErr == nil {
			return nil
		}

		pp.logger.Warnf("kafka publisher: write attempt %d failed: %v", attempt+1, lastErr)
		if attempt+1 == pp.retries {
			break
		}
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			break retry
		case <-time.After(pp.backoff * time.Duration(attempt+1)):
		}
	}

	return pp.deadLetter(ctx, messages, lastErr)
}

func (pp *paymentPublisher) deadLetter(ctx context.Context, messages []kafka.Message, cause error) error {
	if pp.dlq == nil {
		return errors.Wrap(cause, "failed to publish payments")
	}

	for _, m := range messages {
		km := domain.KafkaMessage{
			Key:      string(m.Key),
			Payload:  m.Value,
			Topic:    pp.topic,
			Attempts: pp.retries,
		}
		// the ledger context may already be gone; the dlq write must still happen
		if err := pp.dlq.InsertDLQ(context.WithoutCancel(ctx), km); err != nil {
			return errors.Wrapf(err, "CRITICAL: dlq insert failed after publish error: %v", cause)
		}
	}

	pp.logger.Errorf("kafka publisher: %d payments moved to dlq: %v", len(messages), cause)
	return nil
}
