package event

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type dlqRepository interface {
	InsertDLQ(ctx context.Context, km domain.KafkaMessage) error
}

type paymentPublisher struct {
	writer  messageWriter
	topic   string
	dlq     dlqRepository
	logger  *logrus.Logger
	retries int
	backoff time.Duration
}

// NewPaymentPublisher publishes settled payments. dlq may be nil, in which case
// undeliverable batches are returned as errors.
func NewPaymentPublisher(
	writer messageWriter,
	topic string,
	dlq dlqRepository,
	logger *logrus.Logger,
) *paymentPublisher {
	return &paymentPublisher{
		writer:  writer,
		topic:   topic,
		dlq:     dlq,
		logger:  logger,
		retries: constant.KafkaWriteRetries,
		backoff: constant.KafkaRetryBackoff,
	}
}

func (pp *paymentPublisher) Name() string {
	return "kafka"
}
