package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	DefaultTicketPrice   = 15
	DefaultBulkThreshold = 5 // orders above this go to the bulk counter
	DefaultPaymentQuota  = 5
	DefaultCounterBatch  = 5
	DefaultReceiptBatch  = 5
	DefaultSeedFile      = "customer.txt"

	IdempotencyHeader    = "Idempotency-Key"
	IdempotencyKeyPrefix = "ticketing:idempotency:"
	ReplayedHeader       = "Idempotent-Replayed"

	KafkaTopicPayments = "ticketing.payments"
	KafkaProducerAcks  = kafka.RequireAll
	KafkaWriteTimeout  = 5 * time.Second
	KafkaWriteRetries  = 3
	KafkaRetryBackoff  = 500 * time.Millisecond

	RecorderBufSize       = 1024
	RecorderBatchSize     = 100
	RecorderFlushInterval = 2 * time.Second
	DBTxTimeout           = 2 * time.Second // keep transactions short
)
