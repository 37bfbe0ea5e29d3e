package infra

import (
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/constant"
)

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	topic := cfg.Topic
	if topic == "" {
		topic = constant.KafkaTopicPayments
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: constant.KafkaProducerAcks,
		Async:        false, // the publisher retries synchronous writes itself
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}
}
