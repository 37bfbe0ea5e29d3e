package command

import (
	"context"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/infra"
	"themepark/ticketing/internal/repository"
	"themepark/ticketing/internal/seed"
	"themepark/ticketing/internal/service/event"
	"themepark/ticketing/internal/service/ticketing"
	"themepark/ticketing/internal/worker"
)

type seeder interface {
	Seed(ctx context.Context, entries []seed.Entry) ([]domain.Customer, error)
}

// backends holds the optional history stores. Each one is enabled by its own
// config section; with none enabled the ledger runs purely in memory.
type backends struct {
	db          *gorm.DB
	kafkaWriter *kafka.Writer
	recorder    *worker.Recorder
}

func openBackends(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*backends, error) {
	b := &backends{}
	sinks := make([]worker.Sink, 0, 2)

	if cfg.Database.Enabled() {
		db, err := infra.OpenDatabase(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		b.db = db
		sinks = append(sinks, repository.NewPaymentRepository(db))
	}

	if cfg.Kafka.Enabled() {
		b.kafkaWriter = infra.NewKafkaWriter(cfg.Kafka)
		if b.db != nil {
			sinks = append(sinks, event.NewPaymentPublisher(b.kafkaWriter, b.kafkaWriter.Topic, repository.NewDlqRepository(b.db), logger))
		} else {
			sinks = append(sinks, event.NewPaymentPublisher(b.kafkaWriter, b.kafkaWriter.Topic, nil, logger))
		}
	}

	b.recorder = worker.NewRecorder(logger, worker.Options{
		Workers:       cfg.Worker.Count,
		Buffer:        cfg.Worker.Buffer,
		BatchSize:     cfg.Worker.BatchSize,
		FlushInterval: cfg.Worker.FlushInterval,
	}, sinks...)
	b.recorder.Start()

	for _, sink := range sinks {
		logger.WithContext(ctx).Infof("payment history sink enabled: %s", sink.Name())
	}

	return b, nil
}

// Close flushes pending payments before the stores go away.
func (b *backends) Close(logger *logrus.Logger) {
	b.recorder.Stop()

	if b.kafkaWriter != nil {
		if err := b.kafkaWriter.Close(); err != nil {
			logger.Error(errors.Wrap(err, "failed to close kafka writer"))
		}
	}
	if b.db != nil {
		if sqlDB, err := b.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func ledgerOptions(cfg config.Ledger) ticketing.Options {
	return ticketing.Options{
		TicketPrice:     cfg.TicketPrice,
		BulkThreshold:   cfg.BulkThreshold,
		PaymentQuota:    cfg.PaymentQuota,
		CounterBatch:    cfg.CounterBatch,
		ReceiptBatch:    cfg.ReceiptBatch,
		DismissReceipts: cfg.ReceiptDismiss,
	}
}

// seedLedger registers the customers listed in path. A missing or unreadable
// file is logged and the ledger starts empty.
func seedLedger(ctx context.Context, svc seeder, path string, logger *logrus.Logger) {
	if path == "" {
		return
	}

	entries, err := seed.LoadFile(path)
	if err != nil {
		logger.WithContext(ctx).Warn(errors.Wrapf(err, "seed file %s not loaded", path))
		return
	}

	if _, err := svc.Seed(ctx, entries); err != nil {
		logger.WithContext(ctx).Error(errors.Wrap(err, "failed to seed ledger"))
	}
}
