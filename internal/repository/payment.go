package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/repository/entity"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *paymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// SavePayments stores a batch in one transaction. A payment already stored for the
// same cycle and customer is skipped, so a retried batch is harmless.
func (pr *paymentRepository) SavePayments(ctx context.Context, events []domain.PaymentEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]entity.Payment, 0, len(events))
	for _, event := range events {
		rows = append(rows, entity.NewPayment(event))
	}

	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	err := pr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to save payments")
	}

	return nil
}

func (pr *paymentRepository) ListPayments(ctx context.Context, limit, offset int) ([]domain.PaymentEvent, int64, error) {
	total, err := gorm.G[entity.Payment](pr.db).Count(ctx, "id")
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count payments")
	}

	rows, err := gorm.G[entity.Payment](pr.db).
		Order("paid_at DESC").
		Order("customer_id DESC").
		Limit(limit).
		Offset(offset).
		Find(ctx)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]domain.PaymentEvent, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, row.ToDomain())
	}

	return payments, total, nil
}

func (pr *paymentRepository) Name() string {
	return "history"
}

// Record lets the payment recorder use the repository as a sink.
func (pr *paymentRepository) Record(ctx context.Context, events []domain.PaymentEvent) error {
	return pr.SavePayments(ctx, events)
}
