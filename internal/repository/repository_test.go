package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/repository/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every new connection would see its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&entity.Payment{}, &entity.KafkaDlq{})
	require.NoError(t, err)

	return db
}

func paymentEvent(cycleID string, customerID int, paidAt time.Time) domain.PaymentEvent {
	return domain.PaymentEvent{
		CycleID:    cycleID,
		CustomerID: customerID,
		Name:       "guest",
		Tickets:    2,
		Counter:    domain.CounterTwo,
		Required:   30,
		Tendered:   50,
		Change:     20,
		PaidAt:     paidAt,
	}
}

func TestPaymentRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.SavePayments(ctx, nil))
	})

	t.Run("save a batch", func(t *testing.T) {
		err := repo.SavePayments(ctx, []domain.PaymentEvent{
			paymentEvent("cycle-1", 1, base),
			paymentEvent("cycle-1", 3, base.Add(time.Minute)),
			paymentEvent("cycle-2", 2, base.Add(2*time.Minute)),
		})
		require.NoError(t, err)

		payments, total, err := repo.ListPayments(ctx, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, payments, 3)
		assert.Equal(t, 2, payments[0].CustomerID)
		assert.Equal(t, 1, payments[2].CustomerID)
		assert.Equal(t, domain.CounterTwo, payments[0].Counter)
		assert.Equal(t, 20, payments[0].Change)
	})

	t.Run("retried batch is ignored", func(t *testing.T) {
		err := repo.SavePayments(ctx, []domain.PaymentEvent{
			paymentEvent("cycle-1", 1, base),
			paymentEvent("cycle-3", 4, base.Add(3*time.Minute)),
		})
		require.NoError(t, err)

		_, total, err := repo.ListPayments(ctx, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
	})

	t.Run("pagination", func(t *testing.T) {
		payments, total, err := repo.ListPayments(ctx, 2, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, payments, 2)
		assert.Equal(t, 3, payments[0].CustomerID)
		assert.Equal(t, 1, payments[1].CustomerID)
	})
}

func TestDlqRepository_InsertDLQ(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDlqRepository(db)

	err := repo.InsertDLQ(context.Background(), domain.KafkaMessage{
		Key:      "7",
		Payload:  []byte(`{"customer_id":7}`),
		Topic:    "ticketing.payments",
		Attempts: 3,
	})
	require.NoError(t, err)

	var rows []entity.KafkaDlq
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "7", rows[0].Key)
	assert.Equal(t, 3, rows[0].AttemptCount)
	assert.False(t, rows[0].LastAttemptAt.IsZero())
}
