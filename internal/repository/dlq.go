package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/repository/entity"
)

type dlqRepository struct {
	db *gorm.DB
}

func NewDlqRepository(db *gorm.DB) *dlqRepository {
	return &dlqRepository{
		db: db,
	}
}

func (dr *dlqRepository) InsertDLQ(ctx context.Context, km domain.KafkaMessage) error {
	ctx, cancel := context.WithTimeout(ctx, constant.DBTxTimeout)
	defer cancel()

	err := gorm.G[entity.KafkaDlq](dr.db).Create(ctx, &entity.KafkaDlq{
		Topic:         km.Topic,
		Key:           km.Key,
		Payload:       km.Payload,
		AttemptCount:  km.Attempts,
		LastAttemptAt: time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to insert dlq message")
	}

	return nil
}
