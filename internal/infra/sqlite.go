package infra

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"themepark/ticketing/internal/repository/entity"
)

// NewSqliteDB opens a local database and creates the history tables. There are
// no sql migrations for sqlite; the schema follows the entities.
func NewSqliteDB(path string, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newGormLogger(logger)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite")
	}

	if err := db.AutoMigrate(&entity.Payment{}, &entity.KafkaDlq{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate sqlite schema")
	}

	return db, nil
}
