package infra

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/constant"
)

// OpenDatabase returns the history database for the configured driver.
func OpenDatabase(ctx context.Context, cfg config.Database, logger *logrus.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		client, err := NewPostgresClient(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to postgresql")
		}
		return client.GetDb(), nil
	case "sqlite":
		return NewSqliteDB(cfg.Sqlite.Path, logger)
	case "":
		return nil, constant.ErrDatabaseDisabled
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func newGormLogger(logger *logrus.Logger) gormLogger.Interface {
	level := gormLogger.Warn
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		level = gormLogger.Info
	}

	return gormLogger.New(
		log.New(logger.Writer(), "", 0),
		gormLogger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
