package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv         AppEnv        `mapstructure:"app_env"`
		LogLevel       logrus.Level  `mapstructure:"-"`
		RawLogLevel    string        `mapstructure:"log_level"`
		HTTP           HTTP          `mapstructure:"http"`
		Ledger         Ledger        `mapstructure:"ledger"`
		Database       Database      `mapstructure:"database"`
		Redis          Redis         `mapstructure:"redis"`
		Kafka          Kafka         `mapstructure:"kafka"`
		Worker         Worker        `mapstructure:"worker"`
		IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
	}

	HTTP struct {
		Port int `mapstructure:"port"`
	}

	Ledger struct {
		TicketPrice    int    `mapstructure:"ticket_price"`
		BulkThreshold  int    `mapstructure:"bulk_threshold"`
		PaymentQuota   int    `mapstructure:"payment_quota"`
		CounterBatch   int    `mapstructure:"counter_batch"`
		ReceiptBatch   int    `mapstructure:"receipt_batch"`
		ReceiptDismiss bool   `mapstructure:"receipt_dismiss"`
		SeedFile       string `mapstructure:"seed_file"`
	}

	Database struct {
		// Driver is "postgres", "sqlite" or empty to keep history in memory only.
		Driver   string   `mapstructure:"driver"`
		Postgres Postgres `mapstructure:"postgres"`
		Sqlite   Sqlite   `mapstructure:"sqlite"`
	}

	Postgres struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		Database string `mapstructure:"database"`
	}

	Sqlite struct {
		Path string `mapstructure:"path"`
	}

	Redis struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Database int    `mapstructure:"database"`
	}

	Kafka struct {
		Host  string `mapstructure:"host"`
		Port  int    `mapstructure:"port"`
		Topic string `mapstructure:"topic"`
	}

	Worker struct {
		Count         int           `mapstructure:"count"`
		Buffer        int           `mapstructure:"buffer"`
		BatchSize     int           `mapstructure:"batch_size"`
		FlushInterval time.Duration `mapstructure:"flush_interval"`
	}
)

func (d Database) Enabled() bool {
	return d.Driver != ""
}

func (r Redis) Enabled() bool {
	return r.Host != ""
}

func (k Kafka) Enabled() bool {
	return k.Host != ""
}
