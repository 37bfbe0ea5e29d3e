package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"themepark/ticketing/internal/constant"
)

// Load reads configs/config.yaml when present and lets TICKETING_* environment
// variables override any key, e.g. TICKETING_LEDGER_PAYMENT_QUOTA.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TICKETING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	level, err := logrus.ParseLevel(cfg.RawLogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log_level")
	}
	cfg.LogLevel = level

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", string(LocalEnv))
	v.SetDefault("log_level", "info")
	v.SetDefault("http.port", 8080)

	v.SetDefault("ledger.ticket_price", constant.DefaultTicketPrice)
	v.SetDefault("ledger.bulk_threshold", constant.DefaultBulkThreshold)
	v.SetDefault("ledger.payment_quota", constant.DefaultPaymentQuota)
	v.SetDefault("ledger.counter_batch", constant.DefaultCounterBatch)
	v.SetDefault("ledger.receipt_batch", constant.DefaultReceiptBatch)
	v.SetDefault("ledger.receipt_dismiss", false)
	v.SetDefault("ledger.seed_file", constant.DefaultSeedFile)

	v.SetDefault("database.driver", "")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.username", "postgres")
	v.SetDefault("database.postgres.password", "postgres")
	v.SetDefault("database.postgres.database", "ticketing")
	v.SetDefault("database.sqlite.path", "ticketing.db")

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)

	v.SetDefault("kafka.host", "")
	v.SetDefault("kafka.port", 9092)
	v.SetDefault("kafka.topic", constant.KafkaTopicPayments)

	v.SetDefault("worker.count", 1)
	v.SetDefault("worker.buffer", constant.RecorderBufSize)
	v.SetDefault("worker.batch_size", constant.RecorderBatchSize)
	v.SetDefault("worker.flush_interval", constant.RecorderFlushInterval)

	v.SetDefault("idempotency_ttl", "24h")
}
