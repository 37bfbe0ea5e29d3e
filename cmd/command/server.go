package command

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"themepark/ticketing/internal/api"
	"themepark/ticketing/internal/api/handler/counter"
	"themepark/ticketing/internal/api/middleware"
	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/infra"
	"themepark/ticketing/internal/repository"
	"themepark/ticketing/internal/service/ticketing"
)

type Server struct {
	Logger *logrus.Logger
}

func (cmd Server) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "run the counter HTTP API",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd Server) main(cfg *config.Config, ctx context.Context) {
	b, err := openBackends(ctx, cfg, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to open history backends"))
		return
	}
	defer b.Close(cmd.Logger)

	// create services
	svc := ticketing.NewTicketingService(cmd.Logger, b.recorder, ledgerOptions(cfg.Ledger))
	seedLedger(ctx, svc, cfg.Ledger.SeedFile, cmd.Logger)

	// create handlers
	var counterHandler *counter.CounterHandler
	if b.db != nil {
		counterHandler = counter.New(svc, repository.NewPaymentRepository(b.db))
	} else {
		counterHandler = counter.New(svc, nil)
	}

	// create middlewares
	var idempotency *middleware.IdempotencyMiddleware
	if cfg.Redis.Enabled() {
		redisClient, err := infra.NewRedisClient(ctx, cfg.Redis, cmd.Logger)
		if err != nil {
			cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "server : failed to connect to redis"))
			return
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : failed to close redis"))
			}
		}()
		idempotency = middleware.NewIdempotencyMiddleware(redisClient, cfg.IdempotencyTTL, cmd.Logger)
	}

	server := api.New(cfg.AppEnv, cmd.Logger)
	server.SetupAPIRoutes(counterHandler, idempotency)

	// run the server
	if err := server.Serve(ctx, fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
		cmd.Logger.WithContext(ctx).Error(errors.Wrap(err, "server : stopped"))
	}
}
