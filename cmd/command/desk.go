package command

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/console"
	"themepark/ticketing/internal/service/ticketing"
)

type Desk struct {
	Logger *logrus.Logger
}

func (cmd Desk) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	var seedFile string

	c := &cobra.Command{
		Use:   "desk",
		Short: "run the interactive counter desk",
		Run: func(_ *cobra.Command, _ []string) {
			if seedFile != "" {
				cfg.Ledger.SeedFile = seedFile
			}
			cmd.main(cfg, ctx)
		},
	}
	c.Flags().StringVar(&seedFile, "seed", "", "customer file to load on start (overrides ledger.seed_file)")

	return c
}

func (cmd Desk) main(cfg *config.Config, ctx context.Context) {
	b, err := openBackends(ctx, cfg, cmd.Logger)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatal(errors.Wrap(err, "desk : failed to open history backends"))
		return
	}
	defer b.Close(cmd.Logger)

	svc := ticketing.NewTicketingService(cmd.Logger, b.recorder, ledgerOptions(cfg.Ledger))
	seedLedger(ctx, svc, cfg.Ledger.SeedFile, cmd.Logger)

	desk := console.NewDesk(svc, os.Stdin, os.Stdout, cmd.Logger)

	// a blocked terminal read must not hold up shutdown
	done := make(chan error, 1)
	go func() {
		done <- desk.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		cmd.Logger.Info("desk is shutting down")
	case err := <-done:
		if err != nil {
			cmd.Logger.WithContext(ctx).Error(err)
		}
	}
}
