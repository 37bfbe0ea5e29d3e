package command

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/simulator"
)

type Simulate struct {
	Logger *logrus.Logger
}

func (cmd Simulate) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	opts := simulator.Options{}

	c := &cobra.Command{
		Use:   "simulate",
		Short: "drive a running server with registrations and payment cycles",
		Run: func(_ *cobra.Command, _ []string) {
			if opts.ServerURL == "" {
				opts.ServerURL = fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
			}
			simulator.NewSimulator(opts, cmd.Logger).Run(ctx)
		},
	}
	c.Flags().StringVar(&opts.ServerURL, "url", "", "server base url (defaults to localhost and http.port)")
	c.Flags().IntVar(&opts.TargetRPS, "rps", 10, "registrations per second")
	c.Flags().DurationVar(&opts.Duration, "duration", 30*time.Second, "how long to run")
	c.Flags().IntVar(&opts.CycleEvery, "cycle-every", 10, "run a payment cycle after this many registrations")
	c.Flags().Float64Var(&opts.ReplayRatio, "replay-ratio", 0.1, "share of registrations resent with the same idempotency key")

	return c
}
