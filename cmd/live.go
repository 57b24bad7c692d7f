package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/feed"
	"github.com/vadiminshakov/tickbot/internal/scheduler"
	"github.com/vadiminshakov/tickbot/internal/strategy"
)

func newLiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Trade every configured pair on the exchange until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Sync()

			exchange, err := newExchange(opts, pairsOf(cfg.Pairs), logger)
			if err != nil {
				return err
			}

			process := cfg.Process
			bots := make([]scheduler.Bot, 0, len(cfg.Pairs))
			for _, pairCfg := range cfg.Pairs {
				pairLogger := logger.With(zap.String("pair", pairCfg.Pair.String()))

				f, err := feed.NewLive(ctx, exchange, pairCfg, process.UpdateInterval, pairLogger)
				if err != nil {
					return err
				}

				s, err := strategy.New(strategySettings(process), f, pairLogger)
				if err != nil {
					return err
				}

				bots = append(bots, scheduler.Bot{Pair: pairCfg.Pair, Strategy: s, Interval: process.UpdateInterval})
			}

			return scheduler.New(logger).Run(ctx, bots)
		},
	}
}
