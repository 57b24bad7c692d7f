package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/config"
	"github.com/vadiminshakov/tickbot/internal/backtest"
	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
	"github.com/vadiminshakov/tickbot/internal/marketdata"
	"github.com/vadiminshakov/tickbot/internal/strategy"
)

const pairPlaceholder = "{pair}"

func newBacktestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backtest",
		Short: "Replay historical bars through the configured strategy and report the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer logger.Sync()

			reports, err := runBacktests(cmd.Context(), opts, cfg, logger)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), backtest.RenderAll(reports))
			return nil
		},
	}
}

func runBacktests(ctx context.Context, opts *rootOptions, cfg *config.Config, logger *zap.Logger) ([]backtest.Report, error) {
	process := cfg.Process

	// the exchange is only needed for what the config does not provide
	var exchange feed.Exchange
	if process.DataFile == "" || len(process.InitialBalances) == 0 {
		ex, err := newExchange(opts, pairsOf(cfg.Pairs), logger)
		if err != nil {
			return nil, err
		}
		exchange = ex
	}

	balances := process.InitialBalances
	if len(balances) == 0 {
		b, err := exchange.Balances(ctx)
		if err != nil {
			return nil, domain.NewExchangeError("balances", err)
		}
		balances = b
	}

	offset := feed.WindowSize(process.DataOffset, process.UpdateInterval)
	reports := make([]backtest.Report, 0, len(cfg.Pairs))
	for _, pairCfg := range cfg.Pairs {
		pairLogger := logger.With(zap.String("pair", pairCfg.Pair.String()))

		bars, err := loadBars(ctx, exchange, process, pairCfg.Pair)
		if err != nil {
			return nil, err
		}

		f, err := feed.NewBacktest(pairCfg, bars, process.UpdateInterval, offset,
			balances[pairCfg.Pair.Main], balances[pairCfg.Pair.Alt], pairLogger)
		if err != nil {
			return nil, err
		}

		s, err := strategy.New(strategySettings(process), f, pairLogger)
		if err != nil {
			return nil, err
		}

		report, err := backtest.Run(ctx, s, f, pairLogger)
		if err != nil {
			return nil, errors.Wrapf(err, "backtest of %s failed", pairCfg.Pair.String())
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// loadBars reads the pair's CSV file when one is configured, otherwise asks the exchange.
func loadBars(ctx context.Context, exchange feed.Exchange, process config.Process, pair domain.Pair) ([]domain.Bar, error) {
	if process.DataFile != "" {
		return marketdata.Load(dataPath(process.DataFile, pair))
	}

	start := time.Now().AddDate(0, 0, -process.BacktestDays)
	bars, err := exchange.ChartData(ctx, pair, process.UpdateInterval, start)
	if err != nil {
		return nil, domain.NewExchangeError("chart data", err)
	}

	return bars, nil
}

// dataPath substitutes the pair into a data file template, e.g. data/{pair}.csv.
func dataPath(template string, pair domain.Pair) string {
	return strings.ReplaceAll(template, pairPlaceholder, pair.String())
}

func strategySettings(p config.Process) strategy.Settings {
	return strategy.Settings{
		Name:         p.Strategy,
		SniperPeriod: p.SniperPeriod,
		PlaceOrders:  p.SimplePlaceOrders,
	}
}
