// Command tickbot runs technical-analysis trading strategies against Binance spot
// markets, either as a backtest over historical bars or live.
//
// Usage:
//
//	tickbot backtest --config config.yaml
//	tickbot live --config config.yaml
//	tickbot collect --pair BTC_LTC --out bars.csv
//
// Exchange access requires BINANCE_API_KEY and BINANCE_API_SECRET, read from the
// environment or a .env file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/config"
	"github.com/vadiminshakov/tickbot/internal/clients"
	"github.com/vadiminshakov/tickbot/internal/domain"
)

type rootOptions struct {
	configPath string
	envFile    string
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tickbot",
		Short:         "Technical-analysis trading bot for Binance spot markets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to yaml config")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "file with exchange credentials")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "development logging")

	cmd.AddCommand(
		newBacktestCmd(opts),
		newLiveCmd(opts),
		newCollectCmd(opts),
	)

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// setup loads the configuration and builds the logger.
func setup(opts *rootOptions) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(opts.debug)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func newExchange(opts *rootOptions, pairs []domain.Pair, logger *zap.Logger) (*clients.Binance, error) {
	creds, err := config.LoadCredentials(opts.envFile)
	if err != nil {
		return nil, err
	}

	return clients.NewBinance(clients.NewBinanceClient(creds.APIKey, creds.APISecret), pairs, logger)
}

func pairsOf(cfgs []domain.CurrencyConfig) []domain.Pair {
	pairs := make([]domain.Pair, len(cfgs))
	for i, c := range cfgs {
		pairs[i] = c.Pair
	}
	return pairs
}
