package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/marketdata"
)

func newCollectCmd(opts *rootOptions) *cobra.Command {
	var (
		pairFlag string
		period   time.Duration
		days     int
		out      string
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Download historical bars to a CSV file for offline backtests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pair, err := domain.ParsePair(pairFlag)
			if err != nil {
				return err
			}

			logger, err := newLogger(opts.debug)
			if err != nil {
				return err
			}
			defer logger.Sync()

			exchange, err := newExchange(opts, []domain.Pair{pair}, logger)
			if err != nil {
				return err
			}

			path := dataPath(out, pair)
			n, err := marketdata.Collect(cmd.Context(), exchange, pair, period, time.Now().AddDate(0, 0, -days), path)
			if err != nil {
				return err
			}

			logger.Info("bars collected", zap.String("pair", pair.String()), zap.Int("bars", n), zap.String("file", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&pairFlag, "pair", "BTC_LTC", "trade pair, example: BTC_LTC")
	cmd.Flags().DurationVar(&period, "period", 5*time.Minute, "bar period")
	cmd.Flags().IntVar(&days, "days", 31, "days of history")
	cmd.Flags().StringVar(&out, "out", pairPlaceholder+".csv", "output file, "+pairPlaceholder+" is replaced by the pair")

	return cmd
}
