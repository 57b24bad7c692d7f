// Package backtest drives a strategy over a historical replay and reports its results.
package backtest

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/feed"
	"github.com/vadiminshakov/tickbot/internal/strategy"
	"github.com/vadiminshakov/tickbot/pkg/indicators"
)

// Run ticks s until its feed is exhausted and summarizes the outcome.
// Any tick error halts the run.
func Run(ctx context.Context, s strategy.Strategy, f feed.Feed, logger *zap.Logger) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("pair", f.Pair().String()), zap.String("strategy", s.Name()))

	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			return Report{}, errors.Wrap(err, "backtest interrupted")
		}

		ok, err := s.Tick(ctx)
		if err != nil {
			return Report{}, errors.Wrapf(err, "tick %d", ticks)
		}
		if !ok {
			break
		}
		ticks++
	}

	report := NewReport(s, f)
	report.Ticks = ticks

	logger.Info("backtest finished",
		zap.Int("ticks", ticks),
		zap.Int("trades", report.Trades),
		zap.Float64("profit", report.Profit))

	return report, nil
}

// Report outcome of one backtest.
type Report struct {
	Pair     string
	Strategy string
	Ticks    int

	Wins   int
	Losses int
	Trades int
	// Accuracy |wins - losses| / trades in percent. It measures directional skew, not a win rate.
	Accuracy float64

	MainInitial float64
	AltInitial  float64
	MainFinal   float64
	AltFinal    float64
	MainDiff    float64
	AltDiff     float64

	Fills     int
	MovedMain float64
	MovedAlt  float64
	Fees      float64

	FinalBid float64
	// Profit main currency value of the balance change at the final bid.
	Profit float64

	Summary   indicators.Summary
	SummaryOK bool
}

// NewReport aggregates the strategy counters and the feed ledger.
func NewReport(s strategy.Strategy, f feed.Feed) Report {
	stats := s.Stats()
	balances := f.Balances()

	r := Report{
		Pair:        f.Pair().String(),
		Strategy:    s.Name(),
		Wins:        stats.Wins,
		Losses:      stats.Losses,
		Trades:      stats.Trades(),
		MainInitial: balances.MainInitial,
		AltInitial:  balances.AltInitial,
		MainFinal:   balances.Main,
		AltFinal:    balances.Alt,
		MainDiff:    balances.Main - balances.MainInitial,
		AltDiff:     balances.Alt - balances.AltInitial,
		FinalBid:    f.Bid(),
	}

	if r.Trades > 0 {
		r.Accuracy = math.Abs(float64(r.Wins-r.Losses)) / float64(r.Trades) * 100
	}

	fills := f.Fills()
	r.Fills = len(fills)
	for _, o := range fills {
		r.MovedMain += math.Abs(o.TotalMain)
		r.MovedAlt += math.Abs(o.AmountAlt)
		r.Fees += o.Fee
	}

	r.Profit = r.AltDiff*r.FinalBid + r.MainDiff

	bars := f.Bars()
	data := make([]indicators.PriceData, len(bars))
	for i, b := range bars {
		data[i] = indicators.PriceData{High: b.High, Low: b.Low, Close: b.Close}
	}
	r.Summary, r.SummaryOK = indicators.Summarize(data)

	return r
}
