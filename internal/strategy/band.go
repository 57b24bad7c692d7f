package strategy

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
	"github.com/vadiminshakov/tickbot/pkg/indicators"
)

const (
	bandFast = 24
	bandSlow = 48
)

// band returns the envelope of the fast and slow EMA of weighted average prices.
func band(bars []domain.Bar) (lower, upper float64, ok bool) {
	if len(bars) < 2*bandSlow {
		return 0, 0, false
	}
	averages := domain.WeightedAverages(bars)

	fast, err := indicators.EMA(averages, bandFast)
	if err != nil {
		return 0, 0, false
	}
	slow, err := indicators.EMA(averages, bandSlow)
	if err != nil {
		return 0, 0, false
	}

	return math.Min(fast, slow), math.Max(fast, slow), true
}

// SimpleBand buys below and sells above the EMA band, alternating sides.
//
// By default it only counts the trades it would take.
type SimpleBand struct {
	engine
	placeOrders bool
}

// SimpleBandOption configures a SimpleBand strategy.
type SimpleBandOption func(*SimpleBand)

// WithOrders makes the strategy place orders of the configured size instead of dry running.
func WithOrders() SimpleBandOption {
	return func(s *SimpleBand) {
		s.placeOrders = true
	}
}

// NewSimpleBand creates a band strategy.
func NewSimpleBand(f feed.Feed, logger *zap.Logger, opts ...SimpleBandOption) *SimpleBand {
	s := &SimpleBand{engine: newEngine(NameSimpleBand, f, logger)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SimpleBand) Tick(ctx context.Context) (bool, error) {
	ok, err := s.begin(ctx)
	if !ok {
		return false, err
	}

	buyProfit, sellProfit := s.profits()

	lower, upper, ok := band(s.feed.Bars())
	if !ok {
		return true, nil
	}

	current := s.current
	canBuy := s.feed.Ask() < lower && (current == nil || current.IsSell())
	canSell := s.feed.Bid() > upper && (current == nil || current.IsBuy())

	switch {
	case canBuy:
		if err := s.act(ctx, domain.SideBuy, buyProfit); err != nil {
			return false, err
		}
	case canSell:
		if err := s.act(ctx, domain.SideSell, sellProfit); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (s *SimpleBand) act(ctx context.Context, side domain.Side, profit float64) error {
	if !s.placeOrders {
		s.record(profit)
		s.l.Info("dry run signal", zap.String("side", side.String()), zap.Float64("profit", profit))
		return nil
	}

	size := s.feed.Config().ANNOrderSize

	var err error
	if side == domain.SideBuy {
		_, err = s.buy(ctx, size, profit)
	} else {
		_, err = s.sell(ctx, size, profit)
	}

	return err
}
