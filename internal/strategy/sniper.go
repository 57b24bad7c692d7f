package strategy

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
	"github.com/vadiminshakov/tickbot/pkg/indicators"
)

// maxConsecutiveTrades caps runaway one-directional trading.
const maxConsecutiveTrades = 100

// Sniper trades close/open crossovers of the resampled chart.
type Sniper struct {
	engine
	period    time.Duration
	buyCount  int
	sellCount int
}

// NewSniper creates a sniper strategy reading buckets of period.
func NewSniper(f feed.Feed, period time.Duration, logger *zap.Logger) *Sniper {
	return &Sniper{
		engine: newEngine(NameSniper, f, logger),
		period: period,
	}
}

func (s *Sniper) Tick(ctx context.Context) (bool, error) {
	ok, err := s.begin(ctx)
	if !ok {
		return false, err
	}

	buyProfit, sellProfit := s.profits()

	buckets := feed.Security(s.feed, s.period, 2)
	closes := indicators.Recent(domain.Closes(buckets))
	opens := indicators.Recent(domain.Opens(buckets))
	size := s.feed.Config().ANNOrderSize

	switch {
	case indicators.Crossover(closes, opens) && s.buyCount < maxConsecutiveTrades:
		filled, err := s.buy(ctx, size, buyProfit)
		if err != nil {
			return false, err
		}
		if filled {
			s.sellCount = 0
			s.buyCount++
		}
	case indicators.Crossunder(closes, opens) && s.sellCount < maxConsecutiveTrades:
		filled, err := s.sell(ctx, size, sellProfit)
		if err != nil {
			return false, err
		}
		if filled {
			s.buyCount = 0
			s.sellCount++
		}
	}

	return true, nil
}
