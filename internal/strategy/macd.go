package strategy

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
	"github.com/vadiminshakov/tickbot/pkg/indicators"
)

const (
	macdBucket  = 60 * time.Minute
	macdBuckets = 24 * 30
	macdFast    = 12
	macdSlow    = 26
	macdSignal  = 9
)

// MACD trades crossings of the MACD line and its signal line over hourly closes.
type MACD struct {
	engine
}

// NewMACD creates a MACD strategy.
func NewMACD(f feed.Feed, logger *zap.Logger) *MACD {
	return &MACD{engine: newEngine(NameMACD, f, logger)}
}

func (m *MACD) Tick(ctx context.Context) (bool, error) {
	ok, err := m.begin(ctx)
	if !ok {
		return false, err
	}

	buyProfit, sellProfit := m.profits()

	line, signal, ok := macdLines(domain.Closes(feed.Security(m.feed, macdBucket, macdBuckets)))
	if !ok {
		m.l.Debug("not enough hourly closes for macd")
		return true, nil
	}

	size := m.feed.Config().ANNOrderSize
	current := m.current

	switch {
	case indicators.Crossover(line, signal) && (current == nil || current.IsSell()) && buyProfit >= 0:
		if _, err := m.buy(ctx, size, buyProfit); err != nil {
			return false, err
		}
	case indicators.Crossunder(line, signal) && (current == nil || current.IsBuy()) && sellProfit >= 0:
		if _, err := m.sell(ctx, size, sellProfit); err != nil {
			return false, err
		}
	}

	return true, nil
}

// macdLines returns the MACD line and its signal line as [current, previous].
// The newest close belongs to the hour still in progress and is left out.
func macdLines(closes []float64) (line, signal []float64, ok bool) {
	if len(closes) == 0 {
		return nil, nil, false
	}
	closes = closes[:len(closes)-1]

	// two signal values need 2*signal+1 macd points, each needing 2*slow closes
	points := 2*macdSignal + 1
	if len(closes) < 2*macdSlow+points-1 {
		return nil, nil, false
	}

	macd := make([]float64, points)
	for i := range macd {
		end := len(closes) - points + 1 + i
		fast, err := indicators.EMA(closes[:end], macdFast)
		if err != nil {
			return nil, nil, false
		}
		slow, err := indicators.EMA(closes[:end], macdSlow)
		if err != nil {
			return nil, nil, false
		}
		macd[i] = fast - slow
	}

	current, err := indicators.EMA(macd, macdSignal)
	if err != nil {
		return nil, nil, false
	}
	previous, err := indicators.EMA(macd[:points-1], macdSignal)
	if err != nil {
		return nil, nil, false
	}

	return indicators.Recent(macd), []float64{current, previous}, true
}
