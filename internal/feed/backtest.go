package feed

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
)

// FeeRate simulated exchange fee charged on the main currency total.
const FeeRate = 0.0025

// Backtest replays a historical series through a sliding window of fixed size
// and simulates fills against an in-memory ledger.
type Backtest struct {
	cfg      domain.CurrencyConfig
	interval time.Duration
	logger   *zap.Logger

	// series remaining bars, the window is its first offset bars
	series   []domain.Bar
	offset   int
	bid, ask float64
	balances domain.Balances
	fills    []domain.Order
}

// NewBacktest creates a replay over series using a window of offset bars.
func NewBacktest(cfg domain.CurrencyConfig, series []domain.Bar, interval time.Duration, offset int, main, alt float64, logger *zap.Logger) (*Backtest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if offset < 1 {
		return nil, errors.Wrapf(domain.ErrMalformedInput, "backtest window must hold at least one bar, got %d", offset)
	}
	if len(series) < offset {
		return nil, errors.Wrapf(domain.ErrMalformedInput, "backtest series has %d bars, window needs %d", len(series), offset)
	}

	b := &Backtest{
		cfg:      cfg,
		interval: interval,
		logger:   logger.With(zap.String("pair", cfg.Pair.String())),
		series:   series,
		offset:   offset,
		balances: domain.Balances{Main: main, Alt: alt, MainInitial: main, AltInitial: alt},
	}
	b.updatePrices()

	return b, nil
}

func (b *Backtest) Pair() domain.Pair             { return b.cfg.Pair }
func (b *Backtest) Config() domain.CurrencyConfig { return b.cfg }
func (b *Backtest) Interval() time.Duration       { return b.interval }
func (b *Backtest) Bid() float64                  { return b.bid }
func (b *Backtest) Ask() float64                  { return b.ask }
func (b *Backtest) Balances() domain.Balances     { return b.balances }
func (b *Backtest) Fills() []domain.Order         { return b.fills }
func (b *Backtest) Window(n int) []domain.Bar     { return lastBars(b.Bars(), n) }
func (b *Backtest) Bars() []domain.Bar            { return b.series[:b.offset:b.offset] }

// Remaining number of ticks the replay can still advance.
func (b *Backtest) Remaining() int {
	return len(b.series) - b.offset
}

// Advance drops the oldest bar. Balances are never touched.
func (b *Backtest) Advance(_ context.Context) (bool, error) {
	if len(b.series) <= b.offset {
		return false, nil
	}

	b.series = b.series[1:]
	b.updatePrices()

	return true, nil
}

func (b *Backtest) updatePrices() {
	last := b.series[b.offset-1]
	b.bid, b.ask = last.Close, last.Close
}

// Buy simulates a fill of alt at the ask.
func (b *Backtest) Buy(_ context.Context, alt float64) (*domain.Order, error) {
	if alt <= 0 {
		return nil, nil
	}

	total := alt * b.ask
	if b.balances.Main-total < b.cfg.MinMain {
		b.logger.Debug("buy declined, main balance floor",
			zap.Float64("main", b.balances.Main),
			zap.Float64("total", total))
		return nil, nil
	}

	fee := total * FeeRate
	order := domain.NewOrder(domain.SideBuy, "", b.ask, total, alt, fee, b.cfg.Pair)
	b.balances.Main += order.TotalMain - fee
	b.balances.Alt += order.AmountAlt
	b.fills = prepend(b.fills, order)

	return &order, nil
}

// Sell simulates a fill of alt at the bid.
func (b *Backtest) Sell(_ context.Context, alt float64) (*domain.Order, error) {
	if alt <= 0 {
		return nil, nil
	}

	if b.balances.Alt-alt < b.cfg.MinAlt {
		b.logger.Debug("sell declined, alt balance floor",
			zap.Float64("alt", b.balances.Alt),
			zap.Float64("amount", alt))
		return nil, nil
	}

	total := alt * b.bid
	fee := total * FeeRate
	order := domain.NewOrder(domain.SideSell, "", b.bid, total, alt, fee, b.cfg.Pair)
	b.balances.Main += order.TotalMain - fee
	b.balances.Alt += order.AmountAlt
	b.fills = prepend(b.fills, order)

	return &order, nil
}
