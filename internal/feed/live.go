package feed

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
)

const (
	defaultPollInterval = time.Second
	defaultMaxPolls     = 300
	chartLookback       = 24 * time.Hour
	fillLookback        = 60 * time.Minute
	minTradingHistory   = 5 * time.Minute
)

// Live polls an exchange for market state and places real orders.
type Live struct {
	exchange Exchange
	cfg      domain.CurrencyConfig
	interval time.Duration
	logger   *zap.Logger

	pollInterval time.Duration
	maxPolls     int
	now          func() time.Time

	primed   bool
	bid, ask float64
	balances domain.Balances
	bars     []domain.Bar
	fills    []domain.Order
}

// LiveOption configures a Live feed.
type LiveOption func(*Live)

// WithPollInterval sets the delay between fill confirmation polls.
func WithPollInterval(d time.Duration) LiveOption {
	return func(l *Live) {
		l.pollInterval = d
	}
}

// WithMaxPolls sets the number of fill confirmation polls before giving up.
func WithMaxPolls(n int) LiveOption {
	return func(l *Live) {
		l.maxPolls = n
	}
}

// WithClock replaces the wall clock used for lookback windows.
func WithClock(now func() time.Time) LiveOption {
	return func(l *Live) {
		l.now = now
	}
}

// NewLive creates a live feed and loads the initial market state, so the first
// strategy tick can evaluate without advancing.
func NewLive(ctx context.Context, exchange Exchange, cfg domain.CurrencyConfig, interval time.Duration, logger *zap.Logger, opts ...LiveOption) (*Live, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exchange == nil {
		return nil, errors.Wrap(domain.ErrMalformedInput, "live feed requires an exchange")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, errors.Wrapf(domain.ErrMalformedInput, "invalid bar interval %s", interval)
	}

	l := &Live{
		exchange:     exchange,
		cfg:          cfg,
		interval:     interval,
		logger:       logger.With(zap.String("pair", cfg.Pair.String())),
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.refresh(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Live) Pair() domain.Pair             { return l.cfg.Pair }
func (l *Live) Config() domain.CurrencyConfig { return l.cfg }
func (l *Live) Interval() time.Duration       { return l.interval }
func (l *Live) Bid() float64                  { return l.bid }
func (l *Live) Ask() float64                  { return l.ask }
func (l *Live) Balances() domain.Balances     { return l.balances }
func (l *Live) Bars() []domain.Bar            { return l.bars }
func (l *Live) Window(n int) []domain.Bar     { return lastBars(l.bars, n) }
func (l *Live) Fills() []domain.Order         { return l.fills }

// Advance re-reads balances, ticker, the last 24 hours of bars and the fill history.
// A live feed is never exhausted.
func (l *Live) Advance(ctx context.Context) (bool, error) {
	if err := l.refresh(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Live) refresh(ctx context.Context) error {
	pair := l.cfg.Pair

	balances, err := l.exchange.Balances(ctx)
	if err != nil {
		return domain.NewExchangeError("balances", err)
	}
	main, ok := balances[pair.Main]
	if !ok {
		return domain.NewExchangeError("balances", errors.Errorf("no %s balance", pair.Main))
	}
	alt, ok := balances[pair.Alt]
	if !ok {
		return domain.NewExchangeError("balances", errors.Errorf("no %s balance", pair.Alt))
	}

	ticker, err := l.exchange.Ticker(ctx)
	if err != nil {
		return domain.NewExchangeError("ticker", err)
	}
	t, ok := ticker[pair.String()]
	if !ok {
		return domain.NewExchangeError("ticker", errors.Errorf("no ticker for %s", pair.String()))
	}

	now := l.now()
	bars, err := l.exchange.ChartData(ctx, pair, l.interval, now.Add(-chartLookback))
	if err != nil {
		return domain.NewExchangeError("chart data", err)
	}

	history := l.cfg.TradingHistory
	if history < minTradingHistory {
		history = minTradingHistory
	}
	fills, err := l.history(ctx, now.Add(-history))
	if err != nil {
		return err
	}

	if !l.primed {
		l.balances.MainInitial, l.balances.AltInitial = main, alt
		l.primed = true
	}
	l.balances.Main, l.balances.Alt = main, alt
	l.bid, l.ask = t.HighestBid, t.LowestAsk
	l.bars = bars
	l.fills = fills

	return nil
}

// history returns the fills since start, most recent first.
func (l *Live) history(ctx context.Context, start time.Time) ([]domain.Order, error) {
	raw, err := l.exchange.AccountTradeHistory(ctx, l.cfg.Pair, start)
	if err != nil {
		return nil, domain.NewExchangeError("trade history", err)
	}

	fills := make([]domain.Order, len(raw))
	for i, r := range raw {
		o, err := domain.OrderFromRaw(r, l.cfg.Pair)
		if err != nil {
			return nil, domain.NewExchangeError("trade history", err)
		}
		fills[len(raw)-1-i] = o
	}

	return fills, nil
}

// Buy places a limit buy at the ask and waits for the fill.
func (l *Live) Buy(ctx context.Context, alt float64) (*domain.Order, error) {
	if alt <= 0 {
		return nil, nil
	}

	id, err := l.exchange.PlaceBuy(ctx, l.cfg.Pair, l.ask, alt)
	if err != nil {
		return nil, domain.NewExchangeError("place buy", err)
	}

	return l.awaitFill(ctx, id)
}

// Sell places a limit sell at the bid and waits for the fill.
func (l *Live) Sell(ctx context.Context, alt float64) (*domain.Order, error) {
	if alt <= 0 {
		return nil, nil
	}

	id, err := l.exchange.PlaceSell(ctx, l.cfg.Pair, l.bid, alt)
	if err != nil {
		return nil, domain.NewExchangeError("place sell", err)
	}

	return l.awaitFill(ctx, id)
}

// awaitFill polls the order history until the order shows up. The wait ignores
// cancellation: an order already on the book has to be accounted for.
func (l *Live) awaitFill(ctx context.Context, id string) (*domain.Order, error) {
	ctx = context.WithoutCancel(ctx)
	logger := l.logger.With(zap.String("order_id", id))

	for attempt := 1; attempt <= l.maxPolls; attempt++ {
		time.Sleep(l.pollInterval)

		fills, err := l.history(ctx, l.now().Add(-fillLookback))
		if err != nil {
			return nil, err
		}

		for _, fill := range fills {
			if fill.ID != id {
				continue
			}

			logger.Debug("fill confirmed", zap.Int("attempt", attempt))
			l.fills = prepend(l.fills, fill)
			return &fill, nil
		}
	}

	logger.Warn("fill never showed up in the order history", zap.Int("attempts", l.maxPolls))

	return nil, errors.Wrapf(domain.ErrFillConfirmationTimeout, "order %s after %d polls", id, l.maxPolls)
}
