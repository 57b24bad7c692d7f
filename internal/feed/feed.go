// Package feed provides the time series the strategies trade on: a replay of
// historical bars for backtests and a polled exchange for live trading.
package feed

import (
	"context"
	"time"

	"github.com/vadiminshakov/tickbot/internal/domain"
)

// Feed market state of one pair together with the balance ledger it trades against.
//
// Bars are ordered oldest first, fills most recent first. A nil order with a nil
// error from Buy or Sell means the trade was declined.
type Feed interface {
	Pair() domain.Pair
	Config() domain.CurrencyConfig
	// Interval spacing of the bars.
	Interval() time.Duration
	Bid() float64
	Ask() float64
	Balances() domain.Balances
	Bars() []domain.Bar
	// Window returns the last n bars.
	Window(n int) []domain.Bar
	Fills() []domain.Order
	// Advance moves the feed one tick forward. It returns false once the feed is exhausted.
	Advance(ctx context.Context) (bool, error)
	Buy(ctx context.Context, alt float64) (*domain.Order, error)
	Sell(ctx context.Context, alt float64) (*domain.Order, error)
}

// Exchange capability set the live feed polls.
type Exchange interface {
	// Balances free balances keyed by currency symbol.
	Balances(ctx context.Context) (map[string]float64, error)
	// Ticker best bid and ask keyed by pair string (MAIN_ALT).
	Ticker(ctx context.Context) (map[string]domain.Ticker, error)
	// ChartData bars of the given period since start, oldest first.
	ChartData(ctx context.Context, pair domain.Pair, period time.Duration, start time.Time) ([]domain.Bar, error)
	// AccountTradeHistory own fills since start, oldest first.
	AccountTradeHistory(ctx context.Context, pair domain.Pair, start time.Time) ([]domain.RawFill, error)
	PlaceBuy(ctx context.Context, pair domain.Pair, rate, amount float64) (string, error)
	PlaceSell(ctx context.Context, pair domain.Pair, rate, amount float64) (string, error)
}

// WindowSize converts a lookback duration to a number of bars.
func WindowSize(dataOffset, interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	return int(dataOffset / interval)
}

func lastBars(bars []domain.Bar, n int) []domain.Bar {
	if n <= 0 {
		return nil
	}
	if n > len(bars) {
		n = len(bars)
	}
	return bars[len(bars)-n:]
}

func prepend(fills []domain.Order, o domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(fills)+1)
	out = append(out, o)
	return append(out, fills...)
}
