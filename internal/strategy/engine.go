// Package strategy implements the trading decision engines. Each strategy drives
// one feed and evaluates its entry conditions once per tick.
package strategy

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
)

// Strategy one decision engine bound to a feed.
type Strategy interface {
	// Name returns the configured strategy name.
	Name() string
	// Tick evaluates the current market state and trades when the conditions hold.
	// It returns false once the feed is exhausted.
	Tick(ctx context.Context) (bool, error)
	State() State
	Stats() Stats
}

// State lifecycle of a strategy.
type State int

const (
	StateAwaitingFirstTick State = iota
	StateRunning
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateAwaitingFirstTick:
		return "awaiting_first_tick"
	case StateRunning:
		return "running"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Stats trade counters. A trade is a win when its closing profit was not negative
// at the moment it was taken.
type Stats struct {
	Wins   int
	Losses int
}

// Trades total number of counted trades.
func (s Stats) Trades() int {
	return s.Wins + s.Losses
}

// engine state shared by every strategy.
type engine struct {
	name    string
	feed    feed.Feed
	l       *zap.Logger
	state   State
	stats   Stats
	current *domain.Order
}

func newEngine(name string, f feed.Feed, logger *zap.Logger) engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return engine{
		name: name,
		feed: f,
		l:    logger.With(zap.String("strategy", name), zap.String("pair", f.Pair().String())),
	}
}

func (e *engine) Name() string { return e.name }
func (e *engine) State() State { return e.state }
func (e *engine) Stats() Stats { return e.stats }

// begin moves the lifecycle forward. The first tick evaluates the already loaded
// data without advancing the feed. ok is false when there is nothing to evaluate.
func (e *engine) begin(ctx context.Context) (bool, error) {
	switch e.state {
	case StateExhausted:
		return false, nil
	case StateAwaitingFirstTick:
		e.state = StateRunning
	default:
		ok, err := e.feed.Advance(ctx)
		if err != nil {
			return false, errors.Wrap(err, "advance feed")
		}
		if !ok {
			e.state = StateExhausted
			e.l.Debug("feed exhausted")
			return false, nil
		}
	}

	if fills := e.feed.Fills(); len(fills) > 0 {
		current := fills[0]
		e.current = &current
	}

	return true, nil
}

// profits closing profits of the current fill against the book, zero without one.
func (e *engine) profits() (buy, sell float64) {
	if e.current == nil {
		return 0, 0
	}
	return profitAgainst(e.current.Rate, e.feed.Ask(), e.feed.Bid())
}

func profitAgainst(rate, ask, bid float64) (buy, sell float64) {
	return rate/ask - 1, bid/rate - 1
}

func (e *engine) record(profit float64) {
	if profit >= 0 {
		e.stats.Wins++
	} else {
		e.stats.Losses++
	}
}

// buy places a buy of alt and counts it by profit. It reports whether a fill happened.
func (e *engine) buy(ctx context.Context, alt, profit float64) (bool, error) {
	order, err := e.feed.Buy(ctx, alt)
	if err != nil {
		return false, errors.Wrap(err, "buy")
	}
	return e.filled(order, profit), nil
}

// sell places a sell of alt and counts it by profit. It reports whether a fill happened.
func (e *engine) sell(ctx context.Context, alt, profit float64) (bool, error) {
	order, err := e.feed.Sell(ctx, alt)
	if err != nil {
		return false, errors.Wrap(err, "sell")
	}
	return e.filled(order, profit), nil
}

func (e *engine) filled(order *domain.Order, profit float64) bool {
	if order == nil {
		e.l.Debug("trade declined by the feed")
		return false
	}

	e.record(profit)
	e.l.Info("trade filled",
		zap.String("side", order.Side().String()),
		zap.Float64("rate", order.Rate),
		zap.Float64("main", order.TotalMain),
		zap.Float64("alt", order.AmountAlt),
		zap.Float64("fee", order.Fee),
		zap.Float64("profit", profit))

	return true
}
