package strategy

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
)

const (
	// minTradeMain smallest trade in main currency the exchange accepts.
	minTradeMain = 0.0001
	sizeStep     = 0.01
)

// Composite trades the EMA band against volume weighted combined positions, so
// it does not add to a side that is already under water.
type Composite struct {
	engine
	combinedBuy  *domain.Order
	combinedSell *domain.Order
}

// NewComposite creates a composite strategy.
func NewComposite(f feed.Feed, logger *zap.Logger) *Composite {
	return &Composite{engine: newEngine(NameComposite, f, logger)}
}

// Positions returns the combined buy and sell positions of the last tick.
func (c *Composite) Positions() (buy, sell *domain.Order) {
	return c.combinedBuy, c.combinedSell
}

func (c *Composite) Tick(ctx context.Context) (bool, error) {
	ok, err := c.begin(ctx)
	if !ok {
		return false, err
	}

	c.combinedBuy, c.combinedSell = domain.CombinePositions(c.feed.Fills())
	cfg := c.feed.Config()

	var buyProfit, sellProfit float64
	if c.combinedSell != nil {
		buyProfit = c.combinedSell.Rate/c.feed.Ask() - 1
	}
	if c.combinedBuy != nil {
		sellProfit = c.feed.Bid()/c.combinedBuy.Rate - 1
	}

	lower, upper, ok := band(c.feed.Bars())
	if !ok {
		return true, nil
	}

	short := c.feed.Bid() > upper && (c.combinedBuy == nil || sellProfit >= cfg.MinSellProfit)
	long := c.feed.Ask() < lower && (c.combinedSell == nil || buyProfit >= cfg.MinBuyProfit)

	switch {
	case short:
		alt, err := c.sellAmount()
		if err != nil {
			c.l.Debug("sell skipped", zap.Error(err))
			return true, nil
		}
		if _, err := c.sell(ctx, alt, sellProfit); err != nil {
			return false, err
		}
	case long:
		if _, err := c.buy(ctx, c.buyAmount(), buyProfit); err != nil {
			return false, err
		}
	}

	return true, nil
}

// sellAmount grows the sold share of the alt balance in 1% steps until the
// trade clears the minimum main currency total.
func (c *Composite) sellAmount() (float64, error) {
	balance := c.feed.Balances().Alt
	bid := c.feed.Bid()
	if balance <= 0 {
		return 0, errors.Wrap(domain.ErrInsufficientBalance, "no alt balance")
	}

	percent := c.feed.Config().AltPercent
	for {
		percent = math.Min(percent, 1)
		amount := balance * percent
		if amount*bid >= minTradeMain {
			return amount, nil
		}
		if percent >= 1 {
			break
		}
		percent += sizeStep
	}

	return 0, errors.Wrapf(domain.ErrInsufficientBalance, "alt balance %g is below the minimum trade at bid %g", balance, bid)
}

// buyAmount spends a share of the main balance but never less than the minimum trade.
func (c *Composite) buyAmount() float64 {
	main := c.feed.Balances().Main * c.feed.Config().MainPercent
	if main < minTradeMain {
		main = minTradeMain
	}
	return main / c.feed.Ask()
}
