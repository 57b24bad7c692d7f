package strategy

import (
	"context"
	"time"

	"github.com/vadiminshakov/tickbot/internal/domain"
)

var testPair = domain.Pair{Main: "BTC", Alt: "LTC"}

// stubFeed a scripted feed that fills every order at the book.
type stubFeed struct {
	cfg      domain.CurrencyConfig
	interval time.Duration
	bid, ask float64
	balances domain.Balances
	bars     []domain.Bar
	fills    []domain.Order

	// exhaustAfter number of successful advances, negative for unlimited
	exhaustAfter int
	advanceErr   error
	advances     int
	buys, sells  []float64
}

func newStubFeed() *stubFeed {
	return &stubFeed{
		cfg: domain.CurrencyConfig{
			Pair:         testPair,
			AltPercent:   0.1,
			MainPercent:  0.1,
			ANNOrderSize: 0.5,
		},
		interval:     5 * time.Minute,
		bid:          1,
		ask:          1,
		balances:     domain.Balances{Main: 10, Alt: 10, MainInitial: 10, AltInitial: 10},
		exhaustAfter: -1,
	}
}

func (s *stubFeed) Pair() domain.Pair             { return s.cfg.Pair }
func (s *stubFeed) Config() domain.CurrencyConfig { return s.cfg }
func (s *stubFeed) Interval() time.Duration       { return s.interval }
func (s *stubFeed) Bid() float64                  { return s.bid }
func (s *stubFeed) Ask() float64                  { return s.ask }
func (s *stubFeed) Balances() domain.Balances     { return s.balances }
func (s *stubFeed) Bars() []domain.Bar            { return s.bars }
func (s *stubFeed) Fills() []domain.Order         { return s.fills }

func (s *stubFeed) Window(n int) []domain.Bar {
	if n > len(s.bars) {
		n = len(s.bars)
	}
	return s.bars[len(s.bars)-n:]
}

func (s *stubFeed) Advance(_ context.Context) (bool, error) {
	if s.advanceErr != nil {
		return false, s.advanceErr
	}
	if s.exhaustAfter >= 0 && s.advances >= s.exhaustAfter {
		return false, nil
	}
	s.advances++
	return true, nil
}

func (s *stubFeed) Buy(_ context.Context, alt float64) (*domain.Order, error) {
	s.buys = append(s.buys, alt)
	o := domain.NewOrder(domain.SideBuy, "", s.ask, alt*s.ask, alt, 0, s.cfg.Pair)
	s.fills = append([]domain.Order{o}, s.fills...)
	return &o, nil
}

func (s *stubFeed) Sell(_ context.Context, alt float64) (*domain.Order, error) {
	s.sells = append(s.sells, alt)
	o := domain.NewOrder(domain.SideSell, "", s.bid, alt*s.bid, alt, 0, s.cfg.Pair)
	s.fills = append([]domain.Order{o}, s.fills...)
	return &o, nil
}

// flatBars bars with every price at v.
func flatBars(n int, v float64) []domain.Bar {
	bars := make([]domain.Bar, n)
	for i := range bars {
		bars[i] = domain.Bar{Open: v, High: v, Low: v, Close: v, Volume: 1, WeightedAverage: v}
	}
	return bars
}

func closeBars(closes []float64) []domain.Bar {
	bars := make([]domain.Bar, len(closes))
	for i, c := range closes {
		bars[i] = domain.Bar{Open: c, High: c, Low: c, Close: c, Volume: 1, WeightedAverage: c}
	}
	return bars
}
