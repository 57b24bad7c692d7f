package domain

import (
	"time"

	"github.com/pkg/errors"
)

// CurrencyConfig per-pair strategy parameters. Percentages are fractions (0.1 means 10%).
type CurrencyConfig struct {
	Pair              Pair
	AltPercent        float64
	MainPercent       float64
	MinBuyProfit      float64
	MinSellProfit     float64
	NewOrderThreshold float64
	MinMain           float64
	MinAlt            float64
	TradingHistory    time.Duration
	InitialBuyRate    float64
	InitialSellRate   float64
	ANNOrderSize      float64
	ANNThreshold      float64
}

// WithPair returns a copy bound to the given pair.
func (c CurrencyConfig) WithPair(pair Pair) CurrencyConfig {
	c.Pair = pair
	return c
}

// Validate checks the configuration contract.
func (c CurrencyConfig) Validate() error {
	if c.Pair.Main == "" || c.Pair.Alt == "" {
		return errors.Wrap(ErrMalformedInput, "currency config has no pair")
	}
	if c.AltPercent < 0 || c.AltPercent > 1 || c.MainPercent < 0 || c.MainPercent > 1 {
		return errors.Wrapf(ErrMalformedInput, "%s: balance percentages must be within 0..100%%", c.Pair.String())
	}
	if c.MinMain < 0 || c.MinAlt < 0 || c.ANNOrderSize < 0 || c.ANNThreshold < 0 {
		return errors.Wrapf(ErrMalformedInput, "%s: minimums, order size and threshold must not be negative", c.Pair.String())
	}
	if c.TradingHistory < 0 {
		return errors.Wrapf(ErrMalformedInput, "%s: trading history must not be negative", c.Pair.String())
	}
	return nil
}

// Balances main and alt currency holdings of a feed.
type Balances struct {
	Main        float64
	Alt         float64
	MainInitial float64
	AltInitial  float64
}
