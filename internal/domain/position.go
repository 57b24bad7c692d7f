package domain

import (
	"math"

	"github.com/vadiminshakov/tickbot/pkg/indicators"
)

// CombinePositions collapses a most-recent-first fill history into at most one
// synthetic fill per side. Each side is folded with Combine and its rate is then
// replaced by the average of the fill rates weighted by their main currency totals.
func CombinePositions(fills []Order) (buy, sell *Order) {
	return foldSide(fills, SideBuy), foldSide(fills, SideSell)
}

func foldSide(fills []Order, side Side) *Order {
	var (
		combined *Order
		rates    []float64
		amounts  []float64
	)

	for _, fill := range fills {
		if fill.Side() != side {
			continue
		}

		if combined == nil {
			c := fill
			c.ID = ""
			combined = &c
		} else {
			c := combined.Combine(fill)
			combined = &c
		}

		rates = append(rates, fill.Rate)
		amounts = append(amounts, math.Abs(fill.TotalMain))
	}

	if combined == nil {
		return nil
	}

	// zero-notional fills carry no weight, keep the folded rate then
	if rate, err := indicators.WMA(rates, amounts); err == nil {
		combined.Rate = rate
	}

	return combined
}
