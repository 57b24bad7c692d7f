package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// RawFill unsigned fill as reported by the exchange order history.
type RawFill struct {
	OrderNumber string
	Type        string
	Rate        float64
	Total       float64
	Amount      float64
	Fee         float64
}

// Order one completed fill with signed quantities.
//
// A buy spends main currency (TotalMain < 0) and gains alt currency (AmountAlt > 0),
// a sell is the mirror. The side is always derived from the sign of TotalMain.
type Order struct {
	// ID exchange order number, empty for simulated or combined fills.
	ID        string
	Rate      float64
	TotalMain float64
	AmountAlt float64
	Fee       float64
	Pair      Pair
}

// NewOrder builds a fill from unsigned quantities applying the sign convention.
func NewOrder(side Side, id string, rate, total, amount, fee float64, pair Pair) Order {
	o := Order{ID: id, Rate: rate, TotalMain: total, AmountAlt: amount, Fee: fee, Pair: pair}
	if side == SideBuy {
		o.TotalMain = -total
	} else {
		o.AmountAlt = -amount
	}
	return o
}

// OrderFromRaw converts an exchange fill.
func OrderFromRaw(raw RawFill, pair Pair) (Order, error) {
	side, ok := ParseSide(raw.Type)
	if !ok {
		return Order{}, errors.Wrapf(ErrMalformedInput, "order %s has unknown type %q", raw.OrderNumber, raw.Type)
	}
	if raw.Rate < 0 || raw.Fee < 0 {
		return Order{}, errors.Wrapf(ErrMalformedInput, "order %s has negative rate or fee", raw.OrderNumber)
	}

	return NewOrder(side, raw.OrderNumber, raw.Rate, raw.Total, raw.Amount, raw.Fee, pair), nil
}

// Side derived from the sign of TotalMain.
func (o Order) Side() Side {
	if o.TotalMain > 0 {
		return SideSell
	}
	return SideBuy
}

// IsBuy reports whether main currency was spent.
func (o Order) IsBuy() bool {
	return o.TotalMain < 0
}

// IsSell reports whether main currency was received.
func (o Order) IsSell() bool {
	return o.TotalMain > 0
}

// Combine merges a same-direction fill into a new record.
// The id is cleared and the rate becomes the plain average of both rates,
// callers wanting a volume weighted rate replace it afterwards.
func (o Order) Combine(other Order) Order {
	rate := other.Rate
	if o.Rate != 0 {
		rate = (o.Rate + other.Rate) / 2
	}

	return Order{
		Rate:      rate,
		TotalMain: o.TotalMain + other.TotalMain,
		AmountAlt: o.AmountAlt + other.AmountAlt,
		Fee:       o.Fee + other.Fee,
		Pair:      o.Pair,
	}
}

// String returns a human-readable representation.
func (o Order) String() string {
	return fmt.Sprintf("%s %s rate: %g main: %g alt: %g fee: %g", o.Pair.String(), o.Side().String(), o.Rate, o.TotalMain, o.AmountAlt, o.Fee)
}
