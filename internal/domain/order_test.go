package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var btcLtc = Pair{Main: "BTC", Alt: "LTC"}

func TestNewOrder(t *testing.T) {
	t.Run("buy spends main", func(t *testing.T) {
		o := NewOrder(SideBuy, "1", 0.01, 0.5, 50, 0.001, btcLtc)
		assert.Equal(t, -0.5, o.TotalMain)
		assert.Equal(t, 50.0, o.AmountAlt)
		assert.True(t, o.IsBuy())
		assert.False(t, o.IsSell())
		assert.Equal(t, SideBuy, o.Side())
	})

	t.Run("sell spends alt", func(t *testing.T) {
		o := NewOrder(SideSell, "2", 0.01, 0.5, 50, 0.001, btcLtc)
		assert.Equal(t, 0.5, o.TotalMain)
		assert.Equal(t, -50.0, o.AmountAlt)
		assert.True(t, o.IsSell())
		assert.Equal(t, SideSell, o.Side())
	})
}

func TestOrderFromRaw(t *testing.T) {
	t.Run("buy", func(t *testing.T) {
		o, err := OrderFromRaw(RawFill{OrderNumber: "7", Type: "buy", Rate: 2, Total: 10, Amount: 5, Fee: 0.1}, btcLtc)
		require.NoError(t, err)
		assert.Equal(t, Order{ID: "7", Rate: 2, TotalMain: -10, AmountAlt: 5, Fee: 0.1, Pair: btcLtc}, o)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := OrderFromRaw(RawFill{Type: "hold"}, btcLtc)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := OrderFromRaw(RawFill{Type: "sell", Rate: -1}, btcLtc)
		assert.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestOrder_Combine(t *testing.T) {
	a := NewOrder(SideBuy, "a", 2, 10, 5, 0.1, btcLtc)
	b := NewOrder(SideBuy, "b", 4, 20, 5, 0.2, btcLtc)

	c := a.Combine(b)
	assert.Empty(t, c.ID)
	assert.Equal(t, -30.0, c.TotalMain)
	assert.Equal(t, 10.0, c.AmountAlt)
	assert.InDelta(t, 0.3, c.Fee, 1e-12)
	assert.Equal(t, 3.0, c.Rate)
	assert.True(t, c.IsBuy())

	t.Run("zero rate takes the other", func(t *testing.T) {
		zero := Order{Pair: btcLtc}
		assert.Equal(t, 4.0, zero.Combine(b).Rate)
	})
}

func TestCombinePositions(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		buy, sell := CombinePositions(nil)
		assert.Nil(t, buy)
		assert.Nil(t, sell)
	})

	t.Run("single fill keeps its rate", func(t *testing.T) {
		fill := NewOrder(SideSell, "1", 0.0123, 0.05, 4.065, 0, btcLtc)
		buy, sell := CombinePositions([]Order{fill})
		assert.Nil(t, buy)
		require.NotNil(t, sell)
		assert.Equal(t, 0.0123, sell.Rate)
		assert.Equal(t, 0.05, sell.TotalMain)
	})

	t.Run("both sides weighted by main totals", func(t *testing.T) {
		fills := []Order{
			NewOrder(SideBuy, "4", 10, 1, 0.1, 0, btcLtc),
			NewOrder(SideSell, "3", 12, 2, 0.16, 0, btcLtc),
			NewOrder(SideBuy, "2", 20, 3, 0.15, 0, btcLtc),
			NewOrder(SideSell, "1", 14, 2, 0.14, 0, btcLtc),
		}

		buy, sell := CombinePositions(fills)
		require.NotNil(t, buy)
		require.NotNil(t, sell)

		assert.Equal(t, -4.0, buy.TotalMain)
		assert.InDelta(t, 0.25, buy.AmountAlt, 1e-12)
		assert.InDelta(t, 17.5, buy.Rate, 1e-12)

		assert.Equal(t, 4.0, sell.TotalMain)
		assert.InDelta(t, -0.3, sell.AmountAlt, 1e-12)
		assert.InDelta(t, 13.0, sell.Rate, 1e-12)
	})

	t.Run("sums over the history", func(t *testing.T) {
		fills := []Order{
			NewOrder(SideBuy, "3", 1, 1, 1, 0.01, btcLtc),
			NewOrder(SideBuy, "2", 2, 2, 1, 0.02, btcLtc),
			NewOrder(SideBuy, "1", 3, 3, 1, 0.03, btcLtc),
		}

		buy, sell := CombinePositions(fills)
		assert.Nil(t, sell)
		require.NotNil(t, buy)
		assert.Equal(t, -6.0, buy.TotalMain)
		assert.Equal(t, 3.0, buy.AmountAlt)
		assert.InDelta(t, 0.06, buy.Fee, 1e-12)
	})
}

func TestParsePair(t *testing.T) {
	p, err := ParsePair("btc_ltc")
	require.NoError(t, err)
	assert.Equal(t, btcLtc, p)
	assert.Equal(t, "BTC_LTC", p.String())
	assert.Equal(t, "LTCBTC", p.Symbol())

	for _, s := range []string{"", "BTC", "BTC_", "_LTC", "A_B_C"} {
		_, err := ParsePair(s)
		assert.ErrorIs(t, err, ErrMalformedInput, s)
	}
}

func TestCurrencyConfig_Validate(t *testing.T) {
	valid := CurrencyConfig{Pair: btcLtc, AltPercent: 0.1, MainPercent: 0.1}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.AltPercent = 1.5
	assert.ErrorIs(t, bad.Validate(), ErrMalformedInput)

	bad = valid
	bad.Pair = Pair{}
	assert.ErrorIs(t, bad.Validate(), ErrMalformedInput)
}

func TestExchangeError(t *testing.T) {
	err := NewExchangeError("ticker", assert.AnError)
	assert.ErrorIs(t, err, ErrExchange)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "ticker")
}
