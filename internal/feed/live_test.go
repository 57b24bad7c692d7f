package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed/mocks"
)

var liveNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return liveNow }

func expectRefresh(ex *mocks.Exchange, history []domain.RawFill) {
	ex.On("Balances", mock.Anything).Return(map[string]float64{"BTC": 1.5, "LTC": 20}, nil)
	ex.On("Ticker", mock.Anything).Return(map[string]domain.Ticker{
		"BTC_LTC": {HighestBid: 0.0101, LowestAsk: 0.0102},
	}, nil)
	ex.On("ChartData", mock.Anything, testPair, 5*time.Minute, liveNow.Add(-24*time.Hour)).Return(closes(1, 2, 3), nil)
	ex.On("AccountTradeHistory", mock.Anything, testPair, liveNow.Add(-time.Hour)).Return(history, nil)
}

func newTestLive(t *testing.T, ex *mocks.Exchange) *Live {
	cfg := testConfig()
	cfg.TradingHistory = time.Hour

	l, err := NewLive(context.Background(), ex, cfg, 5*time.Minute, zap.NewNop(),
		WithClock(clock), WithPollInterval(0))
	require.NoError(t, err)
	return l
}

func TestLive_Refresh(t *testing.T) {
	ex := mocks.NewExchange(t)
	expectRefresh(ex, []domain.RawFill{
		{OrderNumber: "1", Type: "buy", Rate: 0.01, Total: 0.1, Amount: 10, Fee: 0.0001},
		{OrderNumber: "2", Type: "sell", Rate: 0.011, Total: 0.055, Amount: 5, Fee: 0.0001},
	})

	l := newTestLive(t, ex)

	assert.Equal(t, 0.0101, l.Bid())
	assert.Equal(t, 0.0102, l.Ask())
	assert.Equal(t, domain.Balances{Main: 1.5, Alt: 20, MainInitial: 1.5, AltInitial: 20}, l.Balances())
	assert.Len(t, l.Bars(), 3)

	fills := l.Fills()
	require.Len(t, fills, 2)
	assert.Equal(t, "2", fills[0].ID)
	assert.True(t, fills[0].IsSell())
	assert.Equal(t, "1", fills[1].ID)

	ok, err := l.Advance(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLive_MinimumHistoryLookback(t *testing.T) {
	ex := mocks.NewExchange(t)
	ex.On("Balances", mock.Anything).Return(map[string]float64{"BTC": 1, "LTC": 1}, nil)
	ex.On("Ticker", mock.Anything).Return(map[string]domain.Ticker{"BTC_LTC": {HighestBid: 1, LowestAsk: 1}}, nil)
	ex.On("ChartData", mock.Anything, testPair, 5*time.Minute, mock.Anything).Return(nil, nil)
	ex.On("AccountTradeHistory", mock.Anything, testPair, liveNow.Add(-5*time.Minute)).Return(nil, nil)

	_, err := NewLive(context.Background(), ex, testConfig(), 5*time.Minute, nil, WithClock(clock))
	require.NoError(t, err)
}

func TestLive_ExchangeErrors(t *testing.T) {
	t.Run("balances call fails", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		ex.On("Balances", mock.Anything).Return(nil, assert.AnError)

		_, err := NewLive(context.Background(), ex, testConfig(), 5*time.Minute, nil, WithClock(clock))
		assert.ErrorIs(t, err, domain.ErrExchange)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("missing ticker entry", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		ex.On("Balances", mock.Anything).Return(map[string]float64{"BTC": 1, "LTC": 1}, nil)
		ex.On("Ticker", mock.Anything).Return(map[string]domain.Ticker{"BTC_ETH": {}}, nil)

		_, err := NewLive(context.Background(), ex, testConfig(), 5*time.Minute, nil, WithClock(clock))
		assert.ErrorIs(t, err, domain.ErrExchange)
	})

	t.Run("missing balance entry", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		ex.On("Balances", mock.Anything).Return(map[string]float64{"BTC": 1}, nil)

		_, err := NewLive(context.Background(), ex, testConfig(), 5*time.Minute, nil, WithClock(clock))
		assert.ErrorIs(t, err, domain.ErrExchange)
	})

	t.Run("order placement fails", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		expectRefresh(ex, nil)
		ex.On("PlaceSell", mock.Anything, testPair, 0.0101, 1.0).Return("", assert.AnError)

		l := newTestLive(t, ex)
		o, err := l.Sell(context.Background(), 1)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, domain.ErrExchange)
	})
}

func TestLive_Buy(t *testing.T) {
	t.Run("fill found on a later poll", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		expectRefresh(ex, nil)

		l := newTestLive(t, ex)
		ex.ExpectedCalls = ex.ExpectedCalls[:0]

		fill := domain.RawFill{OrderNumber: "42", Type: "buy", Rate: 0.0102, Total: 0.0204, Amount: 2, Fee: 0.00005}
		ex.On("PlaceBuy", mock.Anything, testPair, 0.0102, 2.0).Return("42", nil).Once()
		ex.On("AccountTradeHistory", mock.Anything, testPair, liveNow.Add(-60*time.Minute)).Return(nil, nil).Twice()
		ex.On("AccountTradeHistory", mock.Anything, testPair, liveNow.Add(-60*time.Minute)).Return([]domain.RawFill{fill}, nil).Once()

		o, err := l.Buy(context.Background(), 2)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, "42", o.ID)
		assert.Equal(t, -0.0204, o.TotalMain)
		require.Len(t, l.Fills(), 1)
		assert.Equal(t, "42", l.Fills()[0].ID)
	})

	t.Run("gives up after exactly 300 polls", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		expectRefresh(ex, nil)

		l := newTestLive(t, ex)
		ex.ExpectedCalls = ex.ExpectedCalls[:0]
		ex.Calls = ex.Calls[:0]
		ex.On("PlaceBuy", mock.Anything, testPair, 0.0102, 1.0).Return("7", nil).Once()
		ex.On("AccountTradeHistory", mock.Anything, testPair, liveNow.Add(-60*time.Minute)).Return([]domain.RawFill{
			{OrderNumber: "6", Type: "buy", Rate: 0.01, Total: 0.01, Amount: 1},
		}, nil)

		o, err := l.Buy(context.Background(), 1)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, domain.ErrFillConfirmationTimeout)
		ex.AssertNumberOfCalls(t, "AccountTradeHistory", 300)
	})

	t.Run("wait survives cancellation", func(t *testing.T) {
		ex := mocks.NewExchange(t)
		expectRefresh(ex, nil)

		l := newTestLive(t, ex)
		ex.ExpectedCalls = ex.ExpectedCalls[:0]
		ex.On("PlaceBuy", mock.Anything, testPair, 0.0102, 1.0).Return("9", nil).Once()
		ex.On("AccountTradeHistory", mock.Anything, testPair, liveNow.Add(-60*time.Minute)).Return(
			func(ctx context.Context, _ domain.Pair, _ time.Time) ([]domain.RawFill, error) {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return []domain.RawFill{{OrderNumber: "9", Type: "buy", Rate: 0.0102, Total: 0.0102, Amount: 1}}, nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		o, err := l.Buy(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, "9", o.ID)
	})
}
