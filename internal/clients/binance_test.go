package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/pkg/retrier"
)

var ltc = domain.Pair{Main: "BTC", Alt: "LTC"}

func newTestBinance(t *testing.T, handler http.HandlerFunc) *Binance {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewBinanceClient("key", "secret")
	client.BaseURL = srv.URL

	b, err := NewBinance(client, []domain.Pair{ltc}, zap.NewNop(),
		WithRequestRate(1000),
		WithRetrier(retrier.New(retrier.WithInitialInterval(time.Millisecond), retrier.WithRetryIf(transient))),
	)
	require.NoError(t, err)

	return b
}

func TestNewBinance(t *testing.T) {
	_, err := NewBinance(nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestBinance_Balances(t *testing.T) {
	b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/account", r.URL.Path)
		_, _ = w.Write([]byte(`{"balances":[{"asset":"BTC","free":"1.5","locked":"0"},{"asset":"LTC","free":"20.25","locked":"1"}]}`))
	})

	balances, err := b.Balances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"BTC": 1.5, "LTC": 20.25}, balances)
}

func TestBinance_Ticker(t *testing.T) {
	t.Run("keeps configured pairs only", func(t *testing.T) {
		b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v3/ticker/bookTicker", r.URL.Path)
			_, _ = w.Write([]byte(`[
				{"symbol":"LTCBTC","bidPrice":"0.0021","bidQty":"1","askPrice":"0.0022","askQty":"2"},
				{"symbol":"ETHBTC","bidPrice":"0.05","bidQty":"1","askPrice":"0.051","askQty":"2"}
			]`))
		})

		tickers, err := b.Ticker(context.Background())
		require.NoError(t, err)
		require.Len(t, tickers, 1)
		assert.Equal(t, domain.Ticker{HighestBid: 0.0021, LowestAsk: 0.0022}, tickers["BTC_LTC"])
	})

	t.Run("api errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
		})

		_, err := b.Ticker(context.Background())
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server errors are retried", func(t *testing.T) {
		var calls atomic.Int32
		b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`[{"symbol":"LTCBTC","bidPrice":"1","bidQty":"1","askPrice":"2","askQty":"1"}]`))
		})

		tickers, err := b.Ticker(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.Ticker{HighestBid: 1, LowestAsk: 2}, tickers["BTC_LTC"])
		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestBinance_ChartData(t *testing.T) {
	start := time.UnixMilli(1499040000000)

	t.Run("parses klines", func(t *testing.T) {
		b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v3/klines", r.URL.Path)
			assert.Equal(t, "LTCBTC", r.URL.Query().Get("symbol"))
			assert.Equal(t, "5m", r.URL.Query().Get("interval"))
			assert.Equal(t, "1499040000000", r.URL.Query().Get("startTime"))
			_, _ = w.Write([]byte(`[
				[1499040000000,"1.0","2.0","0.5","1.5","10",1499040299999,"12",3,"5","6","0"],
				[1499040300000,"1.5","1.5","1.5","1.5","0",1499040599999,"0",0,"0","0","0"]
			]`))
		})

		bars, err := b.ChartData(context.Background(), ltc, 5*time.Minute, start)
		require.NoError(t, err)
		require.Len(t, bars, 2)

		assert.Equal(t, domain.Bar{
			Time: start, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10, WeightedAverage: 1.2,
		}, bars[0])
		assert.Equal(t, 1.5, bars[1].WeightedAverage)
	})

	t.Run("unsupported period", func(t *testing.T) {
		b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Fail(t, "no request expected")
		})

		_, err := b.ChartData(context.Background(), ltc, 7*time.Minute, start)
		assert.ErrorIs(t, err, domain.ErrMalformedInput)
	})
}

func TestBinance_PlaceBuy(t *testing.T) {
	b := newTestBinance(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/api/v3/order", r.URL.Path)
		assert.Equal(t, "LTCBTC", r.Form.Get("symbol"))
		assert.Equal(t, "BUY", r.Form.Get("side"))
		assert.Equal(t, "LIMIT", r.Form.Get("type"))
		assert.Equal(t, "GTC", r.Form.Get("timeInForce"))
		assert.Equal(t, "1.23456789", r.Form.Get("quantity"))
		assert.Equal(t, "0.0022", r.Form.Get("price"))
		assert.Contains(t, r.Form.Get("newClientOrderId"), clientOrderIDPrefix)
		_, _ = w.Write([]byte(`{"symbol":"LTCBTC","orderId":42,"clientOrderId":"x","transactTime":1}`))
	})

	id, err := b.PlaceBuy(context.Background(), ltc, 0.0022, 1.234567891)
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestFillsFromTrades(t *testing.T) {
	trades := []*binance.TradeV3{
		{ID: 3, OrderID: 8, Price: "2", Quantity: "1", QuoteQuantity: "2", Commission: "0.01", CommissionAsset: "LTC", Time: 300, IsBuyer: false},
		{ID: 1, OrderID: 7, Price: "1", Quantity: "1", QuoteQuantity: "1", Commission: "0.001", CommissionAsset: "BTC", Time: 100, IsBuyer: true},
		{ID: 2, OrderID: 7, Price: "2", Quantity: "1", QuoteQuantity: "2", Commission: "5", CommissionAsset: "BNB", Time: 200, IsBuyer: true},
	}

	fills, err := fillsFromTrades(trades, ltc)
	require.NoError(t, err)
	require.Len(t, fills, 2)

	assert.Equal(t, domain.RawFill{OrderNumber: "7", Type: "buy", Rate: 1.5, Total: 3, Amount: 2, Fee: 0.001}, fills[0])
	assert.Equal(t, domain.RawFill{OrderNumber: "8", Type: "sell", Rate: 2, Total: 2, Amount: 1, Fee: 0.02}, fills[1])

	t.Run("bad number", func(t *testing.T) {
		_, err := fillsFromTrades([]*binance.TradeV3{{Quantity: "x"}}, ltc)
		assert.Error(t, err)
	})
}
