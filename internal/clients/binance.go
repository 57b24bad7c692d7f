// Package clients implements the exchange capability set over real exchange APIs.
package clients

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/pkg/retrier"
)

const (
	klinesLimit         = 1000
	tradesLimit         = 1000
	defaultRequestRate  = 10
	quantityPrecision   = 8
	clientOrderIDPrefix = "tickbot-"
)

var klineIntervals = map[time.Duration]string{
	time.Minute:      "1m",
	3 * time.Minute:  "3m",
	5 * time.Minute:  "5m",
	15 * time.Minute: "15m",
	30 * time.Minute: "30m",
	time.Hour:        "1h",
	2 * time.Hour:    "2h",
	4 * time.Hour:    "4h",
	6 * time.Hour:    "6h",
	8 * time.Hour:    "8h",
	12 * time.Hour:   "12h",
	24 * time.Hour:   "1d",
}

// Binance spot exchange client.
type Binance struct {
	client  *binance.Client
	pairs   map[string]domain.Pair
	limiter *rate.Limiter
	retrier *retrier.Retrier
	logger  *zap.Logger
}

// BinanceOption configures a Binance client.
type BinanceOption func(*Binance)

// WithRequestRate limits requests per second.
func WithRequestRate(perSecond float64) BinanceOption {
	return func(b *Binance) {
		b.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithRetrier replaces the backoff used for read requests.
func WithRetrier(r *retrier.Retrier) BinanceOption {
	return func(b *Binance) {
		b.retrier = r
	}
}

// NewBinanceClient creates the raw SDK client.
func NewBinanceClient(apiKey, apiSecret string) *binance.Client {
	return binance.NewClient(apiKey, apiSecret)
}

// NewBinance wraps client for the given pairs. Tickers of other symbols are ignored.
func NewBinance(client *binance.Client, pairs []domain.Pair, logger *zap.Logger, opts ...BinanceOption) (*Binance, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if client == nil {
		return nil, errors.Wrap(domain.ErrMalformedInput, "binance client is nil")
	}

	b := &Binance{
		client:  client,
		pairs:   make(map[string]domain.Pair, len(pairs)),
		limiter: rate.NewLimiter(rate.Limit(defaultRequestRate), 1),
		retrier: retrier.New(retrier.WithRetryIf(transient)),
		logger:  logger,
	}
	for _, p := range pairs {
		b.pairs[p.Symbol()] = p
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Balances returns free balances keyed by asset.
func (b *Binance) Balances(ctx context.Context) (map[string]float64, error) {
	account, err := retrier.DoWithData(b.retrier, ctx, func(ctx context.Context) (*binance.Account, error) {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return b.client.NewGetAccountService().Do(ctx)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get binance account")
	}

	balances := make(map[string]float64, len(account.Balances))
	for _, bal := range account.Balances {
		free, err := parseFloat(bal.Free)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s balance", bal.Asset)
		}
		balances[bal.Asset] = free
	}

	return balances, nil
}

// Ticker returns best bid and ask of the configured pairs keyed by pair string.
func (b *Binance) Ticker(ctx context.Context) (map[string]domain.Ticker, error) {
	books, err := retrier.DoWithData(b.retrier, ctx, func(ctx context.Context) ([]*binance.BookTicker, error) {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return b.client.NewListBookTickersService().Do(ctx)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list binance book tickers")
	}

	return b.tickers(books)
}

func (b *Binance) tickers(books []*binance.BookTicker) (map[string]domain.Ticker, error) {
	out := make(map[string]domain.Ticker, len(b.pairs))
	for _, book := range books {
		pair, ok := b.pairs[book.Symbol]
		if !ok {
			continue
		}

		bid, err := parseFloat(book.BidPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s bid", book.Symbol)
		}
		ask, err := parseFloat(book.AskPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s ask", book.Symbol)
		}

		out[pair.String()] = domain.Ticker{HighestBid: bid, LowestAsk: ask}
	}

	return out, nil
}

// ChartData pages through klines of the given period since start.
func (b *Binance) ChartData(ctx context.Context, pair domain.Pair, period time.Duration, start time.Time) ([]domain.Bar, error) {
	interval, ok := klineIntervals[period]
	if !ok {
		return nil, errors.Wrapf(domain.ErrMalformedInput, "binance has no %s klines", period)
	}

	var bars []domain.Bar
	from := start.UnixMilli()
	for {
		klines, err := retrier.DoWithData(b.retrier, ctx, func(ctx context.Context) ([]*binance.Kline, error) {
			if err := b.limiter.Wait(ctx); err != nil {
				return nil, err
			}
			return b.client.NewKlinesService().
				Symbol(pair.Symbol()).
				Interval(interval).
				StartTime(from).
				Limit(klinesLimit).
				Do(ctx)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch klines from binance for %s", pair.String())
		}

		page, err := barsFromKlines(klines)
		if err != nil {
			return nil, err
		}
		bars = append(bars, page...)

		if len(klines) < klinesLimit {
			break
		}
		from = klines[len(klines)-1].OpenTime + period.Milliseconds()
	}

	b.logger.Debug("klines fetched", zap.String("pair", pair.String()), zap.String("interval", interval), zap.Int("bars", len(bars)))

	return bars, nil
}

// AccountTradeHistory returns own fills since start aggregated per order, oldest first.
func (b *Binance) AccountTradeHistory(ctx context.Context, pair domain.Pair, start time.Time) ([]domain.RawFill, error) {
	trades, err := retrier.DoWithData(b.retrier, ctx, func(ctx context.Context) ([]*binance.TradeV3, error) {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return b.client.NewListTradesService().
			Symbol(pair.Symbol()).
			StartTime(start.UnixMilli()).
			Limit(tradesLimit).
			Do(ctx)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list binance trades for %s", pair.String())
	}

	return fillsFromTrades(trades, pair)
}

// PlaceBuy places a good-till-cancelled limit buy and returns the exchange order id.
func (b *Binance) PlaceBuy(ctx context.Context, pair domain.Pair, rate, amount float64) (string, error) {
	return b.place(ctx, pair, binance.SideTypeBuy, rate, amount)
}

// PlaceSell places a good-till-cancelled limit sell and returns the exchange order id.
func (b *Binance) PlaceSell(ctx context.Context, pair domain.Pair, rate, amount float64) (string, error) {
	return b.place(ctx, pair, binance.SideTypeSell, rate, amount)
}

// place is not retried: a lost response may still have left an order on the book.
func (b *Binance) place(ctx context.Context, pair domain.Pair, side binance.SideType, price, amount float64) (string, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return "", err
	}

	clientOrderID := clientOrderIDPrefix + uuid.NewString()
	quantity := decimal.NewFromFloat(amount).RoundFloor(quantityPrecision)
	limit := decimal.NewFromFloat(price)

	resp, err := b.client.NewCreateOrderService().
		Symbol(pair.Symbol()).
		Side(side).
		Type(binance.OrderTypeLimit).
		TimeInForce(binance.TimeInForceTypeGTC).
		Quantity(quantity.String()).
		Price(limit.String()).
		NewClientOrderID(clientOrderID).
		Do(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "failed to place binance %s order for %s", side, pair.String())
	}

	b.logger.Info("order placed",
		zap.String("pair", pair.String()),
		zap.String("side", string(side)),
		zap.String("price", limit.String()),
		zap.String("quantity", quantity.String()),
		zap.Int64("order_id", resp.OrderID),
		zap.String("client_order_id", clientOrderID),
	)

	return strconv.FormatInt(resp.OrderID, 10), nil
}

func barsFromKlines(klines []*binance.Kline) ([]domain.Bar, error) {
	bars := make([]domain.Bar, 0, len(klines))
	for i, k := range klines {
		var (
			bar   = domain.Bar{Time: time.UnixMilli(k.OpenTime)}
			quote float64
			err   error
		)
		fields := []struct {
			name string
			raw  string
			dst  *float64
		}{
			{"open", k.Open, &bar.Open},
			{"high", k.High, &bar.High},
			{"low", k.Low, &bar.Low},
			{"close", k.Close, &bar.Close},
			{"volume", k.Volume, &bar.Volume},
			{"quote volume", k.QuoteAssetVolume, &quote},
		}
		for _, f := range fields {
			if *f.dst, err = parseFloat(f.raw); err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s at index %d", f.name, i)
			}
		}

		bar.WeightedAverage = bar.Close
		if bar.Volume > 0 {
			bar.WeightedAverage = quote / bar.Volume
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// fillsFromTrades merges the trades of each order into one fill. Commission paid
// in a third asset is not converted and counts as zero.
func fillsFromTrades(trades []*binance.TradeV3, pair domain.Pair) ([]domain.RawFill, error) {
	type aggregate struct {
		id                 int64
		buy                bool
		time               int64
		amount, total, fee decimal.Decimal
	}

	byOrder := make(map[int64]*aggregate)
	for _, t := range trades {
		qty, err := decimal.NewFromString(t.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse quantity of trade %d", t.ID)
		}
		quote, err := decimal.NewFromString(t.QuoteQuantity)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse quote quantity of trade %d", t.ID)
		}
		commission, err := decimal.NewFromString(t.Commission)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse commission of trade %d", t.ID)
		}

		price, err := decimal.NewFromString(t.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse price of trade %d", t.ID)
		}
		switch t.CommissionAsset {
		case pair.Main:
		case pair.Alt:
			commission = commission.Mul(price)
		default:
			commission = decimal.Zero
		}

		agg, ok := byOrder[t.OrderID]
		if !ok {
			agg = &aggregate{id: t.OrderID, buy: t.IsBuyer, time: t.Time}
			byOrder[t.OrderID] = agg
		}
		agg.amount = agg.amount.Add(qty)
		agg.total = agg.total.Add(quote)
		agg.fee = agg.fee.Add(commission)
		if t.Time > agg.time {
			agg.time = t.Time
		}
	}

	aggs := make([]*aggregate, 0, len(byOrder))
	for _, agg := range byOrder {
		aggs = append(aggs, agg)
	}
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].time == aggs[j].time {
			return aggs[i].id < aggs[j].id
		}
		return aggs[i].time < aggs[j].time
	})

	fills := make([]domain.RawFill, len(aggs))
	for i, agg := range aggs {
		side := domain.SideSell
		if agg.buy {
			side = domain.SideBuy
		}
		var rate decimal.Decimal
		if !agg.amount.IsZero() {
			rate = agg.total.Div(agg.amount)
		}

		fills[i] = domain.RawFill{
			OrderNumber: strconv.FormatInt(agg.id, 10),
			Type:        side.String(),
			Rate:        rate.InexactFloat64(),
			Total:       agg.total.InexactFloat64(),
			Amount:      agg.amount.InexactFloat64(),
			Fee:         agg.fee.InexactFloat64(),
		}
	}

	return fills, nil
}

// transient reports whether a failed read is worth retrying. Coded API errors are
// answers and are returned as is, bodies without a code come from gateways.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 0
	}

	return true
}

func parseFloat(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
