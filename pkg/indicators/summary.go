package indicators

import (
	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/momentum"
	"github.com/cinar/indicator/v2/trend"
	"github.com/cinar/indicator/v2/volatility"
)

const (
	summaryRSIPeriod = 14
	summaryATRPeriod = 14
	summaryMinLength = 35
)

// PriceData represents high, low and close price data.
type PriceData struct {
	High  float64
	Low   float64
	Close float64
}

// Summary latest RSI, ATR and MACD readings of a series.
type Summary struct {
	RSI        float64
	ATR        float64
	MACD       float64
	MACDSignal float64
}

// Summarize computes the closing readings of the series. ok is false when the
// series is too short for the slowest indicator.
func Summarize(data []PriceData) (Summary, bool) {
	if len(data) < summaryMinLength {
		return Summary{}, false
	}

	highs := make([]float64, len(data))
	lows := make([]float64, len(data))
	closes := make([]float64, len(data))
	for i, pd := range data {
		highs[i] = pd.High
		lows[i] = pd.Low
		closes[i] = pd.Close
	}

	rsi := momentum.NewRsiWithPeriod[float64](summaryRSIPeriod)
	rsiValues := helper.ChanToSlice(rsi.Compute(helper.SliceToChan(closes)))

	atr := volatility.NewAtrWithPeriod[float64](summaryATRPeriod)
	atrValues := helper.ChanToSlice(atr.Compute(
		helper.SliceToChan(highs),
		helper.SliceToChan(lows),
		helper.SliceToChan(closes),
	))

	macd := trend.NewMacd[float64]()
	macdChan, signalChan := macd.Compute(helper.SliceToChan(closes))
	// both outputs are unbuffered, drain them concurrently
	signalDone := make(chan []float64)
	go func() {
		signalDone <- helper.ChanToSlice(signalChan)
	}()
	macdValues := helper.ChanToSlice(macdChan)
	signalValues := <-signalDone

	if len(rsiValues) == 0 || len(atrValues) == 0 || len(macdValues) == 0 || len(signalValues) == 0 {
		return Summary{}, false
	}

	return Summary{
		RSI:        rsiValues[len(rsiValues)-1],
		ATR:        atrValues[len(atrValues)-1],
		MACD:       macdValues[len(macdValues)-1],
		MACDSignal: signalValues[len(signalValues)-1],
	}, true
}
