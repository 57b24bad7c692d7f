package domain

import "time"

// Bar one historical sample of the chart.
type Bar struct {
	Time            time.Time
	Open            float64
	High            float64
	Low             float64
	Close           float64
	Volume          float64
	WeightedAverage float64
}

// Midpoint returns the OHLC average.
func (b Bar) Midpoint() float64 {
	return (b.High + b.Low + b.Open + b.Close) / 4
}

// Ticker best bid and ask of a pair.
type Ticker struct {
	HighestBid float64
	LowestAsk  float64
}

// Closes extracts close prices.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Opens extracts open prices.
func Opens(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Open
	}
	return out
}

// WeightedAverages extracts volume weighted average prices.
func WeightedAverages(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.WeightedAverage
	}
	return out
}
