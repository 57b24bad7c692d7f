// Package indicators provides the moving averages and crossover predicates the strategies trade on.
package indicators

import (
	"github.com/pkg/errors"
)

// ErrInsufficientData the series is too short for the requested window.
var ErrInsufficientData = errors.New("insufficient data")

// SMA returns the arithmetic mean of the last window values.
func SMA(series []float64, window int) (float64, error) {
	if window < 1 || len(series) < window {
		return 0, errors.Wrapf(ErrInsufficientData, "sma: need %d values, got %d", window, len(series))
	}

	sum := 0.0
	for _, v := range series[len(series)-window:] {
		sum += v
	}

	return sum / float64(window), nil
}

// WMA returns the weighted mean of series.
func WMA(series, weights []float64) (float64, error) {
	if len(series) != len(weights) {
		return 0, errors.Errorf("wma: %d values but %d weights", len(series), len(weights))
	}
	if len(series) == 0 {
		return 0, errors.Wrap(ErrInsufficientData, "wma: empty series")
	}

	avg, total := 0.0, 0.0
	for i := range series {
		avg += float64(series[i] * weights[i])
	}
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return 0, errors.Wrap(ErrInsufficientData, "wma: zero total weight")
	}

	return avg / total, nil
}

// EMA returns the exponential moving average over the last window values.
//
// The recursion is seeded with the SMA of the window that precedes the last one,
// so the series must hold at least 2*window values. A window <= 0 defaults to half
// the series length. An empty series yields 0 and a single value yields itself.
func EMA(series []float64, window int) (float64, error) {
	switch len(series) {
	case 0:
		return 0, nil
	case 1:
		return series[0], nil
	}

	if window <= 0 {
		window = len(series) / 2
	}
	if len(series) < 2*window {
		return 0, errors.Wrapf(ErrInsufficientData, "ema: need %d values, got %d", 2*window, len(series))
	}

	c := 2.0 / float64(window+1)
	n := len(series)

	ema, err := SMA(series[n-2*window:n-window], window)
	if err != nil {
		return 0, err
	}

	// explicit conversions keep the compiler from fusing into FMA
	for _, v := range series[n-window:] {
		ema = float64(c*v) + float64((1-c)*ema)
	}

	return ema, nil
}

// Crossover reports whether a moved from below b to above it.
// Both slices hold [current, previous].
func Crossover(a, b []float64) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	return a[1] < b[1] && a[0] > b[0]
}

// Crossunder reports whether a moved from above b to below it.
// Both slices hold [current, previous].
func Crossunder(a, b []float64) bool {
	if len(a) < 2 || len(b) < 2 {
		return false
	}
	return a[1] > b[1] && a[0] < b[0]
}

// Recent returns the last two values of an oldest-first series as [current, previous].
func Recent(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}
	n := len(series)
	return []float64{series[n-1], series[n-2]}
}
