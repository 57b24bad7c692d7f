package feed

import (
	"time"

	"github.com/vadiminshakov/tickbot/internal/domain"
)

// Security resamples the feed's bars into buckets of period and returns at most
// n of the most recent buckets, oldest first.
//
// Buckets are aligned to the newest bar, so the last bucket always ends with it.
// Leading bars that cannot fill a whole bucket are dropped.
func Security(f Feed, period time.Duration, n int) []domain.Bar {
	return Resample(f.Bars(), f.Interval(), period, n)
}

// Resample groups oldest-first bars of the given interval into buckets of period.
func Resample(bars []domain.Bar, interval, period time.Duration, n int) []domain.Bar {
	if n <= 0 || len(bars) == 0 {
		return nil
	}

	size := 1
	if interval > 0 && period > interval {
		size = int(period / interval)
	}

	count := len(bars) / size
	if count > n {
		count = n
	}

	out := make([]domain.Bar, count)
	end := len(bars)
	for i := count - 1; i >= 0; i-- {
		out[i] = merge(bars[end-size : end])
		end -= size
	}

	return out
}

func merge(bars []domain.Bar) domain.Bar {
	first, last := bars[0], bars[len(bars)-1]
	out := domain.Bar{
		Time:  first.Time,
		Open:  first.Open,
		Close: last.Close,
		High:  first.High,
		Low:   first.Low,
	}

	notional := 0.0
	for _, b := range bars {
		if b.High > out.High {
			out.High = b.High
		}
		if b.Low < out.Low {
			out.Low = b.Low
		}
		out.Volume += b.Volume
		notional += b.WeightedAverage * b.Volume
	}

	if out.Volume > 0 {
		out.WeightedAverage = notional / out.Volume
	} else {
		out.WeightedAverage = last.WeightedAverage
	}

	return out
}
