package strategy

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
)

const (
	annInputs = 15
	// annLookback two days of 5 minute bars.
	annLookback       = 12 * 48
	confirmationTicks = 3
)

// ANN trades the score of a small fixed neural network fed with the relative
// change between the older and the newer half of the chart.
type ANN struct {
	engine
	buyTicks  int
	sellTicks int
}

// NewANN creates a neural network strategy.
func NewANN(f feed.Feed, logger *zap.Logger) *ANN {
	return &ANN{engine: newEngine(NameANN, f, logger)}
}

func (a *ANN) Tick(ctx context.Context) (bool, error) {
	ok, err := a.begin(ctx)
	if !ok {
		return false, err
	}

	buyProfit, sellProfit := a.profits()

	change, ok := midpointChange(a.feed.Window(annLookback))
	if !ok {
		return true, nil
	}

	activation := annScore(change)
	cfg := a.feed.Config()
	a.l.Debug("ann activation", zap.Float64("input", change), zap.Float64("activation", activation))

	switch {
	case activation < -cfg.ANNThreshold:
		if a.sellTicks >= confirmationTicks {
			if _, err := a.sell(ctx, cfg.ANNOrderSize, sellProfit); err != nil {
				return false, err
			}
		}
		a.buyTicks = 0
		a.sellTicks++
	case activation > cfg.ANNThreshold:
		if a.buyTicks >= confirmationTicks {
			if _, err := a.buy(ctx, cfg.ANNOrderSize, buyProfit); err != nil {
				return false, err
			}
		}
		a.sellTicks = 0
		a.buyTicks++
	}

	return true, nil
}

// midpointChange folds the OHLC midpoints of each half of bars by pairwise
// averaging and returns the relative change of the newer half against the older.
func midpointChange(bars []domain.Bar) (float64, bool) {
	if len(bars) < 2 {
		return 0, false
	}

	half := float64(len(bars)) / 2
	var older, newer float64
	for i, b := range bars {
		mid := b.Midpoint()
		switch {
		case float64(i) < half && i == 0:
			older = mid
		case float64(i) < half:
			older = (older + mid) / 2
		case float64(i-1) < half:
			newer = mid
		default:
			newer = (newer + mid) / 2
		}
	}

	if newer == 0 {
		return 0, false
	}

	return (newer - older) / newer, true
}

// annScore runs the forward pass with the input broadcast to every input neuron.
func annScore(input float64) float64 {
	values := make([]float64, annInputs)
	for i := range values {
		values[i] = input
	}

	for _, layer := range [][][]float64{annHidden1, annHidden2, annOutput} {
		values = forward(layer, values)
	}

	return values[0]
}

func forward(layer [][]float64, in []float64) []float64 {
	out := make([]float64, len(layer))
	for j, weights := range layer {
		sum := 0.0
		for i, w := range weights {
			sum += float64(in[i] * w)
		}
		out[j] = tanh(sum)
	}
	return out
}

func tanh(v float64) float64 {
	ep, en := math.Exp(v), math.Exp(-v)
	t := (ep - en) / (ep + en)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return math.Tanh(v)
	}
	return t
}
