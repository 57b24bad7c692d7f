package strategy

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/tickbot/internal/domain"
	"github.com/vadiminshakov/tickbot/internal/feed"
)

// Strategy names as written in the configuration.
const (
	NameSniper     = "sniper"
	NameMACD       = "macd"
	NameSimpleBand = "simple"
	NameComposite  = "composite"
	NameANN        = "ann"
)

const defaultSniperPeriod = 15 * time.Minute

// Settings strategy selection and the knobs of individual strategies.
type Settings struct {
	Name         string
	SniperPeriod time.Duration
	PlaceOrders  bool
}

// New creates the named strategy over f.
func New(settings Settings, f feed.Feed, logger *zap.Logger) (Strategy, error) {
	if f == nil {
		return nil, errors.Wrap(domain.ErrMalformedInput, "strategy requires a feed")
	}

	switch settings.Name {
	case NameSniper:
		period := settings.SniperPeriod
		if period <= 0 {
			period = defaultSniperPeriod
		}
		return NewSniper(f, period, logger), nil
	case NameMACD:
		return NewMACD(f, logger), nil
	case NameSimpleBand:
		var opts []SimpleBandOption
		if settings.PlaceOrders {
			opts = append(opts, WithOrders())
		}
		return NewSimpleBand(f, logger, opts...), nil
	case NameComposite:
		return NewComposite(f, logger), nil
	case NameANN:
		return NewANN(f, logger), nil
	default:
		return nil, errors.Wrapf(domain.ErrMalformedInput, "unsupported strategy: %q", settings.Name)
	}
}

// Names lists every supported strategy.
func Names() []string {
	return []string{NameSniper, NameMACD, NameSimpleBand, NameComposite, NameANN}
}
