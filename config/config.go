// Package config loads the bot configuration from YAML: process settings, per
// main currency defaults and per pair overrides.
package config

import (
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/tickbot/internal/domain"
)

// Modes.
const (
	ModeBacktest = "backtest"
	ModeLive     = "live"
)

const (
	defaultUpdateInterval = 5 * time.Minute
	defaultDataOffset     = 48 * time.Hour
	defaultBacktestDays   = 31
	defaultSniperPeriod   = 15 * time.Minute
	defaultStrategy       = "composite"
)

// Config is the loaded configuration.
type Config struct {
	Process Process
	// Pairs per pair parameters in configuration order, mains sorted.
	Pairs []domain.CurrencyConfig
}

// Process settings shared by every pair.
type Process struct {
	Mode              string             `yaml:"mode"`
	Strategy          string             `yaml:"strategy"`
	UpdateInterval    time.Duration      `yaml:"update_interval"`
	DataOffset        time.Duration      `yaml:"data_offset"`
	BacktestDays      int                `yaml:"backtest_days"`
	SniperPeriod      time.Duration      `yaml:"sniper_period"`
	SimplePlaceOrders bool               `yaml:"simple_place_orders"`
	InitialBalances   map[string]float64 `yaml:"initial_balances"`
	DataFile          string             `yaml:"data_file"`
}

// currency mirrors domain.CurrencyConfig as written in YAML. Pointers tell
// absent keys from zero values when overrides are merged.
type currency struct {
	MainPercent       *float64 `yaml:"main_percent"`
	AltPercent        *float64 `yaml:"alt_percent"`
	MinBuyProfit      *float64 `yaml:"min_buy_profit"`
	MinSellProfit     *float64 `yaml:"min_sell_profit"`
	NewOrderThreshold *float64 `yaml:"new_order_threshold"`
	MinMain           *float64 `yaml:"min_main"`
	MinAlt            *float64 `yaml:"min_alt"`
	TradingHistory    *float64 `yaml:"trading_history"`
	InitialBuyRate    *float64 `yaml:"initial_buy_rate"`
	InitialSellRate   *float64 `yaml:"initial_sell_rate"`
	ANNOrderSize      *float64 `yaml:"ann_order_size"`
	ANNThreshold      *float64 `yaml:"ann_threshold"`
}

type file struct {
	Process    Process             `yaml:"process"`
	Currencies map[string]currency `yaml:"currencies"`
	Pairs      map[string][]string `yaml:"pairs"`
	Overrides  map[string]currency `yaml:"overrides"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Parse decodes a YAML document.
func Parse(data []byte) (*Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(domain.ErrMalformedInput, err.Error())
	}

	process, err := f.Process.withDefaults()
	if err != nil {
		return nil, err
	}

	mains := make([]string, 0, len(f.Pairs))
	for main := range f.Pairs {
		mains = append(mains, main)
	}
	sort.Strings(mains)

	var pairs []domain.CurrencyConfig
	for _, main := range mains {
		defaults, ok := f.Currencies[main]
		if !ok {
			return nil, errors.Wrapf(domain.ErrMalformedInput, "no currency defaults for %s", main)
		}

		for _, s := range f.Pairs[main] {
			pair, err := domain.ParsePair(s)
			if err != nil {
				return nil, err
			}
			if pair.Main != main {
				return nil, errors.Wrapf(domain.ErrMalformedInput, "pair %s listed under %s", pair.String(), main)
			}

			merged := defaults
			if override, ok := f.Overrides[pair.String()]; ok {
				merged = merged.merge(override)
			}

			cfg := merged.currencyConfig(pair)
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			pairs = append(pairs, cfg)
		}
	}

	if len(pairs) == 0 {
		return nil, errors.Wrap(domain.ErrMalformedInput, "no pairs configured")
	}

	return &Config{Process: process, Pairs: pairs}, nil
}

func (p Process) withDefaults() (Process, error) {
	if p.Mode == "" {
		p.Mode = ModeBacktest
	}
	if p.Strategy == "" {
		p.Strategy = defaultStrategy
	}
	if p.UpdateInterval == 0 {
		p.UpdateInterval = defaultUpdateInterval
	}
	if p.DataOffset == 0 {
		p.DataOffset = defaultDataOffset
	}
	if p.BacktestDays == 0 {
		p.BacktestDays = defaultBacktestDays
	}
	if p.SniperPeriod == 0 {
		p.SniperPeriod = defaultSniperPeriod
	}

	switch {
	case p.Mode != ModeBacktest && p.Mode != ModeLive:
		return p, errors.Wrapf(domain.ErrMalformedInput, "unknown mode %q", p.Mode)
	case p.UpdateInterval < 0 || p.SniperPeriod < 0 || p.BacktestDays < 0:
		return p, errors.Wrap(domain.ErrMalformedInput, "intervals and backtest days must be positive")
	case p.DataOffset < p.UpdateInterval:
		return p, errors.Wrapf(domain.ErrMalformedInput, "data offset %s is shorter than the update interval %s", p.DataOffset, p.UpdateInterval)
	}

	return p, nil
}

// merge returns c with the keys present in o replaced.
func (c currency) merge(o currency) currency {
	pick := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}

	pick(&c.MainPercent, o.MainPercent)
	pick(&c.AltPercent, o.AltPercent)
	pick(&c.MinBuyProfit, o.MinBuyProfit)
	pick(&c.MinSellProfit, o.MinSellProfit)
	pick(&c.NewOrderThreshold, o.NewOrderThreshold)
	pick(&c.MinMain, o.MinMain)
	pick(&c.MinAlt, o.MinAlt)
	pick(&c.TradingHistory, o.TradingHistory)
	pick(&c.InitialBuyRate, o.InitialBuyRate)
	pick(&c.InitialSellRate, o.InitialSellRate)
	pick(&c.ANNOrderSize, o.ANNOrderSize)
	pick(&c.ANNThreshold, o.ANNThreshold)

	return c
}

// currencyConfig scales percents to fractions and minutes to durations.
func (c currency) currencyConfig(pair domain.Pair) domain.CurrencyConfig {
	value := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	percent := func(v *float64) float64 {
		return value(v) / 100
	}

	return domain.CurrencyConfig{
		Pair:              pair,
		AltPercent:        percent(c.AltPercent),
		MainPercent:       percent(c.MainPercent),
		MinBuyProfit:      percent(c.MinBuyProfit),
		MinSellProfit:     percent(c.MinSellProfit),
		NewOrderThreshold: percent(c.NewOrderThreshold),
		MinMain:           value(c.MinMain),
		MinAlt:            value(c.MinAlt),
		TradingHistory:    time.Duration(value(c.TradingHistory) * float64(time.Minute)),
		InitialBuyRate:    value(c.InitialBuyRate),
		InitialSellRate:   value(c.InitialSellRate),
		ANNOrderSize:      value(c.ANNOrderSize),
		ANNThreshold:      value(c.ANNThreshold),
	}
}
