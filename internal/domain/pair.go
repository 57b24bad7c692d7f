// Package domain defines core data structures used throughout the trading bot.
package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Pair cryptocurrency trading pair.
type Pair struct {
	// Main quote currency symbol, the one balances are valued in.
	Main string
	// Alt base currency symbol, the one being bought and sold.
	Alt string
}

// ParsePair parses a MAIN_ALT pair string, e.g. BTC_LTC.
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(strings.TrimSpace(s), "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, errors.Wrapf(ErrMalformedInput, "invalid pair %q", s)
	}

	return Pair{Main: strings.ToUpper(parts[0]), Alt: strings.ToUpper(parts[1])}, nil
}

// String returns the MAIN_ALT representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s_%s", p.Main, p.Alt)
}

// Symbol returns the exchange symbol, base currency first.
func (p Pair) Symbol() string {
	return fmt.Sprintf("%s%s", p.Alt, p.Main)
}
