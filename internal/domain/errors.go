package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrExchange matches every *ExchangeError.
	ErrExchange = errors.New("exchange error")
	// ErrInsufficientBalance a sizing computation could not clear the minimum trade floor.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrFillConfirmationTimeout a placed order never showed up in the order history.
	ErrFillConfirmationTimeout = errors.New("fill confirmation timeout")
	// ErrMalformedInput construction-time contract violation.
	ErrMalformedInput = errors.New("malformed input")
)

// ExchangeError wraps a failed exchange collaborator call.
type ExchangeError struct {
	Op  string
	Err error
}

// NewExchangeError wraps err as a failure of op.
func NewExchangeError(op string, err error) *ExchangeError {
	return &ExchangeError{Op: op, Err: err}
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("exchange %s: %v", e.Op, e.Err)
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// Is reports ErrExchange as a match.
func (e *ExchangeError) Is(target error) bool {
	return target == ErrExchange
}
