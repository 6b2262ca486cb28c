// Package smacross generates trade signals from moving-average crossovers.
//
// Two detectors are offered. SimpleSignals toggles between long and short
// whenever the fast mean is above or below the slow mean. CrossingSignals
// fires only on a genuine cross between consecutive ticks and keeps a FIFO
// book of open lots with percentage stop-loss and take-profit exits.
package smacross

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrInsufficientData  = fmt.Errorf("%w: insufficient data for the specified SMA periods", ErrInvalidParameters)
	ErrPeriodOrder       = fmt.Errorf("%w: n1 must be less than n2", ErrInvalidParameters)
	ErrZeroPeriod        = fmt.Errorf("%w: periods must be at least 1", ErrInvalidParameters)
)

// Params are the exit and sizing knobs of the lot-tracking strategy.
type Params struct {
	StopPct        decimal.Decimal
	TakePct        decimal.Decimal
	DefaultLotSize decimal.Decimal
}

// DefaultParams returns a 5% stop, a 10% take and 0.001 unit lots.
func DefaultParams() Params {
	return Params{
		StopPct:        decimal.RequireFromString("0.05"),
		TakePct:        decimal.RequireFromString("0.10"),
		DefaultLotSize: decimal.RequireFromString("0.001"),
	}
}

func (p Params) Validate() error {
	if !p.StopPct.IsPositive() {
		return fmt.Errorf("%w: stop_pct must be positive, got %s", ErrInvalidParameters, p.StopPct)
	}
	if !p.TakePct.IsPositive() {
		return fmt.Errorf("%w: take_pct must be positive, got %s", ErrInvalidParameters, p.TakePct)
	}
	if !p.DefaultLotSize.IsPositive() {
		return fmt.Errorf("%w: default_lot_size must be positive, got %s", ErrInvalidParameters, p.DefaultLotSize)
	}
	return nil
}

// ValidatePeriods checks the fast/slow pair against the number of candles
// available. It runs before any candle is touched.
func ValidatePeriods(fast, slow, candles int) error {
	if fast < 1 || slow < 1 {
		return ErrZeroPeriod
	}
	if fast >= slow {
		return ErrPeriodOrder
	}
	if candles < slow {
		return ErrInsufficientData
	}
	return nil
}
