package indicator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrMACDPeriods = errors.New("macd fast period must be less than slow period")

// MACDValue is one MACD observation.
type MACDValue struct {
	MACD      decimal.Decimal
	Signal    decimal.Decimal
	Histogram decimal.Decimal
}

// MACD tracks EMA(fast) - EMA(slow) and an EMA of that line.
type MACD struct {
	fast   *EMA
	slow   *EMA
	signal *EMA
}

func NewMACD(fast, slow, signal int) (*MACD, error) {
	if fast >= slow {
		return nil, ErrMACDPeriods
	}
	f, err := NewEMA(fast)
	if err != nil {
		return nil, err
	}
	s, err := NewEMA(slow)
	if err != nil {
		return nil, err
	}
	sig, err := NewEMA(signal)
	if err != nil {
		return nil, err
	}
	return &MACD{fast: f, slow: s, signal: sig}, nil
}

func (m *MACD) Next(price decimal.Decimal) MACDValue {
	line := m.fast.Next(price).Sub(m.slow.Next(price))
	sig := m.signal.Next(line)
	return MACDValue{
		MACD:      line,
		Signal:    sig,
		Histogram: line.Sub(sig),
	}
}
