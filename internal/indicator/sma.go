// Package indicator holds incremental price indicators fed one observation at
// a time.
package indicator

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errors.New("indicator period must be at least 1")

// MovingAverage is a simple moving average over a fixed trailing window.
// Means are reported during fill-up, over however many prices have been seen.
type MovingAverage struct {
	period int
	window []decimal.Decimal
	head   int
	sum    decimal.Decimal
}

func NewMovingAverage(period int) (*MovingAverage, error) {
	if period < 1 {
		return nil, ErrInvalidPeriod
	}
	return &MovingAverage{
		period: period,
		window: make([]decimal.Decimal, 0, period),
	}, nil
}

func (m *MovingAverage) Period() int {
	return m.period
}

// Next accepts price, evicting the oldest price once the window is full, and
// returns the mean of the window.
func (m *MovingAverage) Next(price decimal.Decimal) decimal.Decimal {
	if len(m.window) < m.period {
		m.window = append(m.window, price)
	} else {
		m.sum = m.sum.Sub(m.window[m.head])
		m.window[m.head] = price
		m.head = (m.head + 1) % m.period
	}
	m.sum = m.sum.Add(price)
	return m.sum.Div(decimal.NewFromInt(int64(len(m.window))))
}
