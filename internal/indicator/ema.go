package indicator

import "github.com/shopspring/decimal"

// EMA is an exponential moving average with smoothing 2/(period+1). The first
// price seeds the average.
type EMA struct {
	period  int
	k       decimal.Decimal
	current decimal.Decimal
	primed  bool
}

func NewEMA(period int) (*EMA, error) {
	if period < 1 {
		return nil, ErrInvalidPeriod
	}
	return &EMA{
		period: period,
		k:      decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(period + 1))),
	}, nil
}

func (e *EMA) Period() int {
	return e.period
}

func (e *EMA) Next(price decimal.Decimal) decimal.Decimal {
	if !e.primed {
		e.current = price
		e.primed = true
		return e.current
	}
	e.current = price.Sub(e.current).Mul(e.k).Add(e.current)
	return e.current
}
