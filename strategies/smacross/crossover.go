package smacross

import "github.com/shopspring/decimal"

// Cross classifies one tick.
type Cross int

const (
	NoCross Cross = iota
	BullishCross
	BearishCross
)

func (c Cross) String() string {
	switch c {
	case BullishCross:
		return "bullish"
	case BearishCross:
		return "bearish"
	}
	return "none"
}

type stance int

const (
	flat  stance = 0
	long  stance = 1
	short stance = -1
)

// SimpleDetector compares the two means of the current tick only. It flips to
// long when fast > slow and to short when fast < slow; it never returns to
// flat and ties never fire.
type SimpleDetector struct {
	position stance
}

func (d *SimpleDetector) Next(fast, slow decimal.Decimal) Cross {
	switch {
	case fast.GreaterThan(slow) && d.position <= flat:
		d.position = long
		return BullishCross
	case fast.LessThan(slow) && d.position >= flat:
		d.position = short
		return BearishCross
	}
	return NoCross
}

// CrossingDetector is an edge detector over consecutive (fast, slow) pairs.
// The first tick has no previous pair and can never cross.
type CrossingDetector struct {
	prevFast decimal.Decimal
	prevSlow decimal.Decimal
	primed   bool
}

func (d *CrossingDetector) Next(fast, slow decimal.Decimal) Cross {
	defer func() {
		d.prevFast, d.prevSlow, d.primed = fast, slow, true
	}()
	if !d.primed {
		return NoCross
	}
	switch {
	case d.prevFast.LessThanOrEqual(d.prevSlow) && fast.GreaterThan(slow):
		return BullishCross
	case d.prevFast.GreaterThanOrEqual(d.prevSlow) && fast.LessThan(slow):
		return BearishCross
	}
	return NoCross
}
