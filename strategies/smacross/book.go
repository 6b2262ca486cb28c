package smacross

import (
	"smacross/types"

	"github.com/shopspring/decimal"
)

// ExitReason says why SweepExits closed a lot.
type ExitReason int

const (
	StopLossExit ExitReason = iota
	TakeProfitExit
)

// ClosedLot is a lot removed by SweepExits.
type ClosedLot struct {
	Lot    types.Lot
	Reason ExitReason
}

// PositionBook keeps open lots in the order they were opened.
type PositionBook struct {
	lots []types.Lot
}

func NewPositionBook(seed []types.Lot) *PositionBook {
	lots := make([]types.Lot, len(seed))
	copy(lots, seed)
	return &PositionBook{lots: lots}
}

func (b *PositionBook) Open(price, size decimal.Decimal) {
	b.lots = append(b.lots, types.NewLot(price, size))
}

// CloseOldest removes the front lot. ok is false when the book is empty.
func (b *PositionBook) CloseOldest() (lot types.Lot, ok bool) {
	if len(b.lots) == 0 {
		return types.Lot{}, false
	}
	lot = b.lots[0]
	b.lots = b.lots[1:]
	return lot, true
}

func (b *PositionBook) Len() int {
	return len(b.lots)
}

// Lots returns a copy of the open lots, oldest first.
func (b *PositionBook) Lots() []types.Lot {
	out := make([]types.Lot, len(b.lots))
	copy(out, b.lots)
	return out
}

// SweepExits closes every lot whose stop or take threshold the price has reached.
// The stop test runs first; retained lots keep their order.
func (b *PositionBook) SweepExits(price, stopPct, takePct decimal.Decimal) []ClosedLot {
	var closed []ClosedLot
	kept := b.lots[:0]
	one := decimal.NewFromInt(1)
	for _, lot := range b.lots {
		switch {
		case price.LessThanOrEqual(lot.EntryPrice.Mul(one.Sub(stopPct))):
			closed = append(closed, ClosedLot{Lot: lot, Reason: StopLossExit})
		case price.GreaterThanOrEqual(lot.EntryPrice.Mul(one.Add(takePct))):
			closed = append(closed, ClosedLot{Lot: lot, Reason: TakeProfitExit})
		default:
			kept = append(kept, lot)
		}
	}
	b.lots = kept
	return closed
}
