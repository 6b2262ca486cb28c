package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Position is an already filled order supplied by the caller. Only the fill
// price and size are consumed; the rest is carried for logging.
type Position struct {
	PositionID         string `json:"position_id"`
	OrderID            string `json:"order_id"`
	ProductID          string `json:"product_id"`
	Side               string `json:"side"`
	Status             string `json:"status"`
	CreatedTime        string `json:"created_time"`
	FilledSize         string `json:"filled_size"`
	AverageFilledPrice string `json:"average_filled_price"`
}

// Lot is one open entry awaiting an exit.
type Lot struct {
	EntryPrice decimal.Decimal
	Size       decimal.Decimal
}

func NewLot(entryPrice, size decimal.Decimal) Lot {
	return Lot{EntryPrice: entryPrice, Size: size}
}

// ParseLots seeds lots from positions. Lenient drops a position whose price or
// size does not parse; Strict fails on it.
func ParseLots(positions []Position, policy ParsePolicy) ([]Lot, error) {
	lots := make([]Lot, 0, len(positions))
	for i, p := range positions {
		price, priceErr := decimal.NewFromString(p.AverageFilledPrice)
		size, sizeErr := decimal.NewFromString(p.FilledSize)
		if priceErr != nil || sizeErr != nil {
			if policy == Strict {
				return nil, fmt.Errorf("position %d (%s): %w", i, p.PositionID, ErrMalformedNumericField)
			}
			continue
		}
		lots = append(lots, NewLot(price, size))
	}
	return lots, nil
}
