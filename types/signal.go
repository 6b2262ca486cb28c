package types

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type SignalKind string

const (
	SignalBuy        SignalKind = "BUY"
	SignalSell       SignalKind = "SELL"
	SignalSellLot    SignalKind = "SELL_LOT"
	SignalStopLoss   SignalKind = "STOP_LOSS"
	SignalTakeProfit SignalKind = "TAKE_PROFIT"
)

// Signal is one trade decision, emitted in candle order. Size and Entry are
// zero for the flat Buy/Sell toggles.
type Signal struct {
	Kind  SignalKind
	Price decimal.Decimal
	Size  decimal.Decimal
	Entry decimal.Decimal
}

func NewBuy(price decimal.Decimal) Signal {
	return Signal{Kind: SignalBuy, Price: price}
}

// NewSizedBuy is a Buy that opened a lot of the given size.
func NewSizedBuy(price, size decimal.Decimal) Signal {
	return Signal{Kind: SignalBuy, Price: price, Size: size}
}

func NewSell(price decimal.Decimal) Signal {
	return Signal{Kind: SignalSell, Price: price}
}

// NewLotExit builds a price exit for lot. kind must be SignalSellLot,
// SignalStopLoss or SignalTakeProfit.
func NewLotExit(kind SignalKind, price decimal.Decimal, lot Lot) Signal {
	return Signal{Kind: kind, Price: price, Size: lot.Size, Entry: lot.EntryPrice}
}

// IsEntry reports whether the signal opens the simulated position.
func (s Signal) IsEntry() bool {
	return s.Kind == SignalBuy
}

// IsExit reports whether the signal closes the simulated position. Stop-loss
// and take-profit exits only close lots, never the simulated position.
func (s Signal) IsExit() bool {
	return s.Kind == SignalSell || s.Kind == SignalSellLot
}

func (s Signal) String() string {
	switch s.Kind {
	case SignalBuy:
		if s.Size.IsZero() {
			return fmt.Sprintf("Buy at price: %s", s.Price)
		}
		return fmt.Sprintf("Buy at price: %s size: %s", s.Price, s.Size)
	case SignalSell:
		return fmt.Sprintf("Sell at price: %s", s.Price)
	case SignalSellLot:
		return fmt.Sprintf("Sell at price: %s size: %s entry: %s", s.Price, s.Size, s.Entry)
	case SignalStopLoss:
		return fmt.Sprintf("Stop-loss sell at price: %s size: %s entry: %s", s.Price, s.Size, s.Entry)
	case SignalTakeProfit:
		return fmt.Sprintf("Take-profit sell at price: %s size: %s entry: %s", s.Price, s.Size, s.Entry)
	}
	return fmt.Sprintf("%s at price: %s", s.Kind, s.Price)
}

// SignalStrings renders signals with an optional prefix such as "SMA Signal: ".
func SignalStrings(signals []Signal, prefix string) []string {
	return lo.Map(signals, func(s Signal, _ int) string {
		return prefix + s.String()
	})
}
