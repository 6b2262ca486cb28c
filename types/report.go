package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BacktestReport is the outcome of one simulated pass over a candle series.
// ProfitLoss always equals FinalBalance - InitialBalance.
type BacktestReport struct {
	FinalBalance      decimal.Decimal
	InitialBalance    decimal.Decimal
	ProfitLoss        decimal.Decimal
	TradeCount        int
	OpenPosition      bool
	OpenPositionEntry *decimal.Decimal
	UnrealizedPnL     decimal.Decimal
	Signals           []Signal
}

type reportJSON struct {
	FinalBalance      json.Number  `json:"Final Balance"`
	InitialBalance    json.Number  `json:"Initial Balance"`
	ProfitLoss        json.Number  `json:"Profit/Loss"`
	TradeCount        int          `json:"Number of Trades"`
	OpenPosition      bool         `json:"Open Position"`
	OpenPositionEntry *json.Number `json:"Open Position Entry Price"`
	UnrealizedPnL     json.Number  `json:"Unrealized PnL"`
	Signals           []string     `json:"Signals"`
}

// MarshalJSON writes the display keys with decimals as JSON numbers.
func (r BacktestReport) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		FinalBalance:   json.Number(r.FinalBalance.String()),
		InitialBalance: json.Number(r.InitialBalance.String()),
		ProfitLoss:     json.Number(r.ProfitLoss.String()),
		TradeCount:     r.TradeCount,
		OpenPosition:   r.OpenPosition,
		UnrealizedPnL:  json.Number(r.UnrealizedPnL.String()),
		Signals:        SignalStrings(r.Signals, ""),
	}
	if r.OpenPositionEntry != nil {
		entry := json.Number(r.OpenPositionEntry.String())
		out.OpenPositionEntry = &entry
	}
	return json.Marshal(out)
}
