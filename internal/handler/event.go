package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"smacross/types"

	"github.com/shopspring/decimal"
)

var ErrDeserialization = errors.New("deserialization failure")

const (
	StrategySMA          = "sma"
	StrategySMAPositions = "sma-positions"
	StrategyMACD         = "macd"
)

// Event is a decoded invocation payload.
type Event struct {
	HistoricalData []types.RawCandle
	N1             int
	N2             int
	Strategy       string
	Positions      []types.Position
	InitialBalance *decimal.Decimal
	Strict         *bool
}

type wireEvent struct {
	HistoricalData json.RawMessage  `json:"historical_data"`
	N1             json.RawMessage  `json:"n1"`
	N2             json.RawMessage  `json:"n2"`
	Strategy       string           `json:"strategy"`
	Positions      []types.Position `json:"positions"`
	InitialBalance *json.Number     `json:"initial_balance"`
	Strict         *bool            `json:"strict"`
}

// DecodeEvent parses payload. historical_data is required; n1 and n2 fall
// back to the given defaults unless they are non-negative integers.
func DecodeEvent(payload []byte, defaultN1, defaultN2 int) (Event, error) {
	var wire wireEvent
	if err := json.Unmarshal(payload, &wire); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrDeserialization, err)
	}
	if len(wire.HistoricalData) == 0 || string(wire.HistoricalData) == "null" {
		return Event{}, fmt.Errorf("%w: missing historical_data", ErrDeserialization)
	}

	ev := Event{
		N1:        periodOrDefault(wire.N1, defaultN1),
		N2:        periodOrDefault(wire.N2, defaultN2),
		Strategy:  wire.Strategy,
		Positions: wire.Positions,
		Strict:    wire.Strict,
	}
	if ev.Strategy == "" {
		ev.Strategy = StrategySMA
	}
	if err := json.Unmarshal(wire.HistoricalData, &ev.HistoricalData); err != nil {
		return Event{}, fmt.Errorf("%w: historical_data: %v", ErrDeserialization, err)
	}
	if wire.InitialBalance != nil {
		balance, err := decimal.NewFromString(wire.InitialBalance.String())
		if err != nil {
			return Event{}, fmt.Errorf("%w: initial_balance: %v", ErrDeserialization, err)
		}
		ev.InitialBalance = &balance
	}
	return ev, nil
}

func periodOrDefault(raw json.RawMessage, def int) int {
	var n uint32
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil {
		return def
	}
	return int(n)
}
