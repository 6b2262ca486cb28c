package handler

import (
	"encoding/json"
	"os"
	"testing"

	"smacross/strategies/smacross"
	"smacross/types"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var scenarioCloses = []string{"10", "10", "10", "12", "14", "16", "14", "12", "10", "8"}

func newTestHandler() *Handler {
	return NewHandler(30, 60, smacross.DefaultParams(), types.Lenient, decimal.NewFromInt(20000), zap.NewNop())
}

// payload builds an event from closes plus extra top-level fields.
func payload(t *testing.T, closes []string, extra map[string]any) []byte {
	t.Helper()
	candles := make([]map[string]string, len(closes))
	for i, c := range closes {
		candles[i] = map[string]string{
			"start":  decimal.NewFromInt(int64(i)).String(),
			"open":   c,
			"high":   c,
			"low":    c,
			"close":  c,
			"volume": "1",
		}
	}
	event := map[string]any{"historical_data": candles}
	for k, v := range extra {
		event[k] = v
	}
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return data
}

func fixturePayload(t *testing.T, extra string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/btc_candles.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return []byte(`{"historical_data": ` + string(data) + extra + `}`)
}
