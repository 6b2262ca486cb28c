package smacross

import (
	"testing"

	"smacross/internal/feed"
	"smacross/types"

	"github.com/shopspring/decimal"
)

func candlesFromCloses(closes ...string) []types.Candle {
	candles := make([]types.Candle, len(closes))
	for i, c := range closes {
		candles[i] = types.Candle{Close: decimal.RequireFromString(c)}
	}
	return candles
}

func loadFixtureCandles(t *testing.T) []types.Candle {
	t.Helper()
	raws, err := feed.LoadFixture("testdata/btc_candles.json")
	if err != nil {
		t.Fatalf("LoadFixture() error = %v", err)
	}
	candles, err := types.ParseCandles(raws, types.Strict)
	if err != nil {
		t.Fatalf("ParseCandles() error = %v", err)
	}
	return candles
}

func signalTexts(signals []types.Signal) []string {
	return types.SignalStrings(signals, "")
}
