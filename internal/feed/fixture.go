package feed

import (
	"encoding/json"
	"fmt"
	"os"

	"smacross/types"

	"github.com/samber/lo"
)

// LoadFixture reads a JSON array of candles, the same shape as the
// historical_data field of an invocation.
func LoadFixture(path string) ([]types.RawCandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var candles []types.RawCandle
	if err := json.Unmarshal(data, &candles); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return candles, nil
}

// Reversed returns candles in the opposite order without touching the input.
// Exchange candle endpoints return newest first; the strategies want oldest
// first.
func Reversed[T any](candles []T) []T {
	out := make([]T, len(candles))
	copy(out, candles)
	return lo.Reverse(out)
}

// LoadPositions reads a JSON array of filled positions.
func LoadPositions(path string) ([]types.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}
	var positions []types.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		return nil, fmt.Errorf("decode positions %s: %w", path, err)
	}
	return positions, nil
}
