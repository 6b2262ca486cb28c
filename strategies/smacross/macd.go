package smacross

import (
	"fmt"

	"smacross/internal/indicator"
	"smacross/types"
)

const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACDSignals applies the SimpleSignals toggle to the MACD histogram: above
// zero is treated as the fast line over the slow one.
func MACDSignals(candles []types.Candle, fast, slow, signal int) ([]types.Signal, error) {
	if err := ValidatePeriods(fast, slow, len(candles)); err != nil {
		return nil, err
	}
	macd, err := indicator.NewMACD(fast, slow, signal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	var detector SimpleDetector
	var signals []types.Signal
	for _, c := range candles {
		v := macd.Next(c.Close)
		switch detector.Next(v.MACD, v.Signal) {
		case BullishCross:
			signals = append(signals, types.NewBuy(c.Close))
		case BearishCross:
			signals = append(signals, types.NewSell(c.Close))
		}
	}
	return signals, nil
}
