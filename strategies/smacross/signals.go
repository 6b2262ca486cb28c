package smacross

import (
	"smacross/internal/indicator"
	"smacross/types"
)

type averages struct {
	fast *indicator.MovingAverage
	slow *indicator.MovingAverage
}

func newAverages(fast, slow int) (averages, error) {
	f, err := indicator.NewMovingAverage(fast)
	if err != nil {
		return averages{}, ErrZeroPeriod
	}
	s, err := indicator.NewMovingAverage(slow)
	if err != nil {
		return averages{}, ErrZeroPeriod
	}
	return averages{fast: f, slow: s}, nil
}

// SimpleSignals runs the long/short toggle strategy over candles. Both
// averages see every close whether or not a signal fires.
func SimpleSignals(candles []types.Candle, fast, slow int) ([]types.Signal, error) {
	if err := ValidatePeriods(fast, slow, len(candles)); err != nil {
		return nil, err
	}
	ma, err := newAverages(fast, slow)
	if err != nil {
		return nil, err
	}

	var detector SimpleDetector
	var signals []types.Signal
	for _, c := range candles {
		f := ma.fast.Next(c.Close)
		s := ma.slow.Next(c.Close)
		switch detector.Next(f, s) {
		case BullishCross:
			signals = append(signals, types.NewBuy(c.Close))
		case BearishCross:
			signals = append(signals, types.NewSell(c.Close))
		}
	}
	return signals, nil
}

// CrossingSignals runs the lot-tracking strategy. seed holds lots that are
// already open before the first candle. On each tick a bullish cross opens a
// lot of params.DefaultLotSize, a bearish cross closes the oldest lot, and then
// every open lot, including one opened on this tick, is checked against the
// stop and take thresholds.
func CrossingSignals(candles []types.Candle, fast, slow int, seed []types.Lot, params Params) ([]types.Signal, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	ma, err := newAverages(fast, slow)
	if err != nil {
		return nil, err
	}

	book := NewPositionBook(seed)
	var detector CrossingDetector
	var signals []types.Signal
	for _, c := range candles {
		price := c.Close
		switch detector.Next(ma.fast.Next(price), ma.slow.Next(price)) {
		case BullishCross:
			book.Open(price, params.DefaultLotSize)
			signals = append(signals, types.NewSizedBuy(price, params.DefaultLotSize))
		case BearishCross:
			if lot, ok := book.CloseOldest(); ok {
				signals = append(signals, types.NewLotExit(types.SignalSellLot, price, lot))
			}
		}

		for _, closed := range book.SweepExits(price, params.StopPct, params.TakePct) {
			kind := types.SignalStopLoss
			if closed.Reason == TakeProfitExit {
				kind = types.SignalTakeProfit
			}
			signals = append(signals, types.NewLotExit(kind, price, closed.Lot))
		}
	}
	return signals, nil
}
