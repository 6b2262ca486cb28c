package engine

import (
	"smacross/strategies/smacross"
	"smacross/types"

	"github.com/shopspring/decimal"
)

// Run replays signals against candles with a single logical position. Signal
// i is priced at candles[i].Close, not at the price the signal carries, and a
// signal with no matching candle is priced at zero. Only entry and exit
// signals move the position; lot-level stop-loss and take-profit exits are
// ignored.
//
// startInPosition opens the run already long with an unknown entry, which is
// treated as zero.
func Run(candles []types.Candle, signals []types.Signal, initialBalance decimal.Decimal, startInPosition bool) types.BacktestReport {
	balance := initialBalance
	inPosition := startInPosition
	entryPrice := decimal.Zero
	var openEntry *decimal.Decimal
	trades := 0

	for i, signal := range signals {
		price := closeAt(candles, i)
		switch {
		case signal.IsEntry() && !inPosition:
			entryPrice = price
			inPosition = true
			openEntry = &price
		case signal.IsExit() && inPosition:
			balance = balance.Add(price.Sub(entryPrice))
			inPosition = false
			trades++
			openEntry = nil
		}
	}

	report := types.BacktestReport{
		FinalBalance:   balance,
		InitialBalance: initialBalance,
		ProfitLoss:     balance.Sub(initialBalance),
		TradeCount:     trades,
		OpenPosition:   inPosition,
		UnrealizedPnL:  decimal.Zero,
		Signals:        signals,
	}
	if inPosition {
		report.OpenPositionEntry = openEntry
		entry := decimal.Zero
		if openEntry != nil {
			entry = *openEntry
		}
		report.UnrealizedPnL = closeAt(candles, len(candles)-1).Sub(entry)
	}
	return report
}

func closeAt(candles []types.Candle, i int) decimal.Decimal {
	if i < 0 || i >= len(candles) {
		return decimal.Zero
	}
	return candles[i].Close
}

// Backtest runs the lot-tracking crossover strategy seeded with positions and
// replays its signals. Under a lenient policy positions that fail to parse
// are dropped; any supplied position, parsed or not, starts the simulation in
// position.
func Backtest(candles []types.Candle, positions []types.Position, initialBalance decimal.Decimal, cfg *StrategyConfig) (types.BacktestReport, error) {
	seed, err := types.ParseLots(positions, cfg.policy)
	if err != nil {
		return types.BacktestReport{}, err
	}
	signals, err := smacross.CrossingSignals(candles, cfg.fast, cfg.slow, seed, cfg.params)
	if err != nil {
		return types.BacktestReport{}, err
	}
	return Run(candles, signals, initialBalance, len(positions) > 0), nil
}
