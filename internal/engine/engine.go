package engine

import (
	"context"
	"fmt"
	"io"

	"smacross/types"

	"go.uber.org/zap"
)

type candleStore interface {
	GetCandles(ctx context.Context, ticker string, limit int) ([]types.Candle, error)
}

// Engine wires a strategy configuration to reporting for the offline tools.
type Engine struct {
	strategy  *StrategyConfig
	reporting *ReportingConfig
	out       io.Writer
	logger    *zap.Logger
}

func NewEngine(strategy *StrategyConfig, reporting *ReportingConfig, out io.Writer, logger *zap.Logger) *Engine {
	return &Engine{
		strategy:  strategy,
		reporting: reporting,
		out:       out,
		logger:    logger,
	}
}

// LoadCandles reads the most recent limit candles for ticker, oldest first.
func (e *Engine) LoadCandles(ctx context.Context, store candleStore, ticker string, limit int) ([]types.Candle, error) {
	candles, err := store.GetCandles(ctx, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("load candles for %s: %w", ticker, err)
	}
	e.logger.Info("candles loaded", zap.String("ticker", ticker), zap.Int("candles", len(candles)))
	return candles, nil
}

// Run backtests one configuration, prints the report and optionally writes
// the signals to CSV.
func (e *Engine) Run(candles []types.Candle, positions []types.Position) (types.BacktestReport, error) {
	report, err := Backtest(candles, positions, e.reporting.initialBalance, e.strategy)
	if err != nil {
		return types.BacktestReport{}, err
	}
	e.logger.Info("backtest finished",
		zap.Int("n1", e.strategy.fast),
		zap.Int("n2", e.strategy.slow),
		zap.Int("candles", len(candles)),
		zap.Int("signals", len(report.Signals)),
		zap.Int("trades", report.TradeCount),
		zap.String("profit_loss", report.ProfitLoss.String()),
	)

	PrintReport(e.out, report, e.reporting.printSignals)
	if e.reporting.signalsFile != "" {
		if err := writeSignalsCSVFile(e.reporting.signalsFile, report.Signals); err != nil {
			return report, err
		}
		e.logger.Info("signals written", zap.String("path", e.reporting.signalsFile))
	}
	return report, nil
}

// RunSweep backtests the grid and prints the ranking.
func (e *Engine) RunSweep(ctx context.Context, candles []types.Candle, positions []types.Position, grid *SweepConfig) ([]SweepResult, error) {
	results, err := Sweep(ctx, candles, positions, e.reporting.initialBalance, e.strategy, grid)
	if err != nil {
		return nil, err
	}
	e.logger.Info("sweep finished", zap.Int("runs", len(results)))
	PrintSweep(e.out, results)
	return results, nil
}
