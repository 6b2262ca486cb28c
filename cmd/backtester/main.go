package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"smacross/internal/config"
	"smacross/internal/engine"
	"smacross/internal/feed"
	"smacross/internal/logger"
	"smacross/internal/repository"
	"smacross/types"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	csvPath := flag.String("csv", "", "read candles from this CSV file, overrides backtest.csv_path")
	fromDB := flag.Bool("db", false, "read candles from the database instead of CSV")
	ticker := flag.String("ticker", "", "ticker to load with -db, overrides backtest.ticker")
	fixture := flag.String("fixture", "", "read candles from a JSON fixture instead of CSV")
	n1 := flag.Int("n1", 0, "fast period, overrides strategy.fast_period")
	n2 := flag.Int("n2", 0, "slow period, overrides strategy.slow_period")
	sweep := flag.Bool("sweep", false, "backtest every fast/slow pair of the configured grid")
	reverse := flag.Bool("reverse", false, "reverse the candle order before running")
	positionsPath := flag.String("positions", "", "JSON file with open positions to seed the run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	zl, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync()

	if *n1 > 0 {
		cfg.Strategy.FastPeriod = *n1
	}
	if *n2 > 0 {
		cfg.Strategy.SlowPeriod = *n2
	}
	if *csvPath != "" {
		cfg.Backtest.CSVPath = *csvPath
	}
	if *ticker != "" {
		cfg.Backtest.Ticker = *ticker
	}
	params, err := cfg.Strategy.Params()
	if err != nil {
		zl.Fatal("invalid strategy config", zap.Error(err))
	}
	policy := cfg.Strategy.Policy()

	eng := engine.NewEngine(
		engine.NewStrategyConfig(cfg.Strategy.FastPeriod, cfg.Strategy.SlowPeriod, params, policy),
		engine.NewReportingConfig(cfg.Backtest.Balance(), cfg.Backtest.PrintSignals, cfg.Backtest.SignalsCSV),
		os.Stdout,
		zl,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var candles []types.Candle
	switch {
	case *fromDB:
		db, err := repository.NewDatabase(ctx, cfg.Database.URL)
		if err != nil {
			zl.Fatal("connect", zap.Error(err))
		}
		defer db.Close()
		candles, err = eng.LoadCandles(ctx, db, cfg.Backtest.Ticker, cfg.Backtest.Limit)
		if err != nil {
			zl.Fatal("load candles", zap.Error(err))
		}
	default:
		raws, err := readRaw(*fixture, cfg.Backtest.CSVPath)
		if err != nil {
			zl.Fatal("read candles", zap.Error(err))
		}
		candles, err = types.ParseCandles(raws, policy)
		if err != nil {
			zl.Fatal("parse candles", zap.Error(err))
		}
	}
	if *reverse || cfg.Backtest.Reverse {
		candles = feed.Reversed(candles)
	}

	positions, err := readPositions(*positionsPath)
	if err != nil {
		zl.Fatal("read positions", zap.Error(err))
	}

	if *sweep {
		grid := engine.NewSweepConfig(cfg.Backtest.Sweep.FastPeriods, cfg.Backtest.Sweep.SlowPeriods, cfg.Backtest.Sweep.Workers, os.Stderr)
		if _, err := eng.RunSweep(ctx, candles, positions, grid); err != nil {
			zl.Fatal("sweep", zap.Error(err))
		}
		return
	}
	if _, err := eng.Run(candles, positions); err != nil {
		zl.Fatal("backtest", zap.Error(err))
	}
}

func readRaw(fixture, csvPath string) ([]types.RawCandle, error) {
	if fixture != "" {
		return feed.LoadFixture(fixture)
	}
	return feed.ReadCSVFile(csvPath)
}

func readPositions(path string) ([]types.Position, error) {
	if path == "" {
		return nil, nil
	}
	return feed.LoadPositions(path)
}
