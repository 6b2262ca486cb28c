package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"smacross/internal/config"
	"smacross/internal/feed"
	"smacross/internal/logger"
	"smacross/internal/repository"
	"smacross/types"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	path := flag.String("csv", "btc_data.csv", "CSV file with timestamp,open,high,low,close,volume columns")
	toDB := flag.Bool("db", false, "insert the candles into the database instead of printing them")
	ticker := flag.String("ticker", "", "ticker to store the candles under, overrides backtest.ticker")
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

	raws, err := feed.ReadCSVFile(*path)
	if err != nil {
		zl.Fatal("read csv", zap.String("path", *path), zap.Error(err))
	}

	if !*toDB {
		for _, r := range raws {
			fmt.Printf("%+v\n", r)
		}
		return
	}

	candles, err := types.ParseCandles(raws, cfg.Strategy.Policy())
	if err != nil {
		zl.Fatal("parse candles", zap.Error(err))
	}
	if *ticker != "" {
		cfg.Backtest.Ticker = *ticker
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	db, err := repository.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		zl.Fatal("connect", zap.Error(err))
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		zl.Fatal("migrate", zap.Error(err))
	}

	n, err := db.InsertCandles(ctx, cfg.Backtest.Ticker, candles)
	if err != nil {
		zl.Fatal("insert candles", zap.Error(err))
	}
	zl.Info("candles imported", zap.String("ticker", cfg.Backtest.Ticker), zap.Int64("rows", n))
}
