package repository

import (
	"context"
	"errors"
	"fmt"

	"smacross/types"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

// GetCandles returns the newest limit candles for ticker, oldest first. A
// limit of 0 returns every stored candle.
func (db *Database) GetCandles(ctx context.Context, ticker string, limit int) ([]types.Candle, error) {
	asset, err := db.GetAssetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	rows, err := db.candles.GetCandles(ctx, getCandlesParams{AssetID: asset.ID, Limit: int64(max(limit, 0))})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoCandles
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoCandles
	}
	return convertCandles(rows), nil
}

// InsertCandles appends candles for ticker, creating the asset if needed, and
// returns the number of rows written.
func (db *Database) InsertCandles(ctx context.Context, ticker string, candles []types.Candle) (int64, error) {
	asset, err := db.assets.UpsertAsset(ctx, ticker)
	if err != nil {
		return 0, fmt.Errorf("upsert asset %s: %w", ticker, err)
	}
	rows := lo.Map(candles, func(c types.Candle, _ int) candleRow {
		return candleRow{
			Start:  c.Timestamp,
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		}
	})
	n, err := db.candles.CopyCandles(ctx, asset.ID, rows)
	if err != nil {
		return n, fmt.Errorf("copy candles for %s: %w", ticker, err)
	}
	return n, nil
}

func convertCandles(rows []candleRow) []types.Candle {
	return lo.Map(rows, func(r candleRow, _ int) types.Candle {
		return types.Candle{
			Timestamp: r.Start,
			Open:      r.Open,
			High:      r.High,
			Low:       r.Low,
			Close:     r.Close,
			Volume:    r.Volume,
		}
	})
}
