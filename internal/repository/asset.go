package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Asset identifies one ticker in the store.
type Asset struct {
	ID     int64
	Ticker string
}

// GetAssetByTicker retrieves an Asset by its ticker.
func (db *Database) GetAssetByTicker(ctx context.Context, ticker string) (*Asset, error) {
	asset, err := db.assets.GetAssetByTicker(ctx, ticker)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ticker %s %w", ticker, ErrAssetNotFound)
		}
		return nil, err
	}
	return &Asset{ID: asset.ID, Ticker: asset.Ticker}, nil
}
