package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const schema = `
CREATE TABLE IF NOT EXISTS assets (
	id         BIGSERIAL PRIMARY KEY,
	ticker     TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS candles (
	id       BIGSERIAL PRIMARY KEY,
	asset_id BIGINT NOT NULL REFERENCES assets (id),
	start    TEXT NOT NULL,
	open     NUMERIC NOT NULL,
	high     NUMERIC NOT NULL,
	low      NUMERIC NOT NULL,
	close    NUMERIC NOT NULL,
	volume   NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS candles_asset_id_idx ON candles (asset_id, id);
`

const getAssetByTicker = `SELECT id, ticker, created_at FROM assets WHERE ticker = $1`

const upsertAsset = `
INSERT INTO assets (ticker) VALUES ($1)
ON CONFLICT (ticker) DO UPDATE SET ticker = EXCLUDED.ticker
RETURNING id, ticker, created_at`

// getCandles returns the newest $2 candles (all when $2 is 0) in insertion
// order.
const getCandles = `
SELECT start, open, high, low, close, volume FROM (
	SELECT id, start, open, high, low, close, volume
	FROM candles
	WHERE asset_id = $1
	ORDER BY id DESC
	LIMIT NULLIF($2::bigint, 0)
) recent
ORDER BY id ASC`

var candleColumns = []string{"asset_id", "start", "open", "high", "low", "close", "volume"}

type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type assetRow struct {
	ID        int64
	Ticker    string
	CreatedAt time.Time
}

type candleRow struct {
	Start  string
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

type getCandlesParams struct {
	AssetID int64
	Limit   int64
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

func (q *queries) GetAssetByTicker(ctx context.Context, ticker string) (assetRow, error) {
	var a assetRow
	err := q.db.QueryRow(ctx, getAssetByTicker, ticker).Scan(&a.ID, &a.Ticker, &a.CreatedAt)
	return a, err
}

func (q *queries) UpsertAsset(ctx context.Context, ticker string) (assetRow, error) {
	var a assetRow
	err := q.db.QueryRow(ctx, upsertAsset, ticker).Scan(&a.ID, &a.Ticker, &a.CreatedAt)
	return a, err
}

func (q *queries) GetCandles(ctx context.Context, arg getCandlesParams) ([]candleRow, error) {
	rows, err := q.db.Query(ctx, getCandles, arg.AssetID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (candleRow, error) {
		var c candleRow
		err := row.Scan(&c.Start, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume)
		return c, err
	})
}

func (q *queries) CopyCandles(ctx context.Context, assetID int64, rows []candleRow) (int64, error) {
	return q.db.CopyFrom(ctx, pgx.Identifier{"candles"}, candleColumns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		r := rows[i]
		return []any{assetID, r.Start, r.Open, r.High, r.Low, r.Close, r.Volume}, nil
	}))
}
