// Package feed adapts external candle sources (CSV exports, JSON fixtures)
// to types.RawCandle.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"smacross/types"
)

var ErrBadHeader = errors.New("csv header must be timestamp,open,high,low,close,volume")

var csvColumns = []string{"timestamp", "open", "high", "low", "close", "volume"}

// ReadCSV reads candles from r. The first row is a header naming the six
// columns timestamp, open, high, low, close, volume in any order.
func ReadCSV(r io.Reader) ([]types.RawCandle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvColumns)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBadHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var candles []types.RawCandle
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		candles = append(candles, types.RawCandle{
			Start:  record[index["timestamp"]],
			Open:   record[index["open"]],
			High:   record[index["high"]],
			Low:    record[index["low"]],
			Close:  record[index["close"]],
			Volume: record[index["volume"]],
		})
	}
	return candles, nil
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string) ([]types.RawCandle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candles file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrBadHeader, col)
		}
	}
	return index, nil
}
