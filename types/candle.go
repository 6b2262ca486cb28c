package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RawCandle is a candle as it arrives on the wire, every field string encoded.
type RawCandle struct {
	Start  string `json:"start"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	Volume string `json:"volume"`
}

// UnmarshalJSON requires every numeric field and a timestamp under either
// "start" or "timestamp".
func (r *RawCandle) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("candle must be an object")
	}
	num := map[string]*string{
		"open":   &r.Open,
		"high":   &r.High,
		"low":    &r.Low,
		"close":  &r.Close,
		"volume": &r.Volume,
	}
	for _, key := range []string{"open", "high", "low", "close", "volume"} {
		if err := requiredString(fields, key, num[key]); err != nil {
			return err
		}
	}
	if _, ok := fields["start"]; ok {
		return requiredString(fields, "start", &r.Start)
	}
	if err := requiredString(fields, "timestamp", &r.Start); err != nil {
		return fmt.Errorf("missing field start or timestamp")
	}
	return nil
}

func requiredString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("missing field %s", key)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("field %s: null", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	return nil
}

// Candle is one parsed OHLCV observation. Only Close drives the strategies.
type Candle struct {
	Timestamp string          `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
}

// ParseCandle converts a wire candle. Under Lenient a malformed field becomes
// zero; under Strict it returns ErrMalformedNumericField.
func ParseCandle(raw RawCandle, policy ParsePolicy) (Candle, error) {
	c := Candle{Timestamp: raw.Start}
	fields := []struct {
		name string
		in   string
		out  *decimal.Decimal
	}{
		{"open", raw.Open, &c.Open},
		{"high", raw.High, &c.High},
		{"low", raw.Low, &c.Low},
		{"close", raw.Close, &c.Close},
		{"volume", raw.Volume, &c.Volume},
	}
	for _, f := range fields {
		d, err := policy.Decimal(f.in)
		if err != nil {
			return Candle{}, fmt.Errorf("%s %w", f.name, err)
		}
		*f.out = d
	}
	return c, nil
}

// ParseCandles converts a batch in order. A Strict failure names the offending
// candle index and nothing is returned.
func ParseCandles(raws []RawCandle, policy ParsePolicy) ([]Candle, error) {
	candles := make([]Candle, 0, len(raws))
	for i, raw := range raws {
		c, err := ParseCandle(raw, policy)
		if err != nil {
			return nil, fmt.Errorf("candle %d: %w", i, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}
