package smacross

import (
	"errors"
	"reflect"
	"testing"

	"smacross/types"

	"github.com/shopspring/decimal"
)

func TestSimpleSignals_BuyThenSell(t *testing.T) {
	candles := candlesFromCloses("10", "10", "10", "12", "14", "16", "14", "12", "10", "8")
	signals, err := SimpleSignals(candles, 2, 3)
	if err != nil {
		t.Fatalf("SimpleSignals() error = %v", err)
	}
	want := []string{"Buy at price: 12", "Sell at price: 12"}
	if got := signalTexts(signals); !reflect.DeepEqual(got, want) {
		t.Errorf("SimpleSignals() = %v, want %v", got, want)
	}
}

func TestSimpleSignals_Validation(t *testing.T) {
	tests := []struct {
		name    string
		candles int
		fast    int
		slow    int
		wantErr error
	}{
		{"fast above slow", 100, 60, 30, ErrPeriodOrder},
		{"fast equals slow", 100, 30, 30, ErrPeriodOrder},
		{"insufficient data", 10, 30, 60, ErrInsufficientData},
		{"zero fast", 100, 0, 30, ErrZeroPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candles := make([]types.Candle, tt.candles)
			_, err := SimpleSignals(candles, tt.fast, tt.slow)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SimpleSignals() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("SimpleSignals() error = %v is not ErrInvalidParameters", err)
			}
		})
	}
}

func TestSimpleSignals_ExactlySlowCandles(t *testing.T) {
	if _, err := SimpleSignals(candlesFromCloses("1", "2", "3"), 2, 3); err != nil {
		t.Errorf("SimpleSignals() error = %v, want nil", err)
	}
}

func TestSimpleSignals_Fixture(t *testing.T) {
	candles := loadFixtureCandles(t)
	signals, err := SimpleSignals(candles, 2, 3)
	if err != nil {
		t.Fatalf("SimpleSignals() error = %v", err)
	}
	var buys, sells int
	for i, s := range signals {
		switch s.Kind {
		case types.SignalBuy:
			buys++
		case types.SignalSell:
			sells++
		default:
			t.Fatalf("signal %d has kind %s", i, s.Kind)
		}
		if i > 0 && signals[i-1].Kind == s.Kind {
			t.Fatalf("signals %d and %d are both %s", i-1, i, s.Kind)
		}
	}
	if buys == 0 || sells == 0 {
		t.Errorf("SimpleSignals() buys = %d sells = %d, want both > 0", buys, sells)
	}
	if signals[0].Kind != types.SignalBuy || !signals[0].Price.Equal(candles[2].Close) {
		t.Errorf("first signal = %s, want Buy at %s", signals[0], candles[2].Close)
	}
}

func TestSimpleSignals_LenientZeroClose(t *testing.T) {
	raws := []types.RawCandle{
		{Close: "10"}, {Close: "10"}, {Close: "10"}, {Close: "not-a-number"},
	}
	candles, err := types.ParseCandles(raws, types.Lenient)
	if err != nil {
		t.Fatalf("ParseCandles() error = %v", err)
	}
	signals, err := SimpleSignals(candles, 2, 3)
	if err != nil {
		t.Fatalf("SimpleSignals() error = %v", err)
	}
	want := []string{"Sell at price: 0"}
	if got := signalTexts(signals); !reflect.DeepEqual(got, want) {
		t.Errorf("SimpleSignals() = %v, want %v", got, want)
	}
}

func TestCrossingSignals(t *testing.T) {
	tests := []struct {
		name    string
		closes  []string
		seed    []types.Lot
		want    []string
		wantErr error
	}{
		{
			name:   "buy then take profit",
			closes: []string{"10", "10", "10", "12", "14", "16", "14", "12", "10", "8"},
			want: []string{
				"Buy at price: 12 size: 0.001",
				"Take-profit sell at price: 14 size: 0.001 entry: 12",
			},
		},
		{
			name:   "bearish cross closes oldest lot",
			closes: []string{"10", "10", "10", "12", "12", "11", "10"},
			want: []string{
				"Buy at price: 12 size: 0.001",
				"Sell at price: 11 size: 0.001 entry: 12",
			},
		},
		{
			name:   "seeded lot stops out on the first tick",
			closes: []string{"10", "10", "10"},
			seed:   []types.Lot{types.NewLot(decimal.NewFromInt(13), decimal.NewFromInt(1))},
			want:   []string{"Stop-loss sell at price: 10 size: 1 entry: 13"},
		},
		{
			name:   "bearish cross without lots is silent",
			closes: []string{"10", "10", "10", "8", "6"},
			want:   nil,
		},
		{
			name:    "zero period",
			closes:  []string{"10"},
			wantErr: ErrInvalidParameters,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fast, slow := 2, 3
			if tt.wantErr != nil {
				fast = 0
			}
			signals, err := CrossingSignals(candlesFromCloses(tt.closes...), fast, slow, tt.seed, DefaultParams())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CrossingSignals() error = %v, want %v", err, tt.wantErr)
			}
			if got := signalTexts(signals); len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
				t.Errorf("CrossingSignals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrossingSignals_CustomParams(t *testing.T) {
	params := Params{
		StopPct:        decimal.RequireFromString("0.5"),
		TakePct:        decimal.RequireFromString("0.5"),
		DefaultLotSize: decimal.RequireFromString("2"),
	}
	candles := candlesFromCloses("10", "10", "10", "12", "14", "16", "14", "12", "10", "8")
	signals, err := CrossingSignals(candles, 2, 3, nil, params)
	if err != nil {
		t.Fatalf("CrossingSignals() error = %v", err)
	}
	want := []string{"Buy at price: 12 size: 2", "Sell at price: 12 size: 2 entry: 12"}
	if got := signalTexts(signals); !reflect.DeepEqual(got, want) {
		t.Errorf("CrossingSignals() = %v, want %v", got, want)
	}
}

func TestCrossingSignals_InvalidParams(t *testing.T) {
	params := DefaultParams()
	params.TakePct = decimal.Zero
	if _, err := CrossingSignals(candlesFromCloses("1"), 2, 3, nil, params); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("CrossingSignals() error = %v, want %v", err, ErrInvalidParameters)
	}
}

func TestCrossingSignals_Fixture(t *testing.T) {
	candles := loadFixtureCandles(t)
	seed, err := types.ParseLots([]types.Position{{
		PositionID:         "01JVWS6XYJS19MECX98765VXJ",
		ProductID:          "BTC-USD",
		AverageFilledPrice: "111095.09",
		FilledSize:         "0.00187398",
	}}, types.Strict)
	if err != nil {
		t.Fatalf("ParseLots() error = %v", err)
	}
	signals, err := CrossingSignals(candles, 5, 20, seed, DefaultParams())
	if err != nil {
		t.Fatalf("CrossingSignals() error = %v", err)
	}
	want := []types.SignalKind{
		types.SignalStopLoss,
		types.SignalBuy, types.SignalSellLot,
		types.SignalBuy, types.SignalSellLot,
		types.SignalBuy,
	}
	if len(signals) != len(want) {
		t.Fatalf("CrossingSignals() = %v, want kinds %v", signalTexts(signals), want)
	}
	for i, s := range signals {
		if s.Kind != want[i] {
			t.Errorf("signal %d kind = %s, want %s", i, s.Kind, want[i])
		}
	}
	if !signals[0].Entry.Equal(decimal.RequireFromString("111095.09")) {
		t.Errorf("stop-loss entry = %s, want 111095.09", signals[0].Entry)
	}
	if !signals[2].Entry.Equal(signals[1].Price) {
		t.Errorf("first sell entry = %s, want %s", signals[2].Entry, signals[1].Price)
	}
}

func TestMACDSignals(t *testing.T) {
	candles := loadFixtureCandles(t)
	signals, err := MACDSignals(candles, DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	if err != nil {
		t.Fatalf("MACDSignals() error = %v", err)
	}
	wantIdx := []int{1, 14, 41, 67, 94}
	if len(signals) != len(wantIdx) {
		t.Fatalf("MACDSignals() = %v, want %d signals", signalTexts(signals), len(wantIdx))
	}
	for i, s := range signals {
		wantKind := types.SignalBuy
		if i%2 == 1 {
			wantKind = types.SignalSell
		}
		if s.Kind != wantKind || !s.Price.Equal(candles[wantIdx[i]].Close) {
			t.Errorf("signal %d = %s, want %s at %s", i, s, wantKind, candles[wantIdx[i]].Close)
		}
	}

	if _, err := MACDSignals(candles, 26, 12, 9); !errors.Is(err, ErrPeriodOrder) {
		t.Errorf("MACDSignals() error = %v, want %v", err, ErrPeriodOrder)
	}
	if _, err := MACDSignals(candles, 12, 26, 0); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("MACDSignals() error = %v, want %v", err, ErrInvalidParameters)
	}
}
