package indicator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMovingAverage_RejectsZeroPeriod(t *testing.T) {
	if _, err := NewMovingAverage(0); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("NewMovingAverage(0) error = %v, want %v", err, ErrInvalidPeriod)
	}
}

func TestMovingAverage_Next(t *testing.T) {
	tests := []struct {
		name   string
		period int
		prices []int64
		want   []string
	}{
		{"period 1 echoes price", 1, []int64{5, 7, 9}, []string{"5", "7", "9"}},
		{"partial window means", 3, []int64{10, 20}, []string{"10", "15"}},
		{"evicts oldest", 3, []int64{10, 20, 30, 40, 50}, []string{"10", "15", "20", "30", "40"}},
		{"window of two", 2, []int64{10, 10, 12, 14}, []string{"10", "10", "11", "13"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ma, err := NewMovingAverage(tt.period)
			if err != nil {
				t.Fatalf("NewMovingAverage() error = %v", err)
			}
			for i, p := range tt.prices {
				got := ma.Next(decimal.NewFromInt(p))
				want := decimal.RequireFromString(tt.want[i])
				if !got.Equal(want) {
					t.Errorf("Next() tick %d = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestMovingAverage_IndependentInstances(t *testing.T) {
	fast, _ := NewMovingAverage(2)
	slow, _ := NewMovingAverage(2)
	fast.Next(decimal.NewFromInt(100))
	fast.Next(decimal.NewFromInt(200))

	if got := slow.Next(decimal.NewFromInt(4)); !got.Equal(decimal.NewFromInt(4)) {
		t.Errorf("slow.Next() = %s, want 4; instances share state", got)
	}
}

func TestMovingAverage_ThirdsAreRepresentable(t *testing.T) {
	ma, _ := NewMovingAverage(3)
	ma.Next(decimal.NewFromInt(10))
	ma.Next(decimal.NewFromInt(10))
	got := ma.Next(decimal.NewFromInt(12))
	if !got.GreaterThan(decimal.NewFromInt(10)) || !got.LessThan(decimal.NewFromInt(11)) {
		t.Errorf("Next() = %s, want value in (10, 11)", got)
	}
}
