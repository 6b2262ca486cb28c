package smacross

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSimpleDetector(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]int64
		want  []Cross
	}{
		{"tie never fires", [][2]int64{{5, 5}, {5, 5}}, []Cross{NoCross, NoCross}},
		{"first tick may fire", [][2]int64{{6, 5}}, []Cross{BullishCross}},
		{"no repeat while long", [][2]int64{{6, 5}, {7, 5}, {8, 5}}, []Cross{BullishCross, NoCross, NoCross}},
		{"flip both ways", [][2]int64{{6, 5}, {4, 5}, {4, 5}, {6, 5}}, []Cross{BullishCross, BearishCross, NoCross, BullishCross}},
		{"tie does not reset", [][2]int64{{4, 5}, {5, 5}, {4, 5}}, []Cross{BearishCross, NoCross, NoCross}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var det SimpleDetector
			for i, p := range tt.pairs {
				if got := det.Next(d(p[0]), d(p[1])); got != tt.want[i] {
					t.Errorf("tick %d Next(%d, %d) = %s, want %s", i, p[0], p[1], got, tt.want[i])
				}
			}
		})
	}
}

func TestCrossingDetector(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]int64
		want  []Cross
	}{
		{"first tick never fires", [][2]int64{{9, 1}}, []Cross{NoCross}},
		{"upward cross", [][2]int64{{4, 5}, {6, 5}}, []Cross{NoCross, BullishCross}},
		{"upward cross from tie", [][2]int64{{5, 5}, {6, 5}}, []Cross{NoCross, BullishCross}},
		{"downward cross", [][2]int64{{6, 5}, {4, 5}}, []Cross{NoCross, BearishCross}},
		{"downward cross from tie", [][2]int64{{5, 5}, {4, 5}}, []Cross{NoCross, BearishCross}},
		{"staying above is not a cross", [][2]int64{{6, 5}, {7, 5}, {8, 5}}, []Cross{NoCross, NoCross, NoCross}},
		{"touching is not a cross", [][2]int64{{6, 5}, {5, 5}, {6, 5}}, []Cross{NoCross, NoCross, BullishCross}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var det CrossingDetector
			for i, p := range tt.pairs {
				if got := det.Next(d(p[0]), d(p[1])); got != tt.want[i] {
					t.Errorf("tick %d Next(%d, %d) = %s, want %s", i, p[0], p[1], got, tt.want[i])
				}
			}
		})
	}
}

func TestCrossingDetector_FirstTickRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		var det CrossingDetector
		if got := det.Next(d(rng.Int63n(100)), d(rng.Int63n(100))); got != NoCross {
			t.Fatalf("iteration %d: first tick returned %s", i, got)
		}
	}
}
