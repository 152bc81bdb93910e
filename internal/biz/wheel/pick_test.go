package wheel

import (
	"testing"

	"fortune/internal/biz/reward"
)

func TestPickBuckets(t *testing.T) {
	items := []reward.Item{
		{Multiplier: 1, Probability: 0.2},
		{Multiplier: 2, Probability: 0.3},
		{Multiplier: 3, Probability: 0.5},
	}
	cases := []struct {
		draw float64
		want int
	}{
		{0.01, 0},
		{0.1, 0},
		{0.2, 0},
		{0.35, 1},
		{0.49, 1},
		{0.51, 2},
		{0.9, 2},
	}
	for _, tc := range cases {
		if got := Pick(items, tc.draw); got != tc.want {
			t.Errorf("draw %.2f: want %d, got %d", tc.draw, tc.want, got)
		}
	}
}

func TestPickSingleReward(t *testing.T) {
	items := []reward.Item{{Multiplier: 2, Probability: 1.0, Color: "#FF0000"}}
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		d := Draw(r)
		if d <= 0 || d > 1 {
			t.Fatalf("draw out of range: %v", d)
		}
		if got := Pick(items, d); got != 0 {
			t.Fatalf("draw %v selected %d", d, got)
		}
	}
	if got := Pick(items, 1); got != 0 {
		t.Errorf("draw 1 selected %d", got)
	}
}

func TestPickUncoveredTail(t *testing.T) {
	items := []reward.Item{{Probability: 0.4}, {Probability: 0.4}}
	if got := Pick(items, 0.9); got != -1 {
		t.Errorf("want -1, got %d", got)
	}
	if got := Pick(nil, 0.5); got != -1 {
		t.Errorf("empty list: want -1, got %d", got)
	}
}

func TestDrawRange(t *testing.T) {
	if d := Draw(&seqRand{floats: []float64{0}}); d != 1 {
		t.Errorf("Float64()=0 should draw 1, got %v", d)
	}
	if d := Draw(&seqRand{floats: []float64{0.75}}); d != 0.25 {
		t.Errorf("want 0.25, got %v", d)
	}
}
