package simulate

import (
	"context"
	"errors"
	"math"
	"testing"

	"fortune/internal/biz/reward"
)

func sampleConfig() *reward.Config {
	return &reward.Config{
		Coins: 100,
		Rewards: []reward.Item{
			{Multiplier: 1, Probability: 0.5, Color: "#FF0000"},
			{Multiplier: 2, Probability: 0.3, Color: "#00FF00"},
			{Multiplier: 10, Probability: 0.2, Color: "#0000FF"},
		},
	}
}

func TestRunMatchesConfiguredFrequencies(t *testing.T) {
	cfg := sampleConfig()
	rep, err := Run(context.Background(), cfg, Options{Rounds: 200_000, Workers: 4, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Rounds != 200_000 {
		t.Fatalf("rounds: %d", rep.Rounds)
	}
	var hits int64
	for _, s := range rep.Rewards {
		hits += s.Hits
	}
	if hits != rep.Rounds {
		t.Errorf("hits %d != rounds %d", hits, rep.Rounds)
	}
	// 20 万次下标准差约 0.0011
	if d := rep.MaxDeviation(); d > 0.01 {
		t.Errorf("max deviation %.4f", d)
	}
	if math.Abs(rep.ObservedMultiplier-rep.ExpectedMultiplier) > 0.1 {
		t.Errorf("observed multiplier %.3f, expected %.3f", rep.ObservedMultiplier, rep.ExpectedMultiplier)
	}
	if rep.ExpectedMultiplier != cfg.ExpectedMultiplier() {
		t.Errorf("expected multiplier %v", rep.ExpectedMultiplier)
	}
	var payout int64
	for _, s := range rep.Rewards {
		payout += s.Hits * int64(s.Multiplier) * 100
	}
	if payout != rep.TotalPayout {
		t.Errorf("total payout %d, want %d", rep.TotalPayout, payout)
	}
}

func TestRunDeterministicPerSeed(t *testing.T) {
	cfg := sampleConfig()
	a, err := Run(context.Background(), cfg, Options{Rounds: 120_001, Workers: 3, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), cfg, Options{Rounds: 120_001, Workers: 1, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Rewards {
		if a.Rewards[i].Hits != b.Rewards[i].Hits {
			t.Errorf("reward %d: %d vs %d hits", i, a.Rewards[i].Hits, b.Rewards[i].Hits)
		}
	}
}

func TestRunSingleReward(t *testing.T) {
	cfg := &reward.Config{Coins: 100, Rewards: []reward.Item{{Multiplier: 2, Probability: 1, Color: "#FF0000"}}}
	rep, err := Run(context.Background(), cfg, Options{Rounds: 1000, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Rewards[0].Hits != 1000 || rep.TotalPayout != 200_000 || rep.ObservedMultiplier != 2 {
		t.Errorf("report %+v", rep)
	}
}

func TestRunErrors(t *testing.T) {
	if _, err := Run(context.Background(), sampleConfig(), Options{}); !errors.Is(err, ErrNoRounds) {
		t.Errorf("want ErrNoRounds, got %v", err)
	}
	if _, err := Run(context.Background(), &reward.Config{}, Options{Rounds: 1}); !errors.Is(err, reward.ErrEmptyRewards) {
		t.Errorf("want ErrEmptyRewards, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, sampleConfig(), Options{Rounds: 10}); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
