package reward

import (
	"errors"
	"math"
	"testing"
)

const sampleJSON = `{
  "coins": 100,
  "rewards": [
    {"multiplier": 1, "probability": 0.2, "color": "#FF0000"},
    {"multiplier": 2, "probability": 0.3, "color": "#00FF00"},
    {"multiplier": 5, "probability": 0.5, "color": "#0000FF"}
  ]
}`

func TestDecode(t *testing.T) {
	c, err := Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Coins != 100 {
		t.Errorf("coins: want 100, got %d", c.Coins)
	}
	if len(c.Rewards) != 3 {
		t.Fatalf("rewards: want 3, got %d", len(c.Rewards))
	}
	if c.Rewards[2].Multiplier != 5 || c.Rewards[2].Probability != 0.5 || c.Rewards[2].Color != "#0000FF" {
		t.Errorf("unexpected reward[2]: %+v", c.Rewards[2])
	}
	if err := c.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}

	if _, err := Decode([]byte(`{"coins": "x"`)); err == nil {
		t.Error("expected error for broken json")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
		want error
	}{
		{"nil", nil, ErrEmptyRewards},
		{"empty", &Config{Coins: 10}, ErrEmptyRewards},
		{"zero probability", &Config{Rewards: []Item{{1, 0, "#FFF"}, {2, 1, "#FFF"}}}, ErrProbabilityRange},
		{"above one", &Config{Rewards: []Item{{1, 1.5, "#FFF"}}}, ErrProbabilityRange},
		{"sum below one", &Config{Rewards: []Item{{1, 0.4, "#FFF"}, {2, 0.4, "#FFF"}}}, ErrProbabilitySum},
		{"sum above one", &Config{Rewards: []Item{{1, 0.6, "#FFF"}, {2, 0.6, "#FFF"}}}, ErrProbabilitySum},
		{"ok", &Config{Coins: 1, Rewards: []Item{{1, 0.25, "red"}, {2, 0.75, "#112233"}}}, nil},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}

	bad := &Config{Rewards: []Item{{1, 1, "#GG0000"}}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for bad color")
	}
	neg := &Config{Coins: -1, Rewards: []Item{{1, 1, "#FFF"}}}
	if err := neg.Validate(); err == nil {
		t.Error("expected error for negative coins")
	}
}

func TestPayoutAndExpectation(t *testing.T) {
	c, _ := Decode([]byte(sampleJSON))
	if got := c.Payout(2); got != 200 {
		t.Errorf("payout: want 200, got %d", got)
	}
	// 0.2*1 + 0.3*2 + 0.5*5 = 3.3
	if got := c.ExpectedMultiplier(); math.Abs(got-3.3) > 1e-9 {
		t.Errorf("expected multiplier: want 3.3, got %f", got)
	}
	items := c.Items()
	items[0].Multiplier = 99
	if c.Rewards[0].Multiplier == 99 {
		t.Error("Items must return a copy")
	}
	if (Item{Multiplier: 7}).Label() != "x7" {
		t.Error("label format")
	}
}
