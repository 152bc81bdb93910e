package biz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fortune/internal/biz/reward"
	"fortune/internal/biz/wheel"
	"fortune/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

type stubRepo struct {
	cfg *reward.Config
	err error
}

func (r stubRepo) LoadRewards(ctx context.Context) (*reward.Config, error) {
	return r.cfg, r.err
}

type nopText struct{}

func (nopText) SetText(string) {}

type nopToggle struct{ on bool }

func (t *nopToggle) SetEnabled(b bool) { t.on = b }
func (t *nopToggle) SetVisible(b bool) { t.on = b }

type rot struct{ deg float64 }

func (r *rot) SetRotation(d float64) { r.deg = d }
func (r *rot) Rotation() float64     { return r.deg }

type sliceView struct{ angle float64 }

func (sliceView) SetText(string)       {}
func (sliceView) SetColor(reward.Color) {}
func (s sliceView) Angle() float64      { return s.angle }

func testSurface(n int) (wheel.Surface, *nopToggle) {
	trigger := &nopToggle{}
	views := make([]wheel.SliceView, n)
	for i := range views {
		views[i] = sliceView{angle: float64(i) * 360 / float64(n)}
	}
	return wheel.Surface{
		Trigger:        trigger,
		MultiplierText: nopText{},
		RewardText:     nopText{},
		CoinIndicator:  &nopToggle{},
		Wheel:          &rot{},
		Slices:         views,
	}, trigger
}

func TestUseCaseLoadsAndSpins(t *testing.T) {
	cfg := &reward.Config{Coins: 100, Rewards: []reward.Item{{Multiplier: 2, Probability: 1, Color: "#FF0000"}}}
	s, trigger := testSurface(1)
	uc, cleanup, err := NewUseCase(stubRepo{cfg: cfg}, s, &conf.Wheel{SpinDuration: conf.Duration{Duration: time.Second}, Seed: 3}, log.DefaultLogger)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	if !uc.Loaded() || uc.LoadError() != nil || !trigger.on {
		t.Fatalf("loaded=%v err=%v trigger=%v", uc.Loaded(), uc.LoadError(), trigger.on)
	}
	o, err := uc.Spin()
	if err != nil || o.Payout != 200 {
		t.Fatalf("spin: %+v %v", o, err)
	}
	uc.Tick(time.Second)
	uc.Tick(wheel.RevealCoinsDelay + wheel.RevealClearDelay)
	snap := uc.Snapshot()
	if snap.State != wheel.StateIdle || snap.Spins != 1 || snap.Coins != 200 {
		t.Errorf("snapshot %+v", snap)
	}
	if len(uc.Slices()) != 1 || uc.Rewards().Coins != 100 {
		t.Errorf("slices=%v rewards=%+v", uc.Slices(), uc.Rewards())
	}

	out, err := DumpMetrics(nil, MetricPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `wheel_spins_total{multiplier="2"}`) || !strings.Contains(out, "wheel_reward_coins_total") {
		t.Errorf("metrics dump missing wheel metrics:\n%s", out)
	}
}

func TestUseCaseInertOnLoadFailure(t *testing.T) {
	missing := errors.New("data.json not found")
	s, trigger := testSurface(2)
	uc, cleanup, err := NewUseCase(stubRepo{err: missing}, s, nil, log.DefaultLogger)
	if err != nil {
		t.Fatalf("load failure must not fail construction: %v", err)
	}
	defer cleanup()

	if uc.Loaded() || !errors.Is(uc.LoadError(), missing) || trigger.on {
		t.Errorf("loaded=%v err=%v trigger=%v", uc.Loaded(), uc.LoadError(), trigger.on)
	}
	if _, err := uc.Spin(); !errors.Is(err, wheel.ErrNotLoaded) {
		t.Errorf("want ErrNotLoaded, got %v", err)
	}
	if uc.Rewards() != nil {
		t.Error("rewards should be nil")
	}

	// 奖励数与扇区数不一致
	cfg := &reward.Config{Coins: 1, Rewards: []reward.Item{{Multiplier: 1, Probability: 1, Color: "#FFF"}}}
	uc2, cleanup2, err := NewUseCase(stubRepo{cfg: cfg}, s, nil, log.DefaultLogger)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup2()
	if uc2.Loaded() || !errors.Is(uc2.LoadError(), wheel.ErrSliceCount) {
		t.Errorf("mismatch: loaded=%v err=%v", uc2.Loaded(), uc2.LoadError())
	}
}
