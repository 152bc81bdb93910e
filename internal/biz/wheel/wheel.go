package wheel

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fortune/internal/biz/reward"

	"github.com/go-kratos/kratos/v2/log"
)

const (
	DefaultSpinDuration = 4 * time.Second
	RevealCoinsDelay    = 1 * time.Second // 显示倍数后多久显示金币
	RevealClearDelay    = 4 * time.Second // 显示金币后多久清理
)

var (
	ErrNotLoaded = errors.New("wheel has no reward config")
	ErrBusy      = errors.New("wheel is not idle")
	ErrNoSlice   = errors.New("no slice carries the selected reward")
)

// State 转盘状态
type State int32

const (
	StateIdle State = iota
	StateSpinning
	StateRevealing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateRevealing:
		return "revealing"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Outcome 一次转动的结果
type Outcome struct {
	Draw         float64 `json:"draw"`
	RewardIndex  int     `json:"rewardIndex"`
	SliceIndex   int     `json:"sliceIndex"`
	Multiplier   int     `json:"multiplier"`
	Payout       int     `json:"payout"`
	Cycles       int     `json:"cycles"`
	InitialAngle float64 `json:"initialAngle"`
	TargetAngle  float64 `json:"targetAngle"`
}

// Snapshot 转盘状态快照
type Snapshot struct {
	State    State         `json:"-"`
	Status   string        `json:"state"`
	Loaded   bool          `json:"loaded"`
	Elapsed  time.Duration `json:"elapsed"`
	Rotation float64       `json:"rotation"`
	Last     *Outcome      `json:"last,omitempty"`
	Spins    int64         `json:"spins"`
	Coins    int64         `json:"coins"`
}

// Option 转盘选项
type Option func(*Wheel)

// WithSpinDuration 设置转动动画时长
func WithSpinDuration(d time.Duration) Option {
	return func(w *Wheel) {
		if d >= 0 {
			w.spinDuration = d
		}
	}
}

// WithRand 设置随机源
func WithRand(r Rand) Option {
	return func(w *Wheel) {
		if r != nil {
			w.rnd = r
		}
	}
}

// WithLogger 设置日志
func WithLogger(logger log.Logger) Option {
	return func(w *Wheel) {
		if logger != nil {
			w.log = log.NewHelper(logger)
		}
	}
}

// Wheel 转盘状态机 Idle → Spinning → Revealing → Idle，由 Tick 推进，非并发安全
type Wheel struct {
	cfg     *reward.Config
	items   []reward.Item
	surface Surface

	rnd          Rand
	log          *log.Helper
	spinDuration time.Duration

	state   State
	slices  []Slice
	elapsed time.Duration
	initial float64
	target  float64
	current *Outcome
	last    *Outcome
	timers  timerQueue

	spins int64
	coins int64
}

// New 创建未加载配置的转盘并重置界面
func New(surface Surface, opts ...Option) (*Wheel, error) {
	if err := surface.validate(); err != nil {
		return nil, err
	}
	w := &Wheel{
		surface:      surface,
		rnd:          NewRand(0),
		log:          log.NewHelper(log.GetLogger()),
		spinDuration: DefaultSpinDuration,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.clearReveal()
	w.surface.Trigger.SetEnabled(false)
	w.setState(StateIdle)
	return w, nil
}

// Load 校验配置并首次布置扇区；失败时转盘保持不可用
func (w *Wheel) Load(cfg *reward.Config) error {
	if w.state != StateIdle {
		return ErrBusy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	items := cfg.Items()
	slices, err := Populate(w.rnd, items, w.surface.Slices)
	if err != nil {
		return err
	}
	w.cfg = &reward.Config{Coins: cfg.Coins, Rewards: items}
	w.items = items
	w.slices = slices
	w.surface.Trigger.SetEnabled(true)
	w.log.Infof("wheel loaded: coins=%d rewards=%d", cfg.Coins, len(items))
	return nil
}

// Loaded 是否已加载有效配置
func (w *Wheel) Loaded() bool { return w.cfg != nil }

// State 当前状态
func (w *Wheel) State() State { return w.state }

// Slices 扇区当前布局副本
func (w *Wheel) Slices() []Slice {
	return append([]Slice(nil), w.slices...)
}

// Config 当前配置（只读）
func (w *Wheel) Config() *reward.Config { return w.cfg }

// Spin 仅 Idle 状态可用；选出奖励、定位扇区并开始动画
func (w *Wheel) Spin() (*Outcome, error) {
	if w.cfg == nil {
		mRejected.WithLabelValues("not_loaded").Inc()
		return nil, ErrNotLoaded
	}
	if w.state != StateIdle {
		mRejected.WithLabelValues(w.state.String()).Inc()
		return nil, ErrBusy
	}

	draw := Draw(w.rnd)
	idx := Pick(w.items, draw)
	if idx < 0 {
		// 概率总和已校验为 1，此处只会是浮点尾差
		idx = len(w.items) - 1
		w.log.Warnf("draw %.9f fell past cumulative probability, using last reward", draw)
	}
	sliceIdx := sliceOf(w.slices, idx)
	if sliceIdx < 0 {
		return nil, fmt.Errorf("%w: reward %d", ErrNoSlice, idx)
	}

	it := w.items[idx]
	cycles := RandomCycles(w.rnd)
	o := &Outcome{
		Draw:         draw,
		RewardIndex:  idx,
		SliceIndex:   sliceIdx,
		Multiplier:   it.Multiplier,
		Payout:       w.cfg.Payout(it.Multiplier),
		Cycles:       cycles,
		InitialAngle: NormalizeAngle(w.surface.Wheel.Rotation()),
		TargetAngle:  TargetAngle(cycles, w.surface.Slices[sliceIdx].Angle(), SliceOffset),
	}

	w.surface.Trigger.SetEnabled(false)
	w.current = o
	w.initial, w.target = o.InitialAngle, o.TargetAngle
	w.elapsed = 0
	w.setState(StateSpinning)
	w.log.Infof("spin: draw=%.4f reward=%d slice=%d multiplier=%d target=%.2f",
		draw, idx, sliceIdx, it.Multiplier, o.TargetAngle)

	cpy := *o
	return &cpy, nil
}

// Tick 推进 dt：先触发到期的揭晓回调，再推进动画
func (w *Wheel) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.timers.Advance(dt)
	if w.state == StateSpinning {
		w.step(dt)
	}
}

func (w *Wheel) step(dt time.Duration) {
	w.elapsed += dt
	if w.elapsed >= w.spinDuration {
		// 直接落到目标角度，避免插值误差
		w.surface.Wheel.SetRotation(w.target)
		w.elapsed = 0
		w.reveal()
		return
	}
	t := EaseOut(float64(w.elapsed) / float64(w.spinDuration))
	w.surface.Wheel.SetRotation(Lerp(w.initial, w.target, t))
}

func (w *Wheel) reveal() {
	o := w.current
	w.setState(StateRevealing)
	w.surface.MultiplierText.SetText(w.items[o.RewardIndex].Label())

	w.timers.After(RevealCoinsDelay, func() {
		w.surface.CoinIndicator.SetVisible(true)
		w.surface.RewardText.SetText(strconv.Itoa(o.Payout))
		w.timers.After(RevealClearDelay, w.finish)
	})

	w.spins++
	w.coins += int64(o.Payout)
	mSpins.WithLabelValues(strconv.Itoa(o.Multiplier)).Inc()
	mCoins.Add(float64(o.Payout))
	w.log.Infof("reveal: multiplier=%d payout=%d", o.Multiplier, o.Payout)
}

func (w *Wheel) finish() {
	w.clearReveal()
	w.surface.Trigger.SetEnabled(true)

	slices, err := Populate(w.rnd, w.items, w.surface.Slices)
	if err != nil {
		w.log.Errorf("repopulate slices: %v", err)
	} else {
		w.slices = slices
	}
	w.last, w.current = w.current, nil
	w.setState(StateIdle)
}

func (w *Wheel) clearReveal() {
	w.surface.MultiplierText.SetText("")
	w.surface.RewardText.SetText("")
	w.surface.CoinIndicator.SetVisible(false)
}

func (w *Wheel) setState(s State) {
	w.state = s
	mState.Set(float64(s))
}

// Snapshot 返回当前状态快照
func (w *Wheel) Snapshot() Snapshot {
	s := Snapshot{
		State:    w.state,
		Status:   w.state.String(),
		Loaded:   w.cfg != nil,
		Elapsed:  w.elapsed,
		Rotation: w.surface.Wheel.Rotation(),
		Spins:    w.spins,
		Coins:    w.coins,
	}
	last := w.current
	if last == nil {
		last = w.last
	}
	if last != nil {
		cpy := *last
		s.Last = &cpy
	}
	return s
}
