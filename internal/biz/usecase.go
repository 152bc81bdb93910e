package biz

import (
	"context"
	"time"

	"fortune/internal/biz/reward"
	"fortune/internal/biz/wheel"
	"fortune/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
)

// 启动加载超时
const loadTimeout = 5 * time.Second

// RewardRepo 数据层接口：读取奖励配置
type RewardRepo interface {
	LoadRewards(ctx context.Context) (*reward.Config, error)
}

// UseCase 编排层：启动时加载配置并驱动转盘；只应在帧循环 goroutine 内调用
type UseCase struct {
	repo  RewardRepo
	log   *log.Helper
	wheel *wheel.Wheel

	loadErr error
}

// NewUseCase 创建 UseCase；配置缺失或无效时记录错误，转盘保持不可用
func NewUseCase(repo RewardRepo, surface wheel.Surface, c *conf.Wheel, logger log.Logger) (*UseCase, func(), error) {
	opts := []wheel.Option{wheel.WithLogger(logger)}
	if c != nil {
		opts = append(opts,
			wheel.WithSpinDuration(c.SpinDuration.AsDuration()),
			wheel.WithRand(wheel.NewRand(c.Seed)),
		)
	}
	w, err := wheel.New(surface, opts...)
	if err != nil {
		return nil, nil, err
	}

	uc := &UseCase{
		repo:  repo,
		log:   log.NewHelper(logger),
		wheel: w,
	}
	uc.load()

	cleanup := func() {
		snap := uc.wheel.Snapshot()
		uc.log.Infof("wheel closed: spins=%d coins=%d", snap.Spins, snap.Coins)
	}
	return uc, cleanup, nil
}

func (uc *UseCase) load() {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	cfg, err := uc.repo.LoadRewards(ctx)
	if err != nil {
		uc.loadErr = err
		uc.log.Errorf("reward config unavailable, wheel stays inert: %v", err)
		return
	}
	if err := uc.wheel.Load(cfg); err != nil {
		uc.loadErr = err
		uc.log.Errorf("reward config rejected, wheel stays inert: %v", err)
	}
}

// LoadError 启动加载失败原因，成功时为 nil
func (uc *UseCase) LoadError() error { return uc.loadErr }

// Loaded 转盘是否可用
func (uc *UseCase) Loaded() bool { return uc.wheel.Loaded() }

// Spin 发起一次转动
func (uc *UseCase) Spin() (*wheel.Outcome, error) {
	return uc.wheel.Spin()
}

// Tick 推进一帧
func (uc *UseCase) Tick(dt time.Duration) {
	uc.wheel.Tick(dt)
}

// Snapshot 当前状态
func (uc *UseCase) Snapshot() wheel.Snapshot {
	return uc.wheel.Snapshot()
}

// Slices 当前扇区布局
func (uc *UseCase) Slices() []wheel.Slice {
	return uc.wheel.Slices()
}

// Rewards 当前奖励配置，未加载时为 nil
func (uc *UseCase) Rewards() *reward.Config {
	return uc.wheel.Config()
}
