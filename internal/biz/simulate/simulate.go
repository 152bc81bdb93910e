package simulate

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"fortune/internal/biz/reward"
	"fortune/internal/biz/wheel"
	"fortune/pkg/xgo"

	"github.com/panjf2000/ants/v2"
)

const (
	DefaultRounds = 1_000_000
	batchSize     = 50_000
	checkEvery    = 4096 // 每隔多少次检查一次 ctx
)

var ErrNoRounds = errors.New("rounds must be positive")

// Options 模拟参数
type Options struct {
	Rounds  int64
	Workers int
	Seed    uint64 // 0 表示随机种子
}

// RewardStat 单个奖励的统计
type RewardStat struct {
	Index      int     `json:"index"`
	Label      string  `json:"label"`
	Multiplier int     `json:"multiplier"`
	Configured float64 `json:"configured"`
	Hits       int64   `json:"hits"`
	Observed   float64 `json:"observed"`
	Deviation  float64 `json:"deviation"` // observed - configured
}

// Report 模拟结果
type Report struct {
	Rounds             int64         `json:"rounds"`
	Workers            int           `json:"workers"`
	Seed               uint64        `json:"seed"`
	Coins              int           `json:"coins"`
	TotalPayout        int64         `json:"totalPayout"`
	Fallbacks          int64         `json:"fallbacks"` // 落在累计概率之外、回退到最后一项的次数
	ExpectedMultiplier float64       `json:"expectedMultiplier"`
	ObservedMultiplier float64       `json:"observedMultiplier"`
	Elapsed            time.Duration `json:"-"`
	ElapsedText        string        `json:"elapsed"`
	Rewards            []RewardStat  `json:"rewards"`
}

// MaxDeviation 各奖励观测频率与配置概率的最大绝对偏差
func (r *Report) MaxDeviation() float64 {
	var m float64
	for _, s := range r.Rewards {
		m = max(m, math.Abs(s.Deviation))
	}
	return m
}

type batchResult struct {
	hits      []int64
	fallbacks int64
	rounds    int64
}

// Run 在 ants 协程池上分批抽奖，每批使用独立的 PCG 随机源
func Run(ctx context.Context, cfg *reward.Config, opt Options) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opt.Rounds <= 0 {
		return nil, ErrNoRounds
	}
	if opt.Workers <= 0 {
		opt.Workers = 1
	}
	if opt.Seed == 0 {
		opt.Seed = wheel.NewRand(0).Uint64()
	}

	items := cfg.Items()
	pool, err := ants.NewPool(opt.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	start := time.Now()
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		total = batchResult{hits: make([]int64, len(items))}
	)
	batches := (opt.Rounds + batchSize - 1) / batchSize
	for b := int64(0); b < batches; b++ {
		n := min(batchSize, opt.Rounds-b*batchSize)
		seed := opt.Seed + uint64(b)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			res := runBatch(ctx, items, wheel.NewRand(seed), n)
			mu.Lock()
			total.merge(res)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buildReport(cfg, items, opt, total, time.Since(start)), nil
}

func runBatch(ctx context.Context, items []reward.Item, r wheel.Rand, n int64) batchResult {
	res := batchResult{hits: make([]int64, len(items))}
	for i := int64(0); i < n; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return res
		}
		idx := wheel.Pick(items, wheel.Draw(r))
		if idx < 0 {
			idx = len(items) - 1
			res.fallbacks++
		}
		res.hits[idx]++
		res.rounds++
	}
	return res
}

func (b *batchResult) merge(o batchResult) {
	for i, h := range o.hits {
		b.hits[i] += h
	}
	b.fallbacks += o.fallbacks
	b.rounds += o.rounds
}

func buildReport(cfg *reward.Config, items []reward.Item, opt Options, total batchResult, elapsed time.Duration) *Report {
	rep := &Report{
		Rounds:             total.rounds,
		Workers:            opt.Workers,
		Seed:               opt.Seed,
		Coins:              cfg.Coins,
		Fallbacks:          total.fallbacks,
		ExpectedMultiplier: cfg.ExpectedMultiplier(),
		Elapsed:            elapsed,
		ElapsedText:        xgo.ShortDuration(elapsed),
		Rewards:            make([]RewardStat, len(items)),
	}
	var multSum int64
	for i, it := range items {
		hits := total.hits[i]
		observed := xgo.Ratio(hits, total.rounds)
		rep.Rewards[i] = RewardStat{
			Index:      i,
			Label:      it.Label(),
			Multiplier: it.Multiplier,
			Configured: it.Probability,
			Hits:       hits,
			Observed:   observed,
			Deviation:  observed - it.Probability,
		}
		multSum += hits * int64(it.Multiplier)
		rep.TotalPayout += hits * int64(cfg.Payout(it.Multiplier))
	}
	rep.ObservedMultiplier = xgo.Ratio(multSum, total.rounds)
	return rep
}
