package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"fortune/internal/biz/chart"
	"fortune/internal/biz/reward"
	"fortune/internal/biz/simulate"
	"fortune/internal/conf"
	"fortune/internal/data"
	"fortune/pkg/xgo"
	"fortune/pkg/zap"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"

	_ "go.uber.org/automaxprocs"
)

func main() {
	confPath := flag.String("conf", "", "config path, eg: -conf ../../configs")
	dataFile := flag.String("data", "", "reward file, overrides data.reward_file")
	rounds := flag.Int64("rounds", simulate.DefaultRounds, "number of spins")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "ants pool size")
	seed := flag.Uint64("seed", 0, "random seed, 0 for random")
	htmlName := flag.String("html", "", "write chart to ./wheel_charts/<name>.html")
	flag.Parse()

	logger := zap.NewLoggerWithConfig(&zap.Config{Mode: zap.Dev, Level: "warn", App: "simulate"})
	defer logger.Sync()
	log.SetLogger(logger)
	l := log.NewHelper(logger)

	dc, err := loadDataConf(*confPath)
	if err != nil {
		l.Fatalf("load config: %v", err)
	}
	if *dataFile != "" {
		dc.RewardFile = *dataFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadRewards(ctx, dc, logger)
	if err != nil {
		l.Fatalf("load rewards: %v", err)
	}

	rep, err := simulate.Run(ctx, cfg, simulate.Options{Rounds: *rounds, Workers: *workers, Seed: *seed})
	if err != nil {
		l.Fatalf("simulate: %v", err)
	}
	fmt.Println(xgo.ToJSONPretty(rep))

	if *htmlName == "" {
		return
	}
	bars := make([]chart.Bar, len(rep.Rewards))
	for i, s := range rep.Rewards {
		bars[i] = chart.Bar{Label: s.Label, Configured: s.Configured, Observed: s.Observed}
	}
	sub := fmt.Sprintf("rounds=%d seed=%d expected=%.4f observed=%.4f max deviation=%.4f%%",
		rep.Rounds, rep.Seed, rep.ExpectedMultiplier, rep.ObservedMultiplier, rep.MaxDeviation()*100)
	res, err := chart.NewGenerator("").Generate(bars, *htmlName, sub, true)
	if err != nil {
		l.Fatalf("chart: %v", err)
	}
	fmt.Fprintf(os.Stderr, "chart saved: %s\n", res.FilePath)
}

// loadDataConf 未指定 -conf 时使用内置奖励配置
func loadDataConf(path string) (*conf.Data, error) {
	if strings.TrimSpace(path) == "" {
		return &conf.Data{}, nil
	}
	c := config.New(
		config.WithSource(
			file.NewSource(path),
			env.NewSource("WHEEL_"),
		),
	)
	defer c.Close()
	if err := c.Load(); err != nil {
		return nil, err
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, err
	}
	bc.Normalize()
	return bc.Data, nil
}

func loadRewards(ctx context.Context, dc *conf.Data, logger log.Logger) (*reward.Config, error) {
	d, cleanup, err := data.NewData(dc, logger)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return data.NewRewardRepo(d, logger).LoadRewards(ctx)
}
