package main

import (
	"flag"
	"os"
	"time"

	"fortune/internal/conf"
	"fortune/internal/server"
	"fortune/pkg/zap"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	Name     = "fortune"
	Version  = "v0.0.1"
	flagconf string
	id, _    = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")

	time.Local = initLocation()
}

// initLocation 初始化时区，失败时使用UTC
func initLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		log.Warnf("无法加载 Asia/Shanghai 时区，使用 UTC: %v", err)
		return time.UTC
	}
	return loc
}

func newApp(logger log.Logger, fs *server.FrameServer) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(fs),
	)
}

func main() {
	flag.Parse()

	log.Infof("Starting server. Name=%q, Version=%q", Name, Version)

	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
			env.NewSource("WHEEL_"),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	bc.Normalize()

	logger := zap.NewLoggerWithConfig(&zap.Config{
		Mode:  zap.Mode(bc.Log.Mode),
		Level: bc.Log.Level,
		App:   bc.Log.App,
		Dir:   bc.Log.Dir,
		File:  bc.Log.File,
	})
	defer logger.Sync()
	log.SetLogger(logger)

	app, cleanup, err := wireApp(bc.Server, bc.Data, bc.Wheel, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
