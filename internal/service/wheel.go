package service

import (
	"context"
	"fmt"
	"strings"

	"fortune/internal/biz"
	"fortune/internal/surface"
	"fortune/pkg/xgo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is service providers.
var ProviderSet = wire.NewSet(NewWheelService)

const helpText = "commands: spin | state | view | rewards | help"

// WheelService 控制台命令入口
type WheelService struct {
	uc      *biz.UseCase
	console *surface.Console
	log     *log.Helper
}

// NewWheelService new a wheel service.
func NewWheelService(uc *biz.UseCase, console *surface.Console, logger log.Logger) *WheelService {
	return &WheelService{
		uc:      uc,
		console: console,
		log:     log.NewHelper(logger),
	}
}

// Handle 执行一条命令并返回回显文本；空行等同 spin
func (s *WheelService) Handle(ctx context.Context, line string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
	case "", "spin":
		return s.Spin(ctx)
	case "state":
		return xgo.ToJSON(s.uc.Snapshot()), nil
	case "view":
		return xgo.ToJSON(s.console.View()), nil
	case "rewards":
		cfg := s.uc.Rewards()
		if cfg == nil {
			return "", fmt.Errorf("rewards not loaded: %v", s.uc.LoadError())
		}
		return xgo.ToJSONPretty(cfg), nil
	case "help", "?":
		return helpText, nil
	default:
		return "", fmt.Errorf("unknown command %q, %s", cmd, helpText)
	}
}

// Spin 按下转动按钮
func (s *WheelService) Spin(ctx context.Context) (string, error) {
	if _, err := s.uc.Spin(); err != nil {
		s.log.Warnf("spin rejected: %v", err)
		return "", err
	}
	return "spinning", nil
}
