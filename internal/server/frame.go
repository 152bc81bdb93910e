package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"fortune/internal/biz"
	"fortune/internal/conf"
	"fortune/internal/service"
	"fortune/pkg/xgo"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
	"golang.org/x/sync/errgroup"
)

var _ transport.Server = (*FrameServer)(nil)

const defaultFps = 60

// FrameServer 固定帧率驱动转盘；命令与帧都在同一个 goroutine 内执行
type FrameServer struct {
	uc  *biz.UseCase
	svc *service.WheelService
	log *log.Helper

	interval time.Duration
	autoSpin time.Duration
	in       io.Reader
	out      io.Writer
	now      func() time.Time

	cmds chan string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Option 帧服务选项
type Option func(*FrameServer)

// Input 命令输入，nil 表示不读取命令
func Input(r io.Reader) Option {
	return func(s *FrameServer) { s.in = r }
}

// Output 命令回显
func Output(w io.Writer) Option {
	return func(s *FrameServer) { s.out = w }
}

// Clock 替换时钟
func Clock(now func() time.Time) Option {
	return func(s *FrameServer) { s.now = now }
}

// NewFrameServer new a frame server.
func NewFrameServer(c *conf.Server, uc *biz.UseCase, svc *service.WheelService, logger log.Logger) *FrameServer {
	var opts []Option
	fps := int32(defaultFps)
	var autoSpin time.Duration
	if c != nil && c.Frame != nil {
		if c.Frame.Fps > 0 {
			fps = c.Frame.Fps
		}
		autoSpin = c.Frame.AutoSpin.AsDuration()
		if c.Frame.Console {
			opts = append(opts, Input(os.Stdin))
		}
	}
	return newFrameServer(uc, svc, logger, xgo.FrameInterval(fps), autoSpin, opts...)
}

func newFrameServer(uc *biz.UseCase, svc *service.WheelService, logger log.Logger, interval, autoSpin time.Duration, opts ...Option) *FrameServer {
	s := &FrameServer{
		uc:       uc,
		svc:      svc,
		log:      log.NewHelper(log.With(logger, "module", "server/frame")),
		interval: interval,
		autoSpin: autoSpin,
		out:      os.Stdout,
		now:      time.Now,
		cmds:     make(chan string, 16),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start 阻塞运行帧循环直到 Stop 或 ctx 取消
func (s *FrameServer) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	s.log.Infof("[frame] start: interval=%s autoSpin=%s loaded=%v",
		xgo.ShortDuration(s.interval), xgo.ShortDuration(s.autoSpin), s.uc.Loaded())

	if s.in != nil {
		// 标准输入读取无法取消，不纳入 errgroup
		go s.readCommands(ctx, s.in)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.loop(ctx) })
	if s.autoSpin > 0 {
		g.Go(func() error { return s.autoSpinLoop(ctx) })
	}
	return g.Wait()
}

// Stop 停止帧循环并输出转盘指标
func (s *FrameServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	if text, err := biz.DumpMetrics(nil, biz.MetricPrefix); err != nil {
		s.log.Warnf("[frame] dump metrics: %v", err)
	} else if text != "" {
		s.log.Infof("[frame] stopped, metrics:\n%s", text)
	}
	return nil
}

// Submit 投递一条命令到帧循环
func (s *FrameServer) Submit(ctx context.Context, line string) error {
	select {
	case s.cmds <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *FrameServer) loop(ctx context.Context) error {
	interval := s.interval
	if interval <= 0 {
		interval = xgo.FrameInterval(defaultFps)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line := <-s.cmds:
			s.exec(ctx, line)
		case <-ticker.C:
			now := s.now()
			dt := now.Sub(last)
			last = now
			s.frame(dt)
		}
	}
}

func (s *FrameServer) frame(dt time.Duration) {
	defer xgo.RecoverFromError(func(e any) {
		s.log.Errorf("[frame] tick panic: %v", e)
	})
	s.uc.Tick(dt)
}

func (s *FrameServer) exec(ctx context.Context, line string) {
	defer xgo.RecoverFromError(nil)
	reply, err := s.svc.Handle(ctx, line)
	if err != nil {
		reply = "error: " + err.Error()
	}
	if s.out != nil {
		_, _ = fmt.Fprintln(s.out, reply)
	}
}

func (s *FrameServer) readCommands(ctx context.Context, r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := s.Submit(ctx, sc.Text()); err != nil {
			return
		}
	}
	if err := sc.Err(); err != nil {
		s.log.Warnf("[frame] read commands: %v", err)
	}
}

func (s *FrameServer) autoSpinLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.autoSpin)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// 非 idle 时由转盘拒绝
			if !s.uc.Loaded() {
				continue
			}
			if err := s.Submit(ctx, "spin"); err != nil {
				return nil
			}
		}
	}
}
