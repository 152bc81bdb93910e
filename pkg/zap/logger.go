package zap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFmt = "2006/01/02 15:04:05.000"

const (
	Dev Mode = iota
	Prod
)

// Mode 日志模式：Dev 仅控制台，Prod 额外写入滚动文件
type Mode int32

// ParseMode 解析 "dev"/"prod"，其余按 Dev 处理
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "prod") {
		return Prod
	}
	return Dev
}

type Config struct {
	Mode  Mode
	Level string
	App   string
	Dir   string
	File  bool
}

// Logger 实现 kratos log.Logger
type Logger struct {
	log    *zap.Logger
	msgKey string
}

var _ log.Logger = (*Logger)(nil)

// Option is logger option.
type Option func(*Logger)

// WithMessageKey with message key.
func WithMessageKey(key string) Option {
	return func(l *Logger) {
		l.msgKey = key
	}
}

// Log implements log.Logger
func (l *Logger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "!MISSING-VALUE")
	}

	msg := ""
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == l.msgKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	switch level {
	case log.LevelDebug:
		l.log.Debug(msg, fields...)
	case log.LevelWarn:
		l.log.Warn(msg, fields...)
	case log.LevelError:
		l.log.Error(msg, fields...)
	case log.LevelFatal:
		l.log.Fatal(msg, fields...)
	default:
		l.log.Info(msg, fields...)
	}
	return nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.log.Sync()
}

// ZapLogger returns the underlying zap logger.
func (l *Logger) ZapLogger() *zap.Logger {
	return l.log
}

// NewLogger wraps a zap logger.
func NewLogger(zapLogger *zap.Logger, opts ...Option) *Logger {
	l := &Logger{
		log:    zapLogger,
		msgKey: log.DefaultMessageKey,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLoggerWithConfig creates a new logger from config with options.
func NewLoggerWithConfig(cfg *Config, opts ...Option) *Logger {
	return NewLogger(NewZapLogger(cfg), opts...)
}

// NewZapLogger 控制台输出；File 或 Prod 时追加 <app>.log 与 <app>_error.log
func NewZapLogger(cfg *Config) *zap.Logger {
	if cfg == nil {
		cfg = &Config{Mode: Dev, Level: "debug"}
	}
	app := cfg.App
	if app == "" {
		app = "app"
	}
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		lv.SetLevel(zapcore.DebugLevel)
		_, _ = fmt.Fprintf(os.Stderr, "logger: invalid log level %q, defaulting to DEBUG\n", cfg.Level)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg(false)), zapcore.Lock(os.Stdout), lv),
	}
	if cfg.File || cfg.Mode == Prod {
		name := filepath.Join(cfg.Dir, app)
		cores = append(cores,
			fileCore(name+".log", lv),
			fileCore(name+"_error.log", zap.ErrorLevel),
		)
	}
	// kratos Helper + log.Logger 两层调用
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(2))
}

func fileCore(file string, lv zapcore.LevelEnabler) zapcore.Core {
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     7,
		Compress:   true,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg(true)), zapcore.AddSync(w), lv)
}

func encCfg(file bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.ConsoleSeparator = " "
	if file {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}
