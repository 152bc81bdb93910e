package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap 启动配置，由 kratos config 扫描 configs/*.yaml 得到
type Bootstrap struct {
	Log    *Log    `json:"log"`
	Server *Server `json:"server"`
	Wheel  *Wheel  `json:"wheel"`
	Data   *Data   `json:"data"`
}

type Log struct {
	Mode  int32  `json:"mode"`
	Level string `json:"level"`
	App   string `json:"app"`
	Dir   string `json:"dir"`
	File  bool   `json:"file"`
}

type Server struct {
	Frame *Frame `json:"frame"`
}

// Frame 帧循环配置
type Frame struct {
	Fps      int32    `json:"fps"`
	AutoSpin Duration `json:"auto_spin"` // 0 表示关闭自动转动
	Console  bool     `json:"console"`   // 是否读取标准输入命令
}

type Wheel struct {
	SpinDuration Duration `json:"spin_duration"`
	Seed         uint64   `json:"seed"`   // 0 表示随机种子
	Slices       int32    `json:"slices"` // 宿主转盘扇区数
}

type Data struct {
	RewardFile string `json:"reward_file"` // 为空时使用内置 data.json
}

// Duration 支持 "4s" 字符串或纳秒数值
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		d.Duration = time.Duration(x)
	case string:
		if x == "" {
			d.Duration = 0
			return nil
		}
		dur, err := time.ParseDuration(x)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", x, err)
		}
		d.Duration = dur
	case nil:
		d.Duration = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// AsDuration 与 durationpb 保持一致的取值方式
func (d Duration) AsDuration() time.Duration {
	return d.Duration
}

const (
	defaultFps          = 60
	defaultSlices       = 8
	defaultSpinDuration = 4 * time.Second
)

// Normalize 补齐缺省段与默认值
func (b *Bootstrap) Normalize() {
	if b.Log == nil {
		b.Log = &Log{Level: "info", App: "fortune"}
	}
	if b.Server == nil {
		b.Server = &Server{}
	}
	if b.Server.Frame == nil {
		b.Server.Frame = &Frame{}
	}
	if b.Server.Frame.Fps <= 0 {
		b.Server.Frame.Fps = defaultFps
	}
	if b.Wheel == nil {
		b.Wheel = &Wheel{}
	}
	if b.Wheel.SpinDuration.Duration <= 0 {
		b.Wheel.SpinDuration.Duration = defaultSpinDuration
	}
	if b.Wheel.Slices <= 0 {
		b.Wheel.Slices = defaultSlices
	}
	if b.Data == nil {
		b.Data = &Data{}
	}
}
