package surface

import (
	"fortune/internal/biz/reward"
	"fortune/internal/biz/wheel"
	"fortune/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is surface providers.
var ProviderSet = wire.NewSet(NewConsole, NewSurface)

// Console 控制台显示面：控件状态保存在内存，可见变化写日志
type Console struct {
	log *log.Helper

	trigger    *button
	multiplier *label
	reward     *label
	coin       *indicator
	wheel      *rotator
	slices     []*slice
}

// NewConsole 创建 n 个均匀分布的扇区（第 i 个位于 i*360/n 度）
func NewConsole(c *conf.Wheel, logger log.Logger) *Console {
	n := 8
	if c != nil && c.Slices > 0 {
		n = int(c.Slices)
	}
	h := log.NewHelper(log.With(logger, "module", "surface"))
	con := &Console{
		log:        h,
		trigger:    &button{log: h},
		multiplier: &label{log: h, name: "multiplier"},
		reward:     &label{log: h, name: "reward"},
		coin:       &indicator{log: h},
		wheel:      &rotator{log: h},
	}
	for i := 0; i < n; i++ {
		con.slices = append(con.slices, &slice{index: i, angle: float64(i) * wheel.FullTurn / float64(n)})
	}
	return con
}

// NewSurface 转换为转盘使用的能力集合
func NewSurface(c *Console) wheel.Surface {
	return c.Surface()
}

func (c *Console) Surface() wheel.Surface {
	views := make([]wheel.SliceView, len(c.slices))
	for i, s := range c.slices {
		views[i] = s
	}
	return wheel.Surface{
		Trigger:        c.trigger,
		MultiplierText: c.multiplier,
		RewardText:     c.reward,
		CoinIndicator:  c.coin,
		Wheel:          c.wheel,
		Slices:         views,
	}
}

// SliceState 扇区显示状态
type SliceState struct {
	Index int     `json:"index"`
	Angle float64 `json:"angle"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
}

// View 控件显示状态
type View struct {
	TriggerEnabled bool         `json:"triggerEnabled"`
	MultiplierText string       `json:"multiplierText"`
	RewardText     string       `json:"rewardText"`
	CoinVisible    bool         `json:"coinVisible"`
	Rotation       float64      `json:"rotation"`
	Slices         []SliceState `json:"slices"`
}

// View 返回当前显示状态
func (c *Console) View() View {
	v := View{
		TriggerEnabled: c.trigger.enabled,
		MultiplierText: c.multiplier.text,
		RewardText:     c.reward.text,
		CoinVisible:    c.coin.visible,
		Rotation:       c.wheel.deg,
		Slices:         make([]SliceState, len(c.slices)),
	}
	for i, s := range c.slices {
		v.Slices[i] = SliceState{Index: s.index, Angle: s.angle, Text: s.text, Color: s.color.Hex()}
	}
	return v
}

type button struct {
	log     *log.Helper
	enabled bool
}

func (b *button) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	b.log.Infof("[trigger] enabled=%v", enabled)
}

type label struct {
	log  *log.Helper
	name string
	text string
}

func (l *label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.log.Infof("[%s] %q", l.name, text)
}

type indicator struct {
	log     *log.Helper
	visible bool
}

func (i *indicator) SetVisible(visible bool) {
	if i.visible == visible {
		return
	}
	i.visible = visible
	i.log.Infof("[coin] visible=%v", visible)
}

type rotator struct {
	log *log.Helper
	deg float64
}

func (r *rotator) SetRotation(deg float64) {
	r.deg = deg
	r.log.Debugf("[wheel] rotation=%.2f", deg)
}

func (r *rotator) Rotation() float64 { return r.deg }

type slice struct {
	index int
	angle float64
	text  string
	color reward.Color
}

func (s *slice) SetText(text string)     { s.text = text }
func (s *slice) SetColor(c reward.Color) { s.color = c }
func (s *slice) Angle() float64          { return s.angle }
