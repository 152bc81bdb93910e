package wheel

import (
	"errors"

	"fortune/internal/biz/reward"
)

// Trigger 转动按钮
type Trigger interface {
	SetEnabled(enabled bool)
}

// TextView 文本控件
type TextView interface {
	SetText(text string)
}

// Indicator 可切换显隐的控件（金币图标）
type Indicator interface {
	SetVisible(visible bool)
}

// Rotator 转盘本体的 2D 旋转角度（度）
type Rotator interface {
	SetRotation(deg float64)
	Rotation() float64
}

// SliceView 单个扇区
type SliceView interface {
	SetText(text string)
	SetColor(c reward.Color)
	Angle() float64
}

// Surface 宿主提供的显示能力
type Surface struct {
	Trigger        Trigger
	MultiplierText TextView
	RewardText     TextView
	CoinIndicator  Indicator
	Wheel          Rotator
	Slices         []SliceView
}

func (s Surface) validate() error {
	if s.Trigger == nil || s.MultiplierText == nil || s.RewardText == nil ||
		s.CoinIndicator == nil || s.Wheel == nil {
		return errors.New("surface is incomplete")
	}
	if len(s.Slices) == 0 {
		return errors.New("surface has no slices")
	}
	for _, v := range s.Slices {
		if v == nil {
			return errors.New("surface has a nil slice")
		}
	}
	return nil
}
