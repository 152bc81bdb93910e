package reward

import (
	"fmt"
	"strconv"
	"strings"
)

// Color RGBA 颜色
type Color struct {
	R, G, B, A uint8
}

// Hex 返回 #RRGGBBAA 形式
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// 引擎支持的颜色名
var namedColors = map[string]Color{
	"red":       {255, 0, 0, 255},
	"cyan":      {0, 255, 255, 255},
	"blue":      {0, 0, 255, 255},
	"darkblue":  {0, 0, 160, 255},
	"lightblue": {173, 216, 230, 255},
	"purple":    {128, 0, 128, 255},
	"yellow":    {255, 255, 0, 255},
	"lime":      {0, 255, 0, 255},
	"fuchsia":   {255, 0, 255, 255},
	"magenta":   {255, 0, 255, 255},
	"white":     {255, 255, 255, 255},
	"silver":    {192, 192, 192, 255},
	"grey":      {128, 128, 128, 255},
	"gray":      {128, 128, 128, 255},
	"black":     {0, 0, 0, 255},
	"orange":    {255, 165, 0, 255},
	"brown":     {165, 42, 42, 255},
	"maroon":    {128, 0, 0, 255},
	"green":     {0, 128, 0, 255},
	"olive":     {128, 128, 0, 255},
	"navy":      {0, 0, 128, 255},
	"teal":      {0, 128, 128, 255},
	"aqua":      {0, 255, 255, 255},
}

// ParseColor 解析 HTML 颜色串：#RGB、#RGBA、#RRGGBB、#RRGGBBAA 或颜色名
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := namedColors[strings.ToLower(s)]; ok {
			return c, nil
		}
		return Color{}, fmt.Errorf("invalid color %q", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		// 短格式每位扩展成两位
		var b strings.Builder
		for _, ch := range hex {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "FF"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
