package xgo

import (
	"fmt"
	"time"
)

var durationUnits = []struct {
	div float64
	sym string
}{
	{60 * 60, "h"},
	{60, "m"},
	{1, "s"},
	{1e-3, "ms"},
	{1e-6, "µs"},
	{1e-9, "ns"},
}

// ShortDuration 格式化为最合适的单位，如 2.5h、16.7ms
func ShortDuration(d time.Duration) string {
	if d <= 0 {
		return "0"
	}
	sec := d.Seconds()
	for _, u := range durationUnits {
		if sec >= u.div {
			val := sec / u.div
			switch {
			case val >= 100:
				return fmt.Sprintf("%.0f%s", val, u.sym)
			case val >= 10:
				return fmt.Sprintf("%.1f%s", val, u.sym)
			default:
				return fmt.Sprintf("%.2f%s", val, u.sym)
			}
		}
	}
	return "0"
}

// FrameInterval 帧率对应的帧间隔，fps<=0 返回 0
func FrameInterval(fps int32) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
