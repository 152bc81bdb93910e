package wheel

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	FullTurn    = 360.0
	SliceOffset = 45.0 // 指针相对 0° 的固定偏移

	minCycles = 2
	maxCycles = 3
)

// Clamp01 限制到 [0,1]
func Clamp01[T constraints.Float](t T) T {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// EaseOut 1-(1-t)²
func EaseOut(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// NormalizeAngle 归一到 [0,360)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	return a
}

// TargetAngle cycles 整圈 + 360 - 扇区角度 - 偏移
func TargetAngle(cycles int, sliceAngle, offset float64) float64 {
	return float64(cycles)*FullTurn + FullTurn - sliceAngle - offset
}

// RandomCycles 均匀选取 2 或 3 圈
func RandomCycles(r Rand) int {
	return minCycles + r.IntN(maxCycles-minCycles+1)
}
