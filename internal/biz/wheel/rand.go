package wheel

import (
	"math/rand/v2"
)

// Rand 转盘使用的随机源
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand seed 为 0 时使用随机种子
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw 返回 (0,1] 区间的均匀随机数
func Draw(r Rand) float64 {
	return 1 - r.Float64()
}
