package wheel

import "fortune/internal/biz/reward"

// Pick 按存储顺序依次扣减概率，draw 首次 <= 0 时的下标即为结果；
// 全部扣完仍 > 0 时返回 -1
func Pick(items []reward.Item, draw float64) int {
	for i, it := range items {
		draw -= it.Probability
		if draw <= 0 {
			return i
		}
	}
	return -1
}
