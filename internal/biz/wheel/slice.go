package wheel

import (
	"errors"
	"fmt"

	"fortune/internal/biz/reward"
)

var ErrSliceCount = errors.New("reward count does not match slice count")

// Slice 扇区当前承载的奖励
type Slice struct {
	Index       int          `json:"index"`
	RewardIndex int          `json:"rewardIndex"` // 对应 Config.Rewards 下标
	Label       string       `json:"label"`
	Color       reward.Color `json:"color"`
	Probability float64      `json:"probability"`
}

// Populate 洗牌后按顺序一一写入扇区（文本、颜色、概率）
func Populate(r Rand, items []reward.Item, views []SliceView) ([]Slice, error) {
	if len(items) != len(views) {
		return nil, fmt.Errorf("%w: %d rewards, %d slices", ErrSliceCount, len(items), len(views))
	}
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	order = Shuffle(r, order)

	out := make([]Slice, len(order))
	for i, idx := range order {
		it := items[idx]
		s := Slice{
			Index:       i,
			RewardIndex: idx,
			Label:       it.Label(),
			Probability: it.Probability,
		}
		views[i].SetText(s.Label)
		// 颜色解析失败时保留扇区原颜色
		if c, err := reward.ParseColor(it.Color); err == nil {
			s.Color = c
			views[i].SetColor(c)
		}
		out[i] = s
	}
	return out, nil
}

// sliceOf 返回承载 rewardIndex 的扇区下标
func sliceOf(slices []Slice, rewardIndex int) int {
	for i, s := range slices {
		if s.RewardIndex == rewardIndex {
			return i
		}
	}
	return -1
}
