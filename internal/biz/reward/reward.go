package reward

import (
	"errors"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
)

// ProbabilityTolerance 概率总和允许的浮点误差
const ProbabilityTolerance = 1e-6

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrEmptyRewards     = errors.New("reward list is empty")
	ErrProbabilityRange = errors.New("probability out of range (0,1]")
	ErrProbabilitySum   = errors.New("probabilities do not sum to 1")
)

// Item 单个奖励项
type Item struct {
	Multiplier  int     `json:"multiplier"`
	Probability float64 `json:"probability"`
	Color       string  `json:"color"`
}

// Label 转盘上显示的倍数文本，如 x2
func (it Item) Label() string {
	return fmt.Sprintf("x%d", it.Multiplier)
}

// Config 奖励配置，加载后只读
type Config struct {
	Coins   int    `json:"coins"`
	Rewards []Item `json:"rewards"`
}

// Decode 解析奖励配置文本
func Decode(data []byte) (*Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode reward config: %w", err)
	}
	return &c, nil
}

// Validate 校验配置：至少一个奖励、概率在 (0,1] 且总和为 1、颜色可解析
func (c *Config) Validate() error {
	if c == nil || len(c.Rewards) == 0 {
		return ErrEmptyRewards
	}
	if c.Coins < 0 {
		return fmt.Errorf("coins must not be negative, got %d", c.Coins)
	}
	sum := 0.0
	for i, it := range c.Rewards {
		if it.Multiplier < 0 {
			return fmt.Errorf("reward[%d]: multiplier must not be negative, got %d", i, it.Multiplier)
		}
		if math.IsNaN(it.Probability) || it.Probability <= 0 || it.Probability > 1 {
			return fmt.Errorf("reward[%d]: %w: %v", i, ErrProbabilityRange, it.Probability)
		}
		if _, err := ParseColor(it.Color); err != nil {
			return fmt.Errorf("reward[%d]: %w", i, err)
		}
		sum += it.Probability
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("%w: got %.6f", ErrProbabilitySum, sum)
	}
	return nil
}

// Items 返回奖励列表副本
func (c *Config) Items() []Item {
	if c == nil {
		return nil
	}
	return append([]Item(nil), c.Rewards...)
}

// Payout 基础金币 × 倍数
func (c *Config) Payout(multiplier int) int {
	return c.Coins * multiplier
}

// ExpectedMultiplier 期望倍数 Σ p·multiplier
func (c *Config) ExpectedMultiplier() float64 {
	if c == nil {
		return 0
	}
	var e float64
	for _, it := range c.Rewards {
		e += it.Probability * float64(it.Multiplier)
	}
	return e
}
