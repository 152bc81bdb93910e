package wheel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelMultiplier = "multiplier"
	labelReason     = "reason"
)

var (
	mSpins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_spins_total",
		Help: "完成揭晓的转动次数",
	}, []string{labelMultiplier})
	mRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_spin_rejected_total",
		Help: "被拒绝的转动请求",
	}, []string{labelReason})
	mCoins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wheel_reward_coins_total",
		Help: "累计发放金币",
	})
	mState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wheel_state",
		Help: "当前状态 0=idle 1=spinning 2=revealing",
	})
)
