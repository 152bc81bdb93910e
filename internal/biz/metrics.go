package biz

import (
	"bytes"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// MetricPrefix 转盘指标名前缀
const MetricPrefix = "wheel_"

// DumpMetrics 以文本格式导出名称带 prefix 的指标
func DumpMetrics(g prometheus.Gatherer, prefix string) (string, error) {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	families, err := g.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), prefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
