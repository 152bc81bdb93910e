package xgo

// Pct 百分比 num/denom*100，denom<=0 返回 0
func Pct[T int64 | float64](num, denom T) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom) * 100
}

// Ratio num/denom，denom<=0 返回 0
func Ratio[T int64 | float64](num, denom T) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}
