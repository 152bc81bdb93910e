package wheel

// Shuffle Fisher–Yates 洗牌（从尾部开始），返回新切片，不修改入参
func Shuffle[T any](r Rand, in []T) []T {
	out := append([]T(nil), in...)
	n := len(out)
	for n > 1 {
		n--
		k := r.IntN(n + 1)
		out[k], out[n] = out[n], out[k]
	}
	return out
}
