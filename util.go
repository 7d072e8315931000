package razor

import "golang.org/x/exp/constraints"

func maxInt[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minInt[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func clampInt[T constraints.Integer](v, lo, hi T) T {
	return maxInt(lo, minInt(v, hi))
}
