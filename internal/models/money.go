package models

import "math"

// Saturating int64 arithmetic for monetary math. A pathological cart
// clamps at the int64 range instead of wrapping around.

func SatAdd(a, b int64) int64 {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}

func SatMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	prod := a * b
	if prod/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return prod
}
