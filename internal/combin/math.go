package combin

import "math"

// satAdd adds with saturation at the uint64 maximum.
func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// satMul multiplies with saturation at the uint64 maximum.
func satMul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}

// capAdd adds with saturation at cap. Once a running total reaches the
// cap it stays there; callers use this to skip further growth.
func capAdd(a, b, cap uint64) uint64 {
	sum := satAdd(a, b)
	if sum > cap {
		return cap
	}
	return sum
}

// PermutationCount returns P(n, k) = n!/(n-k)!, the number of ordered
// arrangements of k distinct items from n, saturating at the uint64
// maximum on overflow.
func PermutationCount(n, k int) uint64 {
	if k > n {
		return 0
	}
	result := uint64(1)
	for i := range k {
		result = satMul(result, uint64(n-i))
	}
	return result
}
