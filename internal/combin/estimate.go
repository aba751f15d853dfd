package combin

// Estimator tuning values. The estimate is intentionally conservative:
// it exists only to give progress reporting a denominator, never to
// gate generation, so every factor is capped into a sane range instead
// of propagating unbounded growth.
const (
	// estimateVariantCap limits how many variants per word the
	// estimator credits.
	estimateVariantCap = 50

	// estimateSizeCap bounds the per-combination-size subtotal.
	estimateSizeCap = 10_000_000

	// EstimateFloor and EstimateCeiling clamp the final estimate.
	EstimateFloor   uint64 = 1_000_000
	EstimateCeiling uint64 = 1_000_000_000
)

// Estimate returns a rough candidate count for the given per-word
// variant slices and maximum combination size. Use Count for anything
// shown to the user before generation; Estimate is for progress and ETA
// only and may be off by orders of magnitude in either direction within
// its clamp range.
func Estimate(variants [][]string, maxWords int) uint64 {
	n := len(variants)
	if n == 0 {
		return EstimateFloor
	}
	if maxWords <= 0 || maxWords > n {
		maxWords = n
	}

	var avgVariants uint64
	for _, v := range variants {
		c := uint64(len(v))
		if c > estimateVariantCap {
			c = estimateVariantCap
		}
		avgVariants += c
	}
	avgVariants /= uint64(n)
	if avgVariants == 0 {
		avgVariants = 1
	}

	var total uint64
	for comboSize := 1; comboSize <= maxWords; comboSize++ {
		sizeTotal := satMul(cappedBinomial(n, comboSize), cappedFactorial(comboSize))

		for range comboSize {
			if sizeTotal > estimateSizeCap/avgVariants {
				sizeTotal = estimateSizeCap
				break
			}
			sizeTotal *= avgVariants
		}

		total = satAdd(total, sizeTotal)

		// Per-size ceiling: small combination sizes cannot plausibly
		// justify a huge denominator.
		var maxForSize uint64
		switch {
		case comboSize <= 2:
			maxForSize = 10_000_000
		case comboSize <= 4:
			maxForSize = 100_000_000
		default:
			maxForSize = EstimateCeiling
		}
		if total > maxForSize {
			return maxForSize
		}
	}

	if total < EstimateFloor {
		return EstimateFloor
	}
	return total
}

// cappedBinomial returns C(n, k) with growth capped at estimateSizeCap.
func cappedBinomial(n, k int) uint64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	result := uint64(1)
	if k > n-k {
		k = n - k
	}
	for i := range k {
		result = result * uint64(n-i) / uint64(i+1)
		if result > estimateSizeCap {
			return result
		}
	}
	return result
}

// cappedFactorial returns k! with growth capped at 10,000.
func cappedFactorial(k int) uint64 {
	result := uint64(1)
	for i := uint64(2); i <= uint64(k); i++ {
		result *= i
		if result > 10_000 {
			return result
		}
	}
	return result
}
