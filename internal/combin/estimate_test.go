package combin

import (
	"fmt"
	"testing"
)

// fakeVariants builds n variant slices with count entries each. The
// strings themselves are irrelevant to the estimator.
func fakeVariants(n, count int) [][]string {
	variants := make([][]string, n)
	for i := range variants {
		variants[i] = make([]string, count)
		for j := range variants[i] {
			variants[i][j] = fmt.Sprintf("v%d-%d", i, j)
		}
	}
	return variants
}

// TestEstimate tests the heuristic progress denominator. The estimate
// only has to land inside its clamp range and respond to input size; it
// is never shown as an exact figure.
func TestEstimate(t *testing.T) {
	t.Parallel()

	t.Run("empty input returns the floor", func(t *testing.T) {
		t.Parallel()

		if got := Estimate(nil, 0); got != EstimateFloor {
			t.Errorf("Estimate(nil, 0) = %d, want %d", got, EstimateFloor)
		}
	})

	t.Run("small input clamps to the floor", func(t *testing.T) {
		t.Parallel()

		if got := Estimate(fakeVariants(2, 3), 2); got != EstimateFloor {
			t.Errorf("Estimate = %d, want floor %d", got, EstimateFloor)
		}
	})

	t.Run("estimate stays within the clamp range", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{1, 5, 20, 100} {
			got := Estimate(fakeVariants(n, 200), 0)
			if got < EstimateFloor || got > EstimateCeiling {
				t.Errorf("Estimate with %d words = %d, outside [%d, %d]", n, got, EstimateFloor, EstimateCeiling)
			}
		}
	})

	t.Run("zero max words means unlimited", func(t *testing.T) {
		t.Parallel()

		variants := fakeVariants(6, 40)
		if got, want := Estimate(variants, 0), Estimate(variants, 6); got != want {
			t.Errorf("Estimate(…, 0) = %d, want %d", got, want)
		}
	})

	t.Run("more combination sizes never shrink the estimate", func(t *testing.T) {
		t.Parallel()

		variants := fakeVariants(8, 30)
		prev := uint64(0)
		for maxWords := 1; maxWords <= 8; maxWords++ {
			got := Estimate(variants, maxWords)
			if got < prev {
				t.Errorf("Estimate(…, %d) = %d, less than %d for a smaller size cap", maxWords, got, prev)
			}
			prev = got
		}
	})
}
