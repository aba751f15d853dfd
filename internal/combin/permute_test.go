package combin

import (
	"math"
	"reflect"
	"testing"
)

// TestPermutations tests lexicographic enumeration of ordered index
// arrangements.
func TestPermutations(t *testing.T) {
	t.Parallel()

	t.Run("full lexicographic order", func(t *testing.T) {
		t.Parallel()

		var got [][]int
		Permutations(3, 2, func(idx []int) bool {
			got = append(got, append([]int(nil), idx...))
			return true
		})

		want := [][]int{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Permutations(3, 2) = %v, want %v", got, want)
		}
	})

	t.Run("enumeration count matches the closed form", func(t *testing.T) {
		t.Parallel()

		var calls uint64
		Permutations(5, 3, func([]int) bool {
			calls++
			return true
		})

		if want := PermutationCount(5, 3); calls != want {
			t.Errorf("got %d arrangements, want %d", calls, want)
		}
	})

	t.Run("false return stops enumeration", func(t *testing.T) {
		t.Parallel()

		var calls int
		Permutations(4, 2, func([]int) bool {
			calls++
			return calls < 3
		})

		if calls != 3 {
			t.Errorf("got %d calls after early stop, want 3", calls)
		}
	})

	t.Run("degenerate sizes produce nothing", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct{ n, k int }{{3, 0}, {3, -1}, {2, 3}, {0, 1}} {
			Permutations(tc.n, tc.k, func([]int) bool {
				t.Errorf("Permutations(%d, %d) must not call fn", tc.n, tc.k)
				return false
			})
		}
	})
}

// TestPermutationCount tests the saturating arrangement count.
func TestPermutationCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		n        int
		k        int
		expected uint64
	}{
		{
			name:     "choose none",
			n:        5,
			k:        0,
			expected: 1,
		},
		{
			name:     "partial arrangement",
			n:        5,
			k:        3,
			expected: 60,
		},
		{
			name:     "full arrangement",
			n:        4,
			k:        4,
			expected: 24,
		},
		{
			name:     "more items than available",
			n:        3,
			k:        4,
			expected: 0,
		},
		{
			name:     "overflow saturates",
			n:        25,
			k:        25,
			expected: math.MaxUint64,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := PermutationCount(tc.n, tc.k); got != tc.expected {
				t.Errorf("PermutationCount(%d, %d) = %d, want %d", tc.n, tc.k, got, tc.expected)
			}
		})
	}
}
