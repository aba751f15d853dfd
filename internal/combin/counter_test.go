package combin

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/nao1215/p455w0rd/internal/model"
	"github.com/nao1215/p455w0rd/internal/words"
)

// testSet builds a word set for counting tests.
func testSet(t *testing.T, ws []string) *words.Set {
	t.Helper()
	return words.NewSet(ws)
}

// TestCount tests the exact candidate count for a small word set where
// the expected totals can be derived by hand.
//
// "admin" has 12 variants of length 5. "pass" has 23 variants of
// length 4: eight leet patterns in three case forms each, minus one
// collision ("p455" keeps a single letter, so its capitalized and
// uppercased forms coincide). Single words contribute 35 candidates and
// the two orderings of the pair contribute 2*12*23 = 552 concatenations
// of length 9.
func TestCount(t *testing.T) {
	t.Parallel()

	set := testSet(t, []string{"admin", "pass"})

	t.Run("without special characters", func(t *testing.T) {
		t.Parallel()

		analysis, err := Count(set, &model.CombinationConfig{
			MinLength: 4,
			MaxLength: 12,
			MaxWords:  2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if analysis.TotalCombinations != 587 {
			t.Errorf("TotalCombinations = %d, want 587", analysis.TotalCombinations)
		}
		if analysis.Capped {
			t.Error("analysis must not be capped for a tiny word set")
		}
	})

	t.Run("with special characters", func(t *testing.T) {
		t.Parallel()

		analysis, err := Count(set, &model.CombinationConfig{
			MinLength:           4,
			MaxLength:           12,
			MaxWords:            2,
			IncludeSpecialChars: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Lengths 4 and 5 leave room for every padding block (651 forms
		// each); length 9 leaves a gap of three (171 forms).
		want := uint64(35*651 + 552*171)
		if analysis.TotalCombinations != want {
			t.Errorf("TotalCombinations = %d, want %d", analysis.TotalCombinations, want)
		}
	})

	t.Run("length window excludes single words", func(t *testing.T) {
		t.Parallel()

		analysis, err := Count(set, &model.CombinationConfig{
			MinLength: 6,
			MaxLength: 9,
			MaxWords:  2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if analysis.TotalCombinations != 552 {
			t.Errorf("TotalCombinations = %d, want 552", analysis.TotalCombinations)
		}
	})

	t.Run("max words caps combination size", func(t *testing.T) {
		t.Parallel()

		analysis, err := Count(set, &model.CombinationConfig{
			MinLength: 4,
			MaxLength: 12,
			MaxWords:  1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if analysis.TotalCombinations != 35 {
			t.Errorf("TotalCombinations = %d, want 35", analysis.TotalCombinations)
		}
	})

	t.Run("invalid length window", func(t *testing.T) {
		t.Parallel()

		_, err := Count(set, &model.CombinationConfig{MinLength: 10, MaxLength: 4})
		if !errors.Is(err, model.ErrInvalidLengthWindow) {
			t.Errorf("got %v, want ErrInvalidLengthWindow", err)
		}
	})

	t.Run("empty word set", func(t *testing.T) {
		t.Parallel()

		_, err := Count(words.NewSet(nil), &model.CombinationConfig{MinLength: 4, MaxLength: 12})
		if !errors.Is(err, model.ErrEmptyWordSet) {
			t.Errorf("got %v, want ErrEmptyWordSet", err)
		}
	})
}

// TestCountDeterminism tests that identical inputs always produce
// identical analyses.
func TestCountDeterminism(t *testing.T) {
	t.Parallel()

	set := testSet(t, []string{"admin", "pass", "secret"})
	cfg := &model.CombinationConfig{
		MinLength:           4,
		MaxLength:           16,
		IncludeSpecialChars: true,
	}

	first, err := Count(set, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Count(set, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("analyses differ between runs:\n%+v\n%+v", first, second)
	}
}

// TestCountBreakdownSumsToTotal tests the invariant that the per-size
// breakdown always sums to the reported total, capped or not.
func TestCountBreakdownSumsToTotal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		ws   []string
		cfg  *model.CombinationConfig
	}{
		{
			name: "small uncapped set",
			ws:   []string{"admin", "pass", "secret"},
			cfg: &model.CombinationConfig{
				MinLength:           4,
				MaxLength:           20,
				IncludeSpecialChars: true,
			},
		},
		{
			name: "leet-heavy capped set",
			ws:   []string{"assassin", "assassins", "sassafras", "molasses", "isolates"},
			cfg: &model.CombinationConfig{
				MinLength: 4,
				MaxLength: 63,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			analysis, err := Count(testSet(t, tc.ws), tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var sum uint64
			for _, b := range analysis.Breakdown.ByWordCount {
				sum += b.Combinations
			}
			if sum != analysis.TotalCombinations {
				t.Errorf("breakdown sums to %d, total is %d", sum, analysis.TotalCombinations)
			}
		})
	}
}

// TestCountSaturation tests that a word set whose combination space
// exceeds the counting cap reports exactly the cap with Capped set,
// instead of overflowing or spending unbounded time.
func TestCountSaturation(t *testing.T) {
	t.Parallel()

	t.Run("variant volume saturates the cap", func(t *testing.T) {
		t.Parallel()

		// Each word has at least seven leetable positions, so three-word
		// arrangements alone exceed a billion concatenations.
		set := testSet(t, []string{"assassin", "assassins", "sassafras", "molasses", "isolates"})
		analysis, err := Count(set, &model.CombinationConfig{
			MinLength: 4,
			MaxLength: 63,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !analysis.Capped {
			t.Fatal("analysis must be capped")
		}
		if analysis.TotalCombinations != model.ExactCountCap {
			t.Errorf("TotalCombinations = %d, want exactly %d", analysis.TotalCombinations, model.ExactCountCap)
		}
	})

	t.Run("arrangement space saturates the cap", func(t *testing.T) {
		t.Parallel()

		// 200 words give P(200, 3) = 7,880,400 arrangements, beyond what
		// the counter will walk for one combination size.
		ws := make([]string, 200)
		for i := range ws {
			ws[i] = fmt.Sprintf("w%03dq", i)
		}

		analysis, err := Count(testSet(t, ws), &model.CombinationConfig{
			MinLength: 4,
			MaxLength: 20,
			MaxWords:  3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !analysis.Capped {
			t.Fatal("analysis must be capped")
		}
		if analysis.TotalCombinations != model.ExactCountCap {
			t.Errorf("TotalCombinations = %d, want exactly %d", analysis.TotalCombinations, model.ExactCountCap)
		}
	})
}

// TestCountBreakdownReferenceFactors tests the standalone reference
// figures in the breakdown.
func TestCountBreakdownReferenceFactors(t *testing.T) {
	t.Parallel()

	set := testSet(t, []string{"admin", "pass"})
	analysis, err := Count(set, &model.CombinationConfig{
		MinLength:           4,
		MaxLength:           12,
		MaxWords:            2,
		IncludeSpecialChars: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := analysis.Breakdown
	// P(2,1) + P(2,2).
	if b.WordPermutations != 4 {
		t.Errorf("WordPermutations = %d, want 4", b.WordPermutations)
	}
	// 2^2 for "admin" times 2^3 for "pass".
	if b.LeetVariants != 32 {
		t.Errorf("LeetVariants = %d, want 32", b.LeetVariants)
	}
	if b.CaseVariants != 3 {
		t.Errorf("CaseVariants = %d, want 3", b.CaseVariants)
	}
	if b.SpecialCharVariants != 651 {
		t.Errorf("SpecialCharVariants = %d, want 651", b.SpecialCharVariants)
	}
}
