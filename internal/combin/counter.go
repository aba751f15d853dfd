package combin

import (
	"math"

	"github.com/nao1215/p455w0rd/internal/model"
	"github.com/nao1215/p455w0rd/internal/mutate"
	"github.com/nao1215/p455w0rd/internal/words"
)

// MaxCountedArrangements bounds how many word arrangements the exact
// counter will walk for a single combination size. Beyond this the count
// degrades to the saturation cap rather than spending unbounded time;
// counting never aborts generation.
const MaxCountedArrangements uint64 = 5_000_000

// Count analytically computes the number of candidates the assembler
// would emit for the given word set and configuration. It is pure and
// deterministic: identical inputs always produce identical analyses.
//
// The count honors the length window and special-character padding
// exactly as the assembler enumerates them, so a post-hoc comparison
// with the emitted count matches whenever no running total hit
// model.ExactCountCap. The counter models the stream before the bounded
// deduplication window; word sets whose cross-arrangement concatenations
// collide (one word a prefix-repetition of another) can emit fewer
// candidates than counted.
func Count(set *words.Set, cfg *model.CombinationConfig) (*model.Analysis, error) {
	n := set.Len()
	if n == 0 {
		return nil, model.ErrEmptyWordSet
	}
	if cfg.MinLength > cfg.MaxLength {
		return nil, model.ErrInvalidLengthWindow
	}
	maxK := cfg.ClampMaxWords(n)

	// Exact deduplicated variant counts per word, grouped by byte
	// length. These histograms are the only per-word input the counter
	// needs; concatenation counts follow by convolution.
	hists := make([]map[int]uint64, n)
	for i := range n {
		hists[i] = mutate.VariantLengths(set.Word(i))
	}

	breakdown := model.Breakdown{
		CaseVariants:        3,
		SpecialCharVariants: 1,
		LeetVariants:        1,
	}
	if cfg.IncludeSpecialChars {
		breakdown.SpecialCharVariants = mutate.UnconstrainedPadVariants()
	}
	for k := 1; k <= maxK; k++ {
		breakdown.WordPermutations = satAdd(breakdown.WordPermutations, PermutationCount(n, k))
	}
	for i := range n {
		breakdown.LeetVariants = satMul(breakdown.LeetVariants, mutate.TheoreticalLeetVariants(set.Word(i)))
	}

	var (
		total       uint64
		totalCountF float64
		totalLenF   float64
		capped      bool
	)
	sizes := newSizeCounter(hists, cfg)

	for k := 1; k <= maxK; k++ {
		budget := model.ExactCountCap - total
		if budget == 0 {
			capped = true
			break
		}

		kCount, kCountF, kLenF, kCapped := sizes.count(k, budget)
		avg := 0.0
		if kCountF > 0 {
			avg = kLenF / kCountF
		}
		breakdown.ByWordCount = append(breakdown.ByWordCount, model.WordCountBreakdown{
			WordCount:     k,
			Combinations:  kCount,
			AverageLength: avg,
		})

		total += kCount
		totalCountF += kCountF
		totalLenF += kLenF
		if kCapped {
			capped = true
			break
		}
	}

	analysis := &model.Analysis{
		TotalCombinations: total,
		Capped:            capped,
		Breakdown:         breakdown,
	}

	if totalCountF > 0 {
		avgLen := totalLenF / totalCountF
		analysis.EstimatedFileSizeBytes = satMul(total, uint64(avgLen)+1)
	}

	return analysis, nil
}

// sizeCounter carries the reusable convolution buffers for per-size
// counting. Buffers are sized by the maximum candidate length and shared
// across arrangements to avoid per-arrangement allocation.
type sizeCounter struct {
	hists []map[int]uint64
	cfg   *model.CombinationConfig
	cur   []uint64
	next  []uint64
}

func newSizeCounter(hists []map[int]uint64, cfg *model.CombinationConfig) *sizeCounter {
	return &sizeCounter{
		hists: hists,
		cfg:   cfg,
		cur:   make([]uint64, cfg.MaxLength+1),
		next:  make([]uint64, cfg.MaxLength+1),
	}
}

// count computes the exact candidate count for combination size k,
// saturating at budget. It also returns float accumulators of the
// candidate count and summed candidate length (padding included) for
// average-length reporting, and whether the count saturated.
func (s *sizeCounter) count(k int, budget uint64) (count uint64, countF, lenF float64, capped bool) {
	n := len(s.hists)
	maxLen := s.cfg.MaxLength

	// Degrade to the cap instead of walking an unbounded arrangement
	// space. The direction of the error is deliberate: an overestimate
	// triggers the confirmation prompt, an underestimate would not.
	if PermutationCount(n, k) > MaxCountedArrangements {
		return budget, float64(budget), float64(budget) * float64(maxLen), true
	}

	Permutations(n, k, func(idx []int) bool {
		clear(s.cur)
		s.cur[0] = 1

		// Convolve the variant length histograms of the arranged words,
		// dropping any partial length that already exceeds the window.
		alive := true
		for _, wi := range idx {
			clear(s.next)
			alive = false
			for l, c := range s.cur {
				if c == 0 {
					continue
				}
				for vlen, vcount := range s.hists[wi] {
					if l+vlen > maxLen {
						continue
					}
					s.next[l+vlen] = satAdd(s.next[l+vlen], satMul(c, vcount))
					alive = true
				}
			}
			s.cur, s.next = s.next, s.cur
			if !alive {
				break
			}
		}
		if !alive {
			return true
		}

		for l := s.cfg.MinLength; l <= maxLen; l++ {
			c := s.cur[l]
			if c == 0 {
				continue
			}

			pads := uint64(1)
			lenSum := uint64(l)
			if s.cfg.IncludeSpecialChars {
				pads = mutate.PadVariantCount(l, maxLen)
				lenSum = mutate.PadLengthSum(l, maxLen)
			}

			count = capAdd(count, satMul(c, pads), budget)
			countF += float64(c) * float64(pads)
			lenF += float64(c) * float64(lenSum)
		}

		if count >= budget {
			capped = true
			return false
		}
		return true
	})

	return count, countF, lenF, capped
}

// FileSizeUnknown is the sentinel for a file size estimate that
// overflowed. Renderers show it as unbounded rather than a number.
const FileSizeUnknown uint64 = math.MaxUint64
