package mutate

import (
	"context"
	"math"
	"runtime"
	"slices"
	"strings"
	"unicode"

	"github.com/nao1215/p455w0rd/internal/words"
	"golang.org/x/sync/errgroup"
)

// Expansion safety thresholds. Full bitmask expansion doubles the
// variant count per leetable position, so a hard ceiling is required to
// keep per-word expansion in memory.
const (
	// MaxLeetPositions is the largest number of leetable positions that
	// full bitmask expansion will handle (2^20 leet variants per word).
	// Words beyond this fall back to quick expansion.
	MaxLeetPositions = 20

	// WarnLeetPositions is the threshold above which the command layer
	// warns about expansion cost before generation starts.
	WarnLeetPositions = 14

	// unboundedLeetPositions marks the point where even the theoretical
	// variant count no longer fits in a uint64.
	unboundedLeetPositions = 64
)

// leetFor returns the leet substitute for r, or zero when r has none.
// The alphabet is fixed: a→4, e→3, i→1, l→1, o→0, s→5.
func leetFor(r rune) rune {
	switch r {
	case 'a':
		return '4'
	case 'e':
		return '3'
	case 'i':
		return '1'
	case 'l':
		return '1'
	case 'o':
		return '0'
	case 's':
		return '5'
	}
	return 0
}

// LeetPositions returns the number of leetable positions in the
// lowercased word.
func LeetPositions(word string) int {
	var n int
	for _, r := range strings.ToLower(word) {
		if leetFor(r) != 0 {
			n++
		}
	}
	return n
}

// TheoreticalLeetVariants returns 2^k where k is the number of leetable
// positions. Words with 64 or more positions return math.MaxUint64; the
// analysis renders that as "too many to count" instead of enumerating.
func TheoreticalLeetVariants(word string) uint64 {
	k := LeetPositions(word)
	if k >= unboundedLeetPositions {
		return math.MaxUint64
	}
	return 1 << k
}

// Expand returns every variant of word: each subset of leetable
// positions substituted, then three case forms per substitution result
// (lowercase, first letter capitalized, uppercase), sorted and
// deduplicated. It never fails and never returns an empty slice; a word
// with no leetable or alphabetic characters yields itself.
//
// Words with more than MaxLeetPositions leetable positions are expanded
// in quick mode, which substitutes one position at a time instead of
// every subset. This keeps expansion linear for pathological inputs.
func Expand(word string) []string {
	lower := strings.ToLower(word)
	runes := []rune(lower)

	var positions []int
	for i, r := range runes {
		if leetFor(r) != 0 {
			positions = append(positions, i)
		}
	}

	var leet []string
	if len(positions) > MaxLeetPositions {
		leet = quickLeet(runes, positions)
	} else {
		leet = bitmaskLeet(runes, positions)
	}

	variants := make([]string, 0, len(leet)*3)
	for _, lv := range leet {
		variants = append(variants, lv, capitalize(lv), strings.ToUpper(lv))
	}

	slices.Sort(variants)
	return slices.Compact(variants)
}

// bitmaskLeet substitutes every subset of the leetable positions.
// A bitmask over k positions enumerates all 2^k substitution patterns;
// mask zero is the unmodified word.
func bitmaskLeet(runes []rune, positions []int) []string {
	if len(positions) == 0 {
		return []string{string(runes)}
	}

	out := make([]string, 0, 1<<len(positions))
	buf := make([]rune, len(runes))
	for mask := 0; mask < 1<<len(positions); mask++ {
		copy(buf, runes)
		for bit, pos := range positions {
			if mask>>bit&1 == 1 {
				buf[pos] = leetFor(runes[pos])
			}
		}
		out = append(out, string(buf))
	}
	return out
}

// quickLeet substitutes one leetable position at a time. This reduced
// mode keeps the variant count at k+1 instead of 2^k for words with an
// excessive number of leetable positions.
func quickLeet(runes []rune, positions []int) []string {
	out := make([]string, 0, len(positions)+1)
	out = append(out, string(runes))
	buf := make([]rune, len(runes))
	for _, pos := range positions {
		copy(buf, runes)
		buf[pos] = leetFor(runes[pos])
		out = append(out, string(buf))
	}
	return out
}

// capitalize uppercases the first alphabetic character of s. Leading
// digits from leet substitution are skipped, so "4dmin" becomes "4Dmin".
func capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			upper := unicode.ToUpper(r)
			if upper == r {
				return s
			}
			return s[:i] + string(upper) + s[i+len(string(r)):]
		}
	}
	return s
}

// VariantCount returns the number of deduplicated variants Expand
// produces for word.
func VariantCount(word string) uint64 {
	return uint64(len(Expand(word)))
}

// VariantLengths returns the deduplicated variant count of word grouped
// by byte length. The counter convolves these histograms to predict
// length-filtered combination counts without enumerating concatenations.
func VariantLengths(word string) map[int]uint64 {
	hist := make(map[int]uint64)
	for _, v := range Expand(word) {
		hist[len(v)]++
	}
	return hist
}

// ExpandAll expands every word in the set on a bounded worker pool and
// returns the variant slices in word order. Each expansion is
// independent and writes only its own slot, so no locking is needed.
// workers <= 0 selects runtime.NumCPU().
func ExpandAll(ctx context.Context, set *words.Set, workers int) ([][]string, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	variants := make([][]string, set.Len())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range set.Len() {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			variants[i] = Expand(set.Word(i))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}
