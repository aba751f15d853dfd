package mutate

import (
	"slices"
)

// SpecialChars is the padding alphabet in enumeration order.
var SpecialChars = []rune{'!', '@', '#', '$', '%'}

// Pad returns base plus every special-character padded form whose length
// stays within maxLen, sorted and deduplicated. For each block size j
// from 1 to len(SpecialChars), every ordered arrangement of j distinct
// alphabet characters is applied once as a prefix and once as a suffix.
// Order matters: "!@" and "@!" are distinct blocks.
//
// The base string is always a member; the caller guarantees it already
// satisfies the length window.
func Pad(base string, maxLen int) []string {
	out := []string{base}
	gap := maxLen - len(base)

	for j := 1; j <= len(SpecialChars) && j <= gap; j++ {
		arrangements(SpecialChars, j, func(block string) {
			out = append(out, block+base, base+block)
		})
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// PadToLength returns the padded forms of base whose length equals
// target exactly, sorted and deduplicated. Only suffix blocks that close
// the gap exactly are retained; a single leading character is tried as
// well, which survives only when the gap is one. This asymmetry is a
// deliberate reduced heuristic, not an exhaustive padding strategy, and
// the counting side is defined against it.
//
// A base already at target is returned unchanged; a base longer than
// target yields nothing.
func PadToLength(base string, target int) []string {
	gap := target - len(base)
	switch {
	case gap < 0:
		return nil
	case gap == 0:
		return []string{base}
	}

	var out []string
	if gap <= len(SpecialChars) {
		arrangements(SpecialChars, gap, func(block string) {
			out = append(out, base+block)
		})
	}
	if gap == 1 {
		for _, r := range SpecialChars {
			out = append(out, string(r)+base)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

// PadVariantCount returns the number of padded forms Pad produces for a
// base of baseLen under maxLen, as a closed form:
//
//	1 + Σ_{j=1..n, baseLen+j <= maxLen} 2·P(n, j)
//
// where n is the alphabet size and P the permutation count. With no
// length constraint this is 651 for the five-character alphabet. The
// closed form assumes padded strings are distinct, which holds unless
// the base itself collides with a padded sibling.
func PadVariantCount(baseLen, maxLen int) uint64 {
	n := len(SpecialChars)
	total := uint64(1)
	for j := 1; j <= n && baseLen+j <= maxLen; j++ {
		// P(n, j) over the fixed five-character alphabet; no overflow
		// is possible at this scale.
		p := uint64(1)
		for i := range j {
			p *= uint64(n - i)
		}
		total += 2 * p
	}
	return total
}

// PadLengthSum returns the summed byte length of every form Pad
// produces for a base of baseLen under maxLen, including the unpadded
// base. Together with PadVariantCount this lets the counter derive
// exact average candidate lengths without enumerating padded strings.
func PadLengthSum(baseLen, maxLen int) uint64 {
	n := len(SpecialChars)
	total := uint64(baseLen)
	for j := 1; j <= n && baseLen+j <= maxLen; j++ {
		p := uint64(1)
		for i := range j {
			p *= uint64(n - i)
		}
		total += 2 * p * uint64(baseLen+j)
	}
	return total
}

// UnconstrainedPadVariants is PadVariantCount without a length limit,
// used as the reference figure in the analysis breakdown.
func UnconstrainedPadVariants() uint64 {
	return PadVariantCount(0, len(SpecialChars))
}

// arrangements calls fn with every ordered arrangement of k distinct
// characters from alphabet, in lexicographic order over alphabet
// indices. Implemented as an explicit index stack rather than recursion.
func arrangements(alphabet []rune, k int, fn func(block string)) {
	if k <= 0 || k > len(alphabet) {
		return
	}

	idx := make([]int, k)
	used := make([]bool, len(alphabet))
	buf := make([]rune, k)
	depth := 0
	idx[0] = 0

	for depth >= 0 {
		advanced := false
		for i := idx[depth]; i < len(alphabet); i++ {
			if used[i] {
				continue
			}
			idx[depth] = i
			used[i] = true
			buf[depth] = alphabet[i]
			advanced = true
			break
		}

		if !advanced {
			// This depth is exhausted; backtrack.
			depth--
			if depth >= 0 {
				used[idx[depth]] = false
				idx[depth]++
			}
			continue
		}

		if depth == k-1 {
			fn(string(buf))
			used[idx[depth]] = false
			idx[depth]++
			continue
		}

		depth++
		idx[depth] = 0
	}
}
