package model

// ExactCountCap is the saturation ceiling for exact combination counts.
// Counts at or above this value are reported as the cap itself and the
// analysis is flagged as capped; callers render it as "too many to
// count" rather than a misleading number.
const ExactCountCap uint64 = 1_000_000_000

// Analysis is the result of the pre-flight combinatorial count. It
// predicts, without enumerating, how many candidates generation would
// emit and how large the resulting file would be. The command layer uses
// it for the confirmation prompt and as the progress denominator.
type Analysis struct {
	// TotalCombinations is the predicted candidate count, saturated at
	// ExactCountCap. It is definitionally the sum of the per-word-count
	// breakdown entries, not a separately derived formula.
	TotalCombinations uint64 `json:"total_combinations"`

	// EstimatedFileSizeBytes is TotalCombinations multiplied by the
	// average candidate length plus one newline byte, saturating at the
	// numeric maximum.
	EstimatedFileSizeBytes uint64 `json:"estimated_file_size_bytes"`

	// Capped reports whether any running total hit ExactCountCap.
	// When true, TotalCombinations is a lower bound.
	Capped bool `json:"capped"`

	// Breakdown holds the per-factor and per-word-count details.
	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown decomposes the analysis into its combinatorial factors.
// WordPermutations, LeetVariants, and SpecialCharVariants are reference
// figures for the unconstrained search space; ByWordCount carries the
// exact length-filtered counts that sum to TotalCombinations.
type Breakdown struct {
	// WordPermutations is the number of ordered word arrangements across
	// all combination sizes, ignoring variants and length filtering.
	WordPermutations uint64 `json:"word_permutations"`

	// LeetVariants is the product of per-word theoretical leet variant
	// counts (2^k per word). Saturates at the numeric maximum.
	LeetVariants uint64 `json:"leet_variants"`

	// CaseVariants is always 3: lowercase, Capitalized, UPPERCASE.
	CaseVariants uint64 `json:"case_variants"`

	// SpecialCharVariants is the unconstrained padding variant count
	// (1 when padding is disabled).
	SpecialCharVariants uint64 `json:"special_char_variants"`

	// ByWordCount lists the exact counts per combination size k.
	ByWordCount []WordCountBreakdown `json:"by_word_count"`
}

// WordCountBreakdown is the exact candidate count for one combination
// size.
type WordCountBreakdown struct {
	// WordCount is the combination size k.
	WordCount int `json:"word_count"`

	// Combinations is the exact (length-filtered, padding-aware)
	// candidate count for this k, saturated at ExactCountCap.
	Combinations uint64 `json:"combinations"`

	// AverageLength is the length-weighted mean candidate length for
	// this k, including padding. Zero when Combinations is zero.
	AverageLength float64 `json:"average_length"`
}

// Progress is a snapshot passed to the progress callback during
// generation. The core emits snapshots without throttling; display
// cadence is the collaborator's concern.
type Progress struct {
	// Emitted is the number of candidates emitted so far.
	Emitted int

	// EstimatedTotal is the pre-flight estimate used as the progress
	// denominator. May be exceeded when the estimate was conservative.
	EstimatedTotal uint64

	// ComboSize is the combination size k currently being generated.
	ComboSize int
}
