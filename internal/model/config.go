package model

// Default generation parameters. These mirror the CLI flag defaults and
// are defined here so that both the command layer and tests share one
// source of truth.
const (
	// DefaultMinLength is the minimum candidate length when none is given.
	// Four characters covers short PINs-as-words without flooding the
	// output with unusable fragments.
	DefaultMinLength = 4

	// DefaultMaxLength is the maximum candidate length when none is given.
	DefaultMaxLength = 20

	// DefaultChunkSize is the number of candidates buffered before a chunk
	// is sorted, deduplicated, and flushed to the sink.
	DefaultChunkSize = 100000

	// DefaultDedupCacheSize is the maximum number of entries held in the
	// bounded deduplication window. When the window fills it is cleared
	// entirely, trading perfect deduplication for bounded memory.
	DefaultDedupCacheSize = 1 << 20

	// WPA2MinLength and WPA2MaxLength are the passphrase length bounds
	// imposed by the WPA2 standard. The --wpa2 flag overrides the
	// configured length window with these values.
	WPA2MinLength = 8
	WPA2MaxLength = 63
)

// CombinationConfig controls how words are combined into candidates.
// It is populated by the command layer and passed read-only to the
// counter and the assembler. Both components must interpret it
// identically; the analytical count is defined to match the enumerated
// output.
type CombinationConfig struct {
	// MaxWords is the maximum number of distinct words concatenated into
	// one candidate. Zero means unlimited; it is clamped to the word set
	// size before use.
	MaxWords int

	// MinLength and MaxLength bound the byte length of emitted candidates.
	// Invariant after validation: MinLength <= MaxLength.
	MinLength int
	MaxLength int

	// IncludeSpecialChars enables special-character padding of candidates
	// that already satisfy the length window.
	IncludeSpecialChars bool

	// ChunkSize is the number of candidates buffered per output chunk.
	ChunkSize int

	// Limit stops generation after this many candidates have been
	// emitted. Zero means unlimited.
	Limit int

	// DedupCacheSize caps the bounded deduplication window. Zero selects
	// DefaultDedupCacheSize.
	DedupCacheSize int
}

// ClampMaxWords returns the effective maximum combination size for a word
// set of the given size. MaxWords == 0 is treated as unlimited.
func (c *CombinationConfig) ClampMaxWords(wordCount int) int {
	if c.MaxWords <= 0 || c.MaxWords > wordCount {
		return wordCount
	}
	return c.MaxWords
}

// EffectiveDedupCacheSize returns the dedup window cap, substituting the
// default when unset.
func (c *CombinationConfig) EffectiveDedupCacheSize() int {
	if c.DedupCacheSize <= 0 {
		return DefaultDedupCacheSize
	}
	return c.DedupCacheSize
}
