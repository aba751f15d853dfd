package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/p455w0rd/internal/combin"
	"github.com/nao1215/p455w0rd/internal/model"
	"github.com/nao1215/p455w0rd/internal/mutate"
	"github.com/nao1215/p455w0rd/internal/words"
)

// Sink consumes generated candidates one at a time. The assembler treats
// the sink as a synchronous consumer: if a write blocks, generation
// blocks. A sink error halts generation immediately with no retry.
type Sink interface {
	// WriteCandidate accepts one candidate string. The persisted form is
	// the sink's concern (batching, newline termination, atomic rename).
	WriteCandidate(candidate string) error
}

// ProgressFunc receives progress snapshots during generation. It is
// invoked between arrangements without throttling; display cadence is
// the callback's concern.
type ProgressFunc func(model.Progress)

// errLimitReached unwinds the enumeration when the candidate limit is
// hit mid-arrangement. It never escapes Run.
var errLimitReached = errors.New("candidate limit reached")

// Assembler enumerates word combinations and streams candidates to a
// sink. Construct with New and start with Run; an Assembler is
// single-use per run but holds no state between runs besides
// configuration.
type Assembler struct {
	set      *words.Set
	cfg      *model.CombinationConfig
	logger   *slog.Logger
	progress ProgressFunc
	workers  int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithLogger sets a custom logger for the assembler.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// WithProgress sets the progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Assembler) {
		a.progress = fn
	}
}

// WithWorkers sets the size of the variant expansion worker pool.
// Values below one select the number of CPUs.
func WithWorkers(n int) Option {
	return func(a *Assembler) {
		a.workers = n
	}
}

// New creates an Assembler for the given word set and configuration.
func New(set *words.Set, cfg *model.CombinationConfig, opts ...Option) *Assembler {
	a := &Assembler{
		set: set,
		cfg: cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Result summarizes a completed (or stopped) generation run.
type Result struct {
	// Emitted is the number of candidates written to the sink.
	Emitted int

	// Duplicates is the number of candidates suppressed by the
	// deduplication window.
	Duplicates int

	// DedupClears is how many times the bounded window was cleared.
	DedupClears int

	// EstimatedTotal is the progress denominator used during the run.
	EstimatedTotal uint64

	// LimitReached reports whether generation stopped at the configured
	// candidate limit rather than running to exhaustion.
	LimitReached bool
}

// Run generates candidates until exhaustion, the configured limit, a
// sink failure, or context cancellation. Cancellation is checked between
// arrangements; no partial candidate is ever emitted.
func (a *Assembler) Run(ctx context.Context, sink Sink) (*Result, error) {
	if a.set.Len() == 0 {
		return nil, model.ErrEmptyWordSet
	}
	if a.cfg.MinLength > a.cfg.MaxLength {
		return nil, model.ErrInvalidLengthWindow
	}

	variants, err := mutate.ExpandAll(ctx, a.set, a.workers)
	if err != nil {
		return nil, fmt.Errorf("failed to expand word variants: %w", err)
	}

	maxK := a.cfg.ClampMaxWords(a.set.Len())
	result := &Result{
		EstimatedTotal: combin.Estimate(variants, maxK),
	}
	dedup := newDedupWindow(a.cfg.EffectiveDedupCacheSize())

	a.logger.Debug("starting generation",
		"words", a.set.Len(),
		"max_combo_size", maxK,
		"estimated_total", result.EstimatedTotal,
	)

	arranged := make([][]string, maxK)
	emit := func(base string) error {
		if a.cfg.IncludeSpecialChars {
			for _, padded := range mutate.Pad(base, a.cfg.MaxLength) {
				if err := a.writeCandidate(sink, dedup, result, padded); err != nil {
					return err
				}
			}
			return nil
		}
		return a.writeCandidate(sink, dedup, result, base)
	}

	for k := 1; k <= maxK; k++ {
		var runErr error
		combin.Permutations(a.set.Len(), k, func(idx []int) bool {
			select {
			case <-ctx.Done():
				runErr = ctx.Err()
				return false
			default:
			}

			for i, wi := range idx {
				arranged[i] = variants[wi]
			}
			if err := a.emitArrangement(arranged[:k], emit); err != nil {
				runErr = err
				return false
			}

			if a.progress != nil {
				a.progress(model.Progress{
					Emitted:        result.Emitted,
					EstimatedTotal: result.EstimatedTotal,
					ComboSize:      k,
				})
			}
			return true
		})

		switch {
		case runErr == nil:
			continue
		case errors.Is(runErr, errLimitReached):
			result.LimitReached = true
			a.logger.Debug("candidate limit reached", "emitted", result.Emitted)
			return result, nil
		default:
			return result, runErr
		}
	}

	a.logger.Debug("generation complete",
		"emitted", result.Emitted,
		"duplicates", result.Duplicates,
		"dedup_clears", result.DedupClears,
	)
	return result, nil
}

// writeCandidate applies the deduplication window, forwards the
// candidate to the sink, and enforces the emission limit.
func (a *Assembler) writeCandidate(sink Sink, dedup *dedupWindow, result *Result, candidate string) error {
	if dedup.observe(candidate) {
		result.Duplicates++
		return nil
	}

	if err := sink.WriteCandidate(candidate); err != nil {
		return fmt.Errorf("failed to write candidate: %w", err)
	}
	result.Emitted++
	result.DedupClears = dedup.clears

	if a.cfg.Limit > 0 && result.Emitted >= a.cfg.Limit {
		return errLimitReached
	}
	return nil
}

// emitArrangement walks the cartesian product of the arranged variant
// sets by concatenation, calling emitBase for every concatenation inside
// the length window. The traversal is an explicit odometer over an index
// stack; a partial concatenation longer than the window maximum prunes
// the whole subtree, which bounds peak memory.
func (a *Assembler) emitArrangement(variantSets [][]string, emitBase func(base string) error) error {
	k := len(variantSets)
	idx := make([]int, k)
	prefixes := make([]string, k)

	depth := 0
	for depth >= 0 {
		if idx[depth] >= len(variantSets[depth]) {
			idx[depth] = 0
			depth--
			if depth >= 0 {
				idx[depth]++
			}
			continue
		}

		next := prefixes[depth] + variantSets[depth][idx[depth]]
		if len(next) > a.cfg.MaxLength {
			idx[depth]++
			continue
		}

		if depth == k-1 {
			if len(next) >= a.cfg.MinLength {
				if err := emitBase(next); err != nil {
					return err
				}
			}
			idx[depth]++
			continue
		}

		depth++
		prefixes[depth] = next
	}
	return nil
}
