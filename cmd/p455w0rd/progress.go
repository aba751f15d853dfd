package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/nao1215/p455w0rd/internal/model"
	"github.com/schollz/progressbar/v3"
)

// progressDisplay adapts assembler progress snapshots to a terminal
// progress bar. The bar is created lazily on the first snapshot because
// the estimated total is only known once expansion has run.
type progressDisplay struct {
	out       io.Writer
	bar       *progressbar.ProgressBar
	comboSize int
}

// newProgressDisplay creates a progressDisplay writing to out.
func newProgressDisplay(out io.Writer) *progressDisplay {
	return &progressDisplay{out: out}
}

// update renders one progress snapshot. The snapshot total is a
// heuristic estimate, so the emitted count may pass it; the bar caps at
// its maximum rather than failing.
func (p *progressDisplay) update(progress model.Progress) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions64(barMax(progress.EstimatedTotal),
			progressbar.OptionSetDescription("Generating"),
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionThrottle(100*time.Millisecond),
		)
	}

	if progress.ComboSize != p.comboSize {
		p.comboSize = progress.ComboSize
		p.bar.Describe(fmt.Sprintf("Generating (%d-word combos)", progress.ComboSize))
	}
	_ = p.bar.Set(progress.Emitted)
}

// finish completes the bar and moves the cursor to a fresh line.
func (p *progressDisplay) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(p.out)
}

// barMax converts the estimated total to a bar maximum, clamping values
// that exceed the int64 range.
func barMax(estimated uint64) int64 {
	if estimated > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(estimated)
}
