package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/p455w0rd/internal/combin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SimpleWriter outputs the analysis as human-readable text for terminal
// display before the confirmation prompt. Exact numbers are printed with
// thousands separators alongside their rounded human form.
type SimpleWriter struct {
	baseWriter

	// printer formats integers with locale-aware separators.
	printer *message.Printer
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given
// writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}
}

// Write renders the summary in human-readable form.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("              COMBINATORIAL ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	sb.WriteString(w.printer.Sprintf("Words:             %d\n", len(summary.Words)))
	sb.WriteString(fmt.Sprintf("Length window:     %d-%d\n", summary.Config.MinLength, summary.Config.MaxLength))
	sb.WriteString(fmt.Sprintf("Max combo size:    %d\n", summary.Config.ClampMaxWords(len(summary.Words))))
	sb.WriteString(fmt.Sprintf("Special chars:     %v\n", summary.Config.IncludeSpecialChars))
	sb.WriteString("\n")

	a := summary.Analysis
	if a.Capped {
		sb.WriteString("Total candidates:  too many to count")
		sb.WriteString(w.printer.Sprintf(" (more than %d)\n", a.TotalCombinations))
	} else {
		sb.WriteString(w.printer.Sprintf("Total candidates:  %d", a.TotalCombinations))
		sb.WriteString(fmt.Sprintf(" (%s)\n", combin.FormatCount(a.TotalCombinations)))
	}
	sb.WriteString(fmt.Sprintf("Estimated size:    %s\n", combin.FormatFileSize(a.EstimatedFileSizeBytes)))
	sb.WriteString("\n")

	w.writeBreakdown(&sb, summary)
	w.writeWarnings(&sb, summary)

	return w.output.Write([]byte(sb.String()))
}

// writeBreakdown renders the per-word-count table and the reference
// factors.
func (w *SimpleWriter) writeBreakdown(sb *strings.Builder, summary *Summary) {
	a := summary.Analysis

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("BREAKDOWN BY COMBINATION SIZE\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	sb.WriteString("  words  candidates            avg length\n")
	for _, b := range a.Breakdown.ByWordCount {
		sb.WriteString(w.printer.Sprintf("  %-6d %-21d %.1f\n", b.WordCount, b.Combinations, b.AverageLength))
	}
	sb.WriteString("\n")

	sb.WriteString(w.printer.Sprintf("  Word arrangements:     %d\n", a.Breakdown.WordPermutations))
	sb.WriteString(fmt.Sprintf("  Leet variants:         %s\n", combin.FormatCount(a.Breakdown.LeetVariants)))
	sb.WriteString(w.printer.Sprintf("  Case variants:         %d\n", a.Breakdown.CaseVariants))
	sb.WriteString(w.printer.Sprintf("  Special char variants: %d\n", a.Breakdown.SpecialCharVariants))
	sb.WriteString("\n")
}

// writeWarnings renders collected warnings, if any.
func (w *SimpleWriter) writeWarnings(sb *strings.Builder, summary *Summary) {
	if len(summary.Warnings) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("WARNINGS\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")
	for _, warning := range summary.Warnings {
		sb.WriteString(fmt.Sprintf("  ! %s\n", warning))
	}
	sb.WriteString("\n")
}
