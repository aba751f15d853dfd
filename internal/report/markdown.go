package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/p455w0rd/internal/combin"
)

// MarkdownWriter outputs the analysis as GitHub Flavored Markdown, for
// sharing and documentation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the summary as Markdown.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)
	a := summary.Analysis

	md.H1("Combinatorial Analysis")
	md.PlainText("")

	total := strconv.FormatUint(a.TotalCombinations, 10)
	if a.Capped {
		total = "too many to count (more than " + total + ")"
	} else {
		total = total + " (" + combin.FormatCount(a.TotalCombinations) + ")"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Words", strconv.Itoa(len(summary.Words))},
			{"Length window", fmt.Sprintf("%d-%d", summary.Config.MinLength, summary.Config.MaxLength)},
			{"Max combo size", strconv.Itoa(summary.Config.ClampMaxWords(len(summary.Words)))},
			{"Special chars", strconv.FormatBool(summary.Config.IncludeSpecialChars)},
			{"Total candidates", total},
			{"Estimated size", combin.FormatFileSize(a.EstimatedFileSizeBytes)},
		},
	})
	md.PlainText("")

	w.writeBreakdown(md, summary)
	w.writeWarnings(md, summary)

	return len(md.String()), md.Build()
}

// writeBreakdown renders the per-word-count table.
func (w *MarkdownWriter) writeBreakdown(md *markdown.Markdown, summary *Summary) {
	a := summary.Analysis

	md.H2("Breakdown by Combination Size")
	md.PlainText("")

	rows := make([][]string, 0, len(a.Breakdown.ByWordCount))
	for _, b := range a.Breakdown.ByWordCount {
		rows = append(rows, []string{
			strconv.Itoa(b.WordCount),
			strconv.FormatUint(b.Combinations, 10),
			fmt.Sprintf("%.1f", b.AverageLength),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Words", "Candidates", "Avg Length"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Reference Factors")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Factor", "Value"},
		Rows: [][]string{
			{"Word arrangements", strconv.FormatUint(a.Breakdown.WordPermutations, 10)},
			{"Leet variants", combin.FormatCount(a.Breakdown.LeetVariants)},
			{"Case variants", strconv.FormatUint(a.Breakdown.CaseVariants, 10)},
			{"Special char variants", strconv.FormatUint(a.Breakdown.SpecialCharVariants, 10)},
		},
	})
	md.PlainText("")
}

// writeWarnings renders collected warnings as a GFM warning alert.
func (w *MarkdownWriter) writeWarnings(md *markdown.Markdown, summary *Summary) {
	if len(summary.Warnings) == 0 {
		return
	}
	md.Warningf("%s", strings.Join(summary.Warnings, "\n"))
	md.PlainText("")
}
