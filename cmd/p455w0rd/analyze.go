package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/p455w0rd/internal/combin"
	"github.com/nao1215/p455w0rd/internal/config"
	"github.com/nao1215/p455w0rd/internal/log"
	"github.com/nao1215/p455w0rd/internal/report"
	"github.com/nao1215/p455w0rd/internal/words"
	"github.com/spf13/cobra"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [words...]",
		Short: "Count candidates without generating anything",
		Long: `Analyze runs the exact combinatorial analysis for a word set and
prints the result without writing a single candidate.

The count honors the same length window, combination size cap, and
special character settings as generate, so the number shown is the
number generate would write. Use it to size a run before committing
disk space and time.

Examples:
  # Human-readable analysis
  p455w0rd analyze admin password secret

  # Machine-readable JSON for scripting
  p455w0rd analyze --json --input words.txt

  # Markdown report written to a file
  p455w0rd analyze --markdown --output report.md admin pass`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	addWordSourceFlags(cmd)
	addCombinationFlags(cmd)

	cmd.Flags().Bool("json", false, "Output the report as JSON")
	cmd.Flags().Bool("markdown", false, "Output the report as Markdown")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to a file instead of stdout")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	// For analyze, -o names the report destination, not a candidate file.
	if cmd.Flags().Changed("output") {
		cfg.ReportFile = cfg.Output
		cfg.Output = config.DefaultOutputFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	return runAnalyze(cfg, cmd.OutOrStdout())
}

// runAnalyze collects words, counts candidates, and renders the report
// in the selected format.
func runAnalyze(cfg *config.Config, stdout io.Writer) error {
	set, err := words.Collect(cfg.Words, cfg.InputFile)
	if err != nil {
		return err
	}
	ccfg := cfg.CombinationConfig()

	analysis, err := combin.Count(set, ccfg)
	if err != nil {
		return fmt.Errorf("combinatorial analysis failed: %w", err)
	}

	summary := &report.Summary{
		Words:    set.Words(),
		Config:   ccfg,
		Analysis: analysis,
		Warnings: collectWarnings(set, analysis),
	}

	out := stdout
	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.Create(cfg.ReportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if _, err := newReportWriter(cfg, out).Write(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if cfg.ReportFile != "" {
		fmt.Fprintf(stdout, "Report written to %s\n", cfg.ReportFile)
	}
	return nil
}

// newReportWriter selects the report format. The default is
// human-readable text; JSON written to a terminal is pretty-printed.
func newReportWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithIndent("", "  "))
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out)
	}
}
