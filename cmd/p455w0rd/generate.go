package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nao1215/p455w0rd/internal/combin"
	"github.com/nao1215/p455w0rd/internal/config"
	"github.com/nao1215/p455w0rd/internal/generate"
	"github.com/nao1215/p455w0rd/internal/log"
	"github.com/nao1215/p455w0rd/internal/model"
	"github.com/nao1215/p455w0rd/internal/mutate"
	"github.com/nao1215/p455w0rd/internal/report"
	"github.com/nao1215/p455w0rd/internal/sink"
	"github.com/nao1215/p455w0rd/internal/words"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [words...]",
		Short: "Generate password candidates from seed words",
		Long: `Generate expands seed words into password candidates and streams them
to a newline-delimited file.

Each word is expanded through every leet substitution subset and three
case forms. Words are then combined in every order up to --max-words,
filtered to the length window, and optionally padded with special
characters (` + "!@#$%" + `).

Before generation starts, an exact combinatorial analysis predicts the
output volume; large runs ask for confirmation unless --force is set.
The output file is written via a temporary file and atomically renamed
on completion, so an interrupted run leaves no partial file behind.

Examples:
  # Generate from two seed words
  p455w0rd generate admin password

  # Read words from a file, one per line or comma-separated
  p455w0rd generate --input words.txt

  # WPA2 passphrase candidates (8-63 characters), capped at a million
  p455w0rd generate --wpa2 --limit 1000000 --input words.txt

  # Pairs only, no special character padding
  p455w0rd generate --max-words 2 --no-special-chars admin pass secret`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerateCmd,
	}

	addWordSourceFlags(cmd)
	addCombinationFlags(cmd)

	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Output file path")
	cmd.Flags().Int("limit", 0,
		"Stop after this many candidates (0 = unlimited)")
	cmd.Flags().Int("chunk-size", model.DefaultChunkSize,
		"Candidates buffered per output chunk")
	cmd.Flags().Int("dedup-cache", model.DefaultDedupCacheSize,
		"Deduplication window entry cap (cleared entirely when full)")
	cmd.Flags().Int("workers", 0,
		"Variant expansion workers (0 = number of CPUs)")
	cmd.Flags().Bool("append", false,
		"Append to the output file instead of replacing it")
	cmd.Flags().Bool("force", false,
		"Skip the confirmation prompt for large runs")
	cmd.Flags().BoolP("quiet", "q", false,
		"Disable the analysis display and progress bar")

	return cmd
}

// addWordSourceFlags registers the flags shared by generate and analyze
// that select where seed words come from.
func addWordSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "",
		"File containing seed words (one per line, commas allowed)")
	cmd.Flags().StringP("config", "c", "",
		"Defaults file path (default: "+config.DefaultConfigFile+" in CWD, XDG config dir, or home)")
}

// addCombinationFlags registers the flags shared by generate and
// analyze that shape the combination space.
func addCombinationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("min-length", model.DefaultMinLength,
		"Minimum candidate length")
	cmd.Flags().Int("max-length", model.DefaultMaxLength,
		"Maximum candidate length")
	cmd.Flags().Bool("wpa2", false,
		"Use WPA2 passphrase length bounds (8-63)")
	cmd.Flags().Int("max-words", 0,
		"Maximum words per combination (0 = unlimited)")
	cmd.Flags().Bool("no-special-chars", false,
		"Disable special character padding")
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runGenerate(ctx, cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
}

// runGenerate collects words, runs the pre-flight analysis and
// confirmation, and streams candidates to the output file.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
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
	if !cfg.Quiet {
		if _, err := report.NewSimpleWriter(out).Write(summary); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
	}

	if needsConfirmation(cfg, analysis) {
		ok, err := confirm(in, out, analysis)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	fileWriter, err := sink.NewFileWriter(cfg.Output,
		sink.WithChunkSize(cfg.ChunkSize),
		sink.WithAppend(cfg.Append),
	)
	if err != nil {
		return err
	}

	opts := []generate.Option{
		generate.WithLogger(logger),
		generate.WithWorkers(cfg.Workers),
	}
	var bar *progressDisplay
	if !cfg.Quiet {
		bar = newProgressDisplay(out)
		opts = append(opts, generate.WithProgress(bar.update))
	}

	result, err := generate.New(set, ccfg, opts...).Run(ctx, fileWriter)
	if bar != nil {
		bar.finish()
	}
	if err != nil {
		fileWriter.Abort()
		return err
	}
	if err := fileWriter.Close(); err != nil {
		return err
	}

	printer := message.NewPrinter(language.English)
	printer.Fprintf(out, "Generated %d candidates to %s", result.Emitted, cfg.Output)
	if result.LimitReached {
		fmt.Fprint(out, " (limit reached)")
	}
	fmt.Fprintln(out)

	logger.Debug("run finished",
		"emitted", result.Emitted,
		"duplicates", result.Duplicates,
		"dedup_clears", result.DedupClears,
	)
	return nil
}

// needsConfirmation reports whether the predicted volume requires an
// interactive go-ahead.
func needsConfirmation(cfg *config.Config, analysis *model.Analysis) bool {
	if cfg.Force {
		return false
	}
	return analysis.Capped || analysis.TotalCombinations > config.ConfirmThreshold
}

// confirm asks the user whether to proceed with a large generation run.
func confirm(in io.Reader, out io.Writer, analysis *model.Analysis) (bool, error) {
	count := combin.FormatCount(analysis.TotalCombinations)
	if analysis.Capped {
		count = "too many to count"
	}
	fmt.Fprintf(out, "About to generate %s candidates (%s on disk). Continue? [y/N]: ",
		count, combin.FormatFileSize(analysis.EstimatedFileSizeBytes))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// collectWarnings gathers resource and accuracy caveats for the
// pre-flight report.
func collectWarnings(set *words.Set, analysis *model.Analysis) []string {
	var warnings []string
	for _, w := range set.Words() {
		if k := mutate.LeetPositions(w); k > mutate.WarnLeetPositions {
			warnings = append(warnings,
				fmt.Sprintf("a %d-character word has %d leetable positions; expansion is expensive", len(w), k))
		}
	}
	if analysis.Capped {
		warnings = append(warnings,
			"candidate count saturated at the counting cap; the total shown is a lower bound")
	}
	return warnings
}

// buildConfig creates a Config from cobra command flags, applying the
// optional defaults file first. Explicitly set flags always win over
// file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Words = args

	configPath, err := cmd.Flags().GetString("config")
	if err == nil && configPath != "" {
		cfg.ConfigFilePath = configPath
	}

	// Apply defaults file values before flag overrides.
	explicitConfigPath := cfg.ConfigFilePath != ""
	if found := config.FindConfigFile(cfg.ConfigFilePath); found != "" {
		file, err := config.LoadConfigFile(found)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	applyStringFlag(cmd, "input", &cfg.InputFile)
	applyStringFlag(cmd, "output", &cfg.Output)
	applyIntFlag(cmd, "min-length", &cfg.MinLength)
	applyIntFlag(cmd, "max-length", &cfg.MaxLength)
	applyIntFlag(cmd, "limit", &cfg.Limit)
	applyIntFlag(cmd, "chunk-size", &cfg.ChunkSize)
	applyIntFlag(cmd, "max-words", &cfg.MaxWords)
	applyIntFlag(cmd, "dedup-cache", &cfg.DedupCacheSize)
	applyIntFlag(cmd, "workers", &cfg.Workers)
	applyBoolFlag(cmd, "wpa2", &cfg.WPA2)
	applyBoolFlag(cmd, "no-special-chars", &cfg.NoSpecialChars)
	applyBoolFlag(cmd, "append", &cfg.Append)
	applyBoolFlag(cmd, "force", &cfg.Force)
	applyBoolFlag(cmd, "quiet", &cfg.Quiet)
	applyBoolFlag(cmd, "json", &cfg.JSONReport)
	applyBoolFlag(cmd, "markdown", &cfg.MarkdownReport)

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// applyStringFlag overwrites dst when the flag exists and was set.
func applyStringFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	if v, err := cmd.Flags().GetString(name); err == nil {
		*dst = v
	}
}

// applyIntFlag overwrites dst when the flag exists and was set.
func applyIntFlag(cmd *cobra.Command, name string, dst *int) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	if v, err := cmd.Flags().GetInt(name); err == nil {
		*dst = v
	}
}

// applyBoolFlag overwrites dst when the flag exists and was set.
func applyBoolFlag(cmd *cobra.Command, name string, dst *bool) {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return
	}
	if v, err := cmd.Flags().GetBool(name); err == nil {
		*dst = v
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its
// parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
