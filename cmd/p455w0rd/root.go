// Package main provides the entry point for the p455w0rd CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for p455w0rd.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "p455w0rd",
		Short: "Targeted password candidate wordlist generator",
		Long: `p455w0rd turns a handful of seed words into a targeted wordlist of
password candidates. Each word is expanded through leet substitutions
(a→4, e→3, i→1, l→1, o→0, s→5) and three case forms, words are combined
in every order, and candidates are optionally padded with special
characters, all filtered to a length window.

Run "analyze" first to see how many candidates a word set produces;
"generate" streams them to a newline-delimited file.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
