// Package main provides the command-line interface for the hookbatch engine.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	quiet   bool
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hookbatch",
		Short: "Hookbatch - declarative hook modification batches",
		Long: `A CLI for inspecting and validating hookbatch batch files before they ` +
			`are applied against a host hook registry.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(createLintCmd())
	rootCmd.AddCommand(createShowCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
