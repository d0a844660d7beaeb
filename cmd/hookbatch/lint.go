package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/telvenn/hookbatch/pkg/batch"
)

func createLintCmd() *cobra.Command {
	lintCmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Validate a batch file",
		Long: `Validate a YAML batch file without touching any registry.

Examples:
  hookbatch lint batch.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}

			if verbose {
				printEntryStatus(f)
			}

			errs := f.Validate()
			if len(errs) == 0 {
				if !quiet {
					color.Green("%s: %d entries, no problems", args[0], len(f.Entries))
				}
				return nil
			}

			for _, lintErr := range errs {
				color.Red("%s: %v", args[0], lintErr)
			}
			return fmt.Errorf("%d invalid entries in %s", len(errs), args[0])
		},
	}

	return lintCmd
}

// printEntryStatus prints a per-entry ok/failure marker.
func printEntryStatus(f *batch.File) {
	for i, se := range f.StructuredEntries() {
		if err := se.Validate(); err != nil {
			color.Red("  entry %d (%s): %v", i, se.Hook, err)
		} else {
			color.Green("  entry %d (%s): ok", i, se.Hook)
		}
	}
}
