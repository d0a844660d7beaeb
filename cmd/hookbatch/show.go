package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telvenn/hookbatch/pkg/batch"
	"github.com/telvenn/hookbatch/pkg/queue"
)

func createShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the resolved entries of a batch file",
		Long: `Print the entries of a YAML batch file after defaults are applied.

Examples:
  hookbatch show batch.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}

			displayFile(f)
			return nil
		},
	}

	return showCmd
}

// displayFile prints the resolved entries with defaults applied.
func displayFile(f *batch.File) {
	defaultPriority := queue.DefaultPriority
	if f.DefaultPriority != nil {
		defaultPriority = *f.DefaultPriority
	}

	for i, fe := range f.Entries {
		priority := defaultPriority
		if fe.Priority != nil {
			priority = *fe.Priority
		}
		fmt.Printf("%2d. hook %-24s %-40s priority %d\n", i, fe.Hook, describeEntry(fe), priority)
	}

	if f.Deferred != nil {
		fmt.Printf("deferred until hook %q priority %d\n", f.Deferred.Hook, f.Deferred.Priority)
	}
}

// describeEntry renders the operation half of an entry.
func describeEntry(fe batch.FileEntry) string {
	switch {
	case fe.Constant != nil:
		return fmt.Sprintf("inject constant %t", *fe.Constant)
	case fe.Class != "" || fe.Method != "":
		return fmt.Sprintf("remove %s::%s%s", fe.Class, fe.Method, describeMatch(fe.Match))
	default:
		return "invalid entry"
	}
}

// describeMatch renders non-default match options.
func describeMatch(m *batch.FileMatch) string {
	if m == nil {
		return ""
	}
	mode := "strict"
	if !m.Strict {
		mode = "substring"
	}
	folding := "case-sensitive"
	if !m.CaseSensitive {
		folding = "case-insensitive"
	}
	return fmt.Sprintf(" (%s, %s)", mode, folding)
}
