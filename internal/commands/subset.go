package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"survey-analyzer/internal/engine"
)

func newSubsetCommand(a *app) *cobra.Command {
	var (
		save       bool
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "subset <question> <answer>",
		Short: "Create a subset of respondents by their answer to a question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			sub, err := engine.Filter(a.table, a.catalog, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pct := 0.0
			if a.table.Rows() > 0 {
				pct = float64(sub.Len()) / float64(a.table.Rows()) * 100
			}
			fmt.Fprintf(out, "\nSubset created: %d of %d respondents (%.1f%%)\n", sub.Len(), a.table.Rows(), pct)

			if save {
				a.subsets.Save(sub)
				fmt.Fprintln(out, "Subset saved for future operations. Use --subset flag in the distribution command.")
			}
			if exportPath != "" {
				if err := exportSubset(exportPath, a.table, sub); err != nil {
					return err
				}
				fmt.Fprintf(out, "Subset exported to %s\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&save, "save", "s", false, "save this subset for future operations")
	cmd.Flags().StringVarP(&exportPath, "export", "e", "", "export the subset rows to a CSV file")
	return cmd
}

func exportSubset(path string, table *engine.Table, sub *engine.Subset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export subset: %w", err)
	}
	defer f.Close()
	if err := engine.ExportCSV(f, table, sub); err != nil {
		return fmt.Errorf("export subset: %w", err)
	}
	return nil
}
