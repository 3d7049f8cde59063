package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"survey-analyzer/internal/engine"
	"survey-analyzer/internal/render"
)

func newDistributionCommand(a *app) *cobra.Command {
	var (
		top       int
		useSubset bool
	)

	cmd := &cobra.Command{
		Use:   "distribution <question>",
		Short: "Display the distribution of answers for a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if top == 0 {
				top = a.cfg.TopN
			}

			var sub *engine.Subset
			if useSubset {
				var err error
				sub, err = a.subsets.Get()
				if err != nil {
					return err
				}
			}

			result, err := engine.Distribution(a.table, a.catalog, args[0], sub, top)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scope := "full dataset"
			if useSubset {
				scope = "saved subset"
			}
			fmt.Fprintf(out, "\nDistribution for %q (%s):\n", args[0], scope)
			fmt.Fprintf(out, "Total responses: %d\n", result.Total)
			fmt.Fprintf(out, "Question type: %s\n\n", result.Type)
			render.Distribution(out, result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "t", 0, "number of top options to display (default from config, negative = all)")
	cmd.Flags().BoolVarP(&useSubset, "subset", "s", false, "use the saved subset instead of the full data")
	return cmd
}
