package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"survey-analyzer/internal/render"
)

func newStructureCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "structure",
		Short: "Display the survey structure (list of questions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if limit == 0 {
				limit = a.cfg.StructureLimit
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nSurvey Structure (%d total questions):\n\n", a.catalog.Len())
			render.Structure(out, questionInfos(a.catalog.List(limit)))
			if limit > 0 && limit < a.catalog.Len() {
				fmt.Fprintf(out, "\nShowing %d of %d questions. Use --limit to see more.\n", limit, a.catalog.Len())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "number of questions to display (default from config, negative = all)")
	return cmd
}
