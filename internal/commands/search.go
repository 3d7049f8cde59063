package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"survey-analyzer/internal/render"
)

func newSearchCommand(a *app) *cobra.Command {
	var (
		inOptions bool
		question  string
	)

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search for questions, or for options within one question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			keyword := args[0]
			out := cmd.OutOrStdout()

			if inOptions {
				if question == "" {
					return fmt.Errorf("--question is required when searching in options")
				}
				options, err := a.catalog.SearchOptions(question, keyword)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nOptions matching %q in question %q:\n", keyword, question)
				render.Options(out, options)
				return nil
			}

			matches := a.catalog.Search(keyword)
			fmt.Fprintf(out, "\nQuestions matching %q:\n", keyword)
			if len(matches) == 0 {
				fmt.Fprintln(out, "  No matching questions found.")
				return nil
			}
			for i, q := range matches {
				fmt.Fprintf(out, "  %d. %s\n", i+1, q.Name)
				fmt.Fprintf(out, "     Type: %s, Responses: %d\n", q.Type, q.Responses)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&inOptions, "in-options", "o", false, "search in answer options instead of question names")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question whose options to search")
	return cmd
}
