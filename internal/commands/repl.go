package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"survey-analyzer/internal/engine"
	"survey-analyzer/internal/render"
)

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start interactive mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			runRepl(a, cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
}

const replHelp = `
Available commands:
  structure [limit]                    - Display survey structure
  search <keyword>                     - Search questions
  search-options <question> <keyword>  - Search options in a question
  subset <question> <option>           - Create and save subset
  dist <question> [top_n]              - Show distribution
  dist-subset <question> [top_n]       - Show distribution for saved subset
  clear-subset                         - Clear saved subset
  export-subset <file>                 - Export saved subset to CSV
  help                                 - Show available commands
  exit                                 - Exit REPL`

func runRepl(a *app, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "\nSurvey Analyzer - Interactive Mode")
	fmt.Fprintln(out, "Type 'help' for available commands, 'exit' to quit")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nsurvey> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		if err := dispatch(a, out, line); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
	fmt.Fprintln(out, "\nGoodbye!")
}

// dispatch runs one REPL line. Errors are reported and swallowed by
// the caller; the loop never dies on a bad query.
func dispatch(a *app, out io.Writer, line string) error {
	fields := strings.Fields(line)

	switch fields[0] {
	case "help":
		fmt.Fprintln(out, replHelp)

	case "structure":
		limit := a.cfg.StructureLimit
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("usage: structure [limit]")
			}
			limit = n
		}
		render.Structure(out, questionInfos(a.catalog.List(limit)))

	case "search":
		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 {
			return fmt.Errorf("usage: search <keyword>")
		}
		for _, q := range a.catalog.Search(parts[1]) {
			fmt.Fprintf(out, "  - %s\n", q.Name)
		}

	case "search-options":
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			return fmt.Errorf("usage: search-options <question> <keyword>")
		}
		options, err := a.catalog.SearchOptions(parts[1], parts[2])
		if err != nil {
			return err
		}
		for _, opt := range options {
			fmt.Fprintf(out, "  - %s\n", opt)
		}

	case "subset":
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			return fmt.Errorf("usage: subset <question> <option>")
		}
		sub, err := engine.Filter(a.table, a.catalog, parts[1], parts[2])
		if err != nil {
			return err
		}
		a.subsets.Save(sub)
		fmt.Fprintf(out, "Subset created: %d respondents\n", sub.Len())

	case "dist":
		return replDistribution(a, out, fields, nil)

	case "dist-subset":
		sub, err := a.subsets.Get()
		if err != nil {
			return err
		}
		return replDistribution(a, out, fields, sub)

	case "clear-subset":
		a.subsets.Clear()
		fmt.Fprintln(out, "Subset cleared.")

	case "export-subset":
		if len(fields) < 2 {
			return fmt.Errorf("usage: export-subset <file>")
		}
		sub, err := a.subsets.Get()
		if err != nil {
			return err
		}
		if err := exportSubset(fields[1], a.table, sub); err != nil {
			return err
		}
		fmt.Fprintf(out, "Subset exported to %s\n", fields[1])

	default:
		return fmt.Errorf("unknown command %q, type 'help' for available commands", fields[0])
	}
	return nil
}

func replDistribution(a *app, out io.Writer, fields []string, sub *engine.Subset) error {
	if len(fields) < 2 {
		return fmt.Errorf("usage: %s <question> [top_n]", fields[0])
	}
	top := a.cfg.TopN
	if len(fields) > 2 {
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("usage: %s <question> [top_n]", fields[0])
		}
		top = n
	}
	result, err := engine.Distribution(a.table, a.catalog, fields[1], sub, top)
	if err != nil {
		return err
	}
	render.Distribution(out, result)
	return nil
}
