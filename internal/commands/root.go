// Package commands wires the cobra command tree. Each command lazily
// loads the survey file (the engine memoizes it) and shares one
// subset store for the lifetime of the invocation.
package commands

import (
	"github.com/spf13/cobra"

	"survey-analyzer/internal/config"
	"survey-analyzer/internal/engine"
	"survey-analyzer/internal/models"
)

type app struct {
	cfg     *config.Config
	table   *engine.Table
	catalog *engine.Catalog
	subsets *engine.SubsetStore

	// flag overrides
	dataPath string
	sheet    string
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	a := &app{subsets: engine.NewSubsetStore()}

	root := &cobra.Command{
		Use:   "survey",
		Short: "Analyze a tabular survey dataset from the command line",
		Long: `survey loads a spreadsheet of survey responses (rows = respondents,
columns = questions) and answers three kinds of queries: list/search
questions, filter respondents by their answer to a question, and
compute per-option answer distributions, optionally over a saved
subset.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.dataPath != "" {
				cfg.DataPath = a.dataPath
			}
			if a.sheet != "" {
				cfg.Sheet = a.sheet
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.dataPath, "data", "", "path to the survey file (overrides config)")
	root.PersistentFlags().StringVar(&a.sheet, "sheet", "", "workbook sheet to read (default: first sheet)")

	root.AddCommand(
		newStructureCommand(a),
		newSearchCommand(a),
		newSubsetCommand(a),
		newDistributionCommand(a),
		newReplCommand(a),
		newServeCommand(a),
	)
	return root
}

// load reads the survey file and builds the catalog, once per process.
func (a *app) load() error {
	if a.table != nil {
		return nil
	}
	table, err := engine.Load(a.cfg.DataPath, a.cfg.Sheet)
	if err != nil {
		return err
	}
	a.table = table
	a.catalog = engine.BuildCatalog(table, a.cfg.IDColumn, a.cfg.Delimiter)
	return nil
}

func questionInfos(questions []engine.Question) []models.QuestionInfo {
	infos := make([]models.QuestionInfo, 0, len(questions))
	for _, q := range questions {
		infos = append(infos, models.QuestionInfo{
			Name:         q.Name,
			Type:         string(q.Type),
			UniqueValues: len(q.Options),
			Responses:    q.Responses,
		})
	}
	return infos
}
