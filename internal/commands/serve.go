package commands

import (
	"github.com/spf13/cobra"

	"survey-analyzer/internal/api"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the survey queries as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}
			if addr == "" {
				addr = a.cfg.ListenAddr
			}

			h := api.NewHandler(a.table, a.catalog, a.subsets, a.cfg.TopN)
			e := api.NewServer(h)
			return e.Start(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
