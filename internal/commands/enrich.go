package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *App) newEnrichCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Look up follower counts for the saved results and write sorted output files",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.Enrich(context.Background(), cmd.OutOrStdout())
			return err
		},
	}
}
