package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *App) newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Search each time window and save the raw results",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.Fetch(context.Background(), cmd.OutOrStdout())
			return err
		},
	}
}
