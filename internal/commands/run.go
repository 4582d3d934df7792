package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch and then enrich every time window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			w := cmd.OutOrStdout()

			if _, err := a.Fetch(ctx, w); err != nil {
				return err
			}
			fmt.Fprintln(w)
			_, err := a.Enrich(ctx, w)
			return err
		},
	}
}
