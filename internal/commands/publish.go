package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Upload the output files to S3",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.Publish(context.Background())
			if err != nil {
				return fmt.Errorf("publishing: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d files to s3://%s\n", n, a.Config.S3Bucket)
			return nil
		},
	}
}
