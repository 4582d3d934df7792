package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-trending/internal/format"
	"github.com/stahnma/gh-trending/internal/trending"
)

func (a *App) newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [7d|30d|90d]",
		Short: "Print an output file as a ranked table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, args)
		},
	}
	cmd.Flags().IntP("limit", "n", 25, "Number of rows to show (0 for all)")
	return cmd
}

func (a *App) runShow(cmd *cobra.Command, args []string) error {
	key := trending.DefaultWindowKey
	if len(args) == 1 {
		key = args[0]
	}
	win, ok := trending.WindowByKey(key)
	if !ok {
		return fmt.Errorf("unknown time window %q", key)
	}
	limit, _ := cmd.Flags().GetInt("limit")

	path := filepath.Join(a.Config.OutputDir, win.OutputFile)
	records, err := trending.ReadOutputFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			strconv.Itoa(r.Followers),
			strconv.Itoa(r.Stars),
			strconv.Itoa(r.Forks),
			r.CreatedAt,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Repositories created in the last %d days (%d shown)\n", win.Days, len(rows))
	return format.RenderTable(w, []string{"Rank", "Repository", "Followers", "Stars", "Forks", "Created"}, rows, a.Config.SlackMode)
}
