package format

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// RenderTable writes rows as a bordered table, optionally wrapped in a slack code block.
func RenderTable(w io.Writer, headers []string, rows [][]string, slackMode bool) error {
	if slackMode {
		fmt.Fprintln(w, "```")
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if slackMode {
		fmt.Fprintln(w, "```")
	}
	return nil
}
