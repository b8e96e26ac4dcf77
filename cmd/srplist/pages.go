package main

import (
	"fmt"
	"strconv"

	"github.com/guyvdb/srplist/pager"
	"github.com/spf13/cobra"
)

func newPagesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "pages <total> <current>",
		Short: "Print the pager for a page count and current page.",
		Long: `Prints the page links the pager shows for <total> pages with page
<current> selected, both counted from 1. The window comes from the
window.* config keys.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("total: %w", err)
			}
			current, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("current: %w", err)
			}
			if current < 1 || current > max(total, 1) {
				return fmt.Errorf("current page %d is not in 1..%d", current, total)
			}
			fmt.Fprintln(e.stdout, pagerLine(pager.Build(total, current-1, e.cfg.Window)))
			return nil
		},
	}
}
